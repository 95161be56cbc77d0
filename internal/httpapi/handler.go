// Package httpapi exposes the game service over HTTP and pushes game
// events to websocket clients.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	chesserrors "github.com/lgbarn/chess-service-go/internal/errors"
	"github.com/lgbarn/chess-service-go/internal/game"
	"github.com/lgbarn/chess-service-go/internal/msgcat"
	"github.com/lgbarn/chess-service-go/internal/selector"
	"github.com/lgbarn/chess-service-go/internal/store"
)

const (
	maxBodyBytes      = 1 << 16
	checkpointTimeout = 2 * time.Second
	statusSuccess     = "success"
)

// Options configures a Handler. Zero values select no-op logging, no
// checkpointing, the embedded messages and the default difficulty.
type Options struct {
	Logger            *zap.Logger
	Store             store.Store
	Catalog           *msgcat.Catalog
	DefaultDifficulty int
	AllowedOrigins    []string
}

// Handler serves the chess API for one Service.
type Handler struct {
	svc        *game.Service
	hub        *Hub
	store      store.Store
	msgs       *msgcat.Catalog
	log        *zap.Logger
	difficulty int
}

// NewHandler creates a handler for svc and installs it as the service's
// commit hook, so every change is checkpointed and broadcast in order.
func NewHandler(svc *game.Service, opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Store == nil {
		opts.Store = store.Nop{}
	}
	if opts.Catalog == nil {
		opts.Catalog = msgcat.MustDefault()
	}
	if opts.DefaultDifficulty == 0 {
		opts.DefaultDifficulty = selector.CaptureThreshold
	}
	if opts.AllowedOrigins == nil {
		opts.AllowedOrigins = []string{"*"}
	}
	h := &Handler{
		svc:        svc,
		hub:        NewHub(opts.Logger, opts.AllowedOrigins),
		store:      opts.Store,
		msgs:       opts.Catalog,
		log:        opts.Logger,
		difficulty: selector.ClampDifficulty(opts.DefaultDifficulty),
	}
	svc.OnCommit(h.publish)
	return h
}

// Hub returns the websocket hub.
func (h *Handler) Hub() *Hub { return h.hub }

// Router builds the route table.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Get("/ws", h.handleWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/new-game", h.handleNewGame)
		r.Post("/new-game", h.handleNewGame)
		r.Get("/board", h.handleBoard)
		r.Post("/move", h.handleMove)
		r.Get("/game-status", h.handleGameStatus)
		r.Post("/takeback", h.handleTakeback)
		r.Post("/undo", h.handleTakeback)
		r.Get("/computer-move", h.handleComputerMove)
		r.Post("/engine-move", h.handleEngineMove)
	})
	return r
}

// Restore replays the stored checkpoint into the service. A missing
// checkpoint leaves the fresh game in place.
func (h *Handler) Restore(ctx context.Context) error {
	cp, err := h.store.Load(ctx)
	if err != nil {
		return err
	}
	if cp == nil {
		return nil
	}
	snap, err := h.svc.Restore(cp.GameID, cp.Moves)
	if err != nil {
		return err
	}
	h.log.Info("restored game",
		zap.String("game_id", snap.GameID),
		zap.Int("moves", len(snap.History)),
		zap.String("status", snap.Status.String()),
	)
	return nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleWS joins the client while the game is held still, so its hello
// state is followed by exactly the changes committed after it.
func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, ok := h.hub.upgrade(w, r)
	if !ok {
		return
	}
	var c *client
	h.svc.View(func(snap game.Snapshot) {
		c = h.hub.join(conn, Event{Event: EventConnected, Data: boardState(snap)})
	})
	if c != nil {
		h.hub.serve(c)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, _ *http.Request) {
	snap := h.svc.NewGame()
	writeJSON(w, http.StatusOK, NewGameResponse{
		Status:  statusSuccess,
		Message: h.text("event.new_game", "New game started"),
		Board:   boardState(snap),
	})
}

func (h *Handler) handleBoard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, boardState(h.svc.CurrentState()))
}

func (h *Handler) handleGameStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, gameStatus(h.svc.CurrentState()))
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeRequestError(w, err.Error())
		return
	}
	text := strings.TrimSpace(req.Move)
	if text == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: h.text("error.no_move", "No move provided"),
			Code:  codeInvalidRequest,
		})
		return
	}

	snap, err := h.svc.ApplyMove(text)
	if err != nil {
		h.writeError(w, err, text)
		return
	}
	writeJSON(w, http.StatusOK, moveResponse(snap, snap.LastMove))
}

func (h *Handler) handleTakeback(w http.ResponseWriter, _ *http.Request) {
	snap, err := h.svc.UndoLast()
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, takebackResponse(snap))
}

func (h *Handler) handleComputerMove(w http.ResponseWriter, r *http.Request) {
	difficulty, err := h.parseDifficulty(r.URL.Query().Get("difficulty"))
	if err != nil {
		h.writeRequestError(w, err.Error())
		return
	}
	var resp SuggestionResponse
	if text, ok := h.svc.SelectComputerMove(difficulty); ok {
		resp.Move = &text
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleEngineMove(w http.ResponseWriter, r *http.Request) {
	var req engineMoveRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeRequestError(w, err.Error())
		return
	}
	difficulty := h.difficulty
	if req.Difficulty != nil {
		difficulty = selector.ClampDifficulty(*req.Difficulty)
	}
	if q := r.URL.Query().Get("difficulty"); q != "" {
		d, err := h.parseDifficulty(q)
		if err != nil {
			h.writeRequestError(w, err.Error())
			return
		}
		difficulty = d
	}

	snap, played, err := h.svc.PlayComputerMove(difficulty)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, moveResponse(snap, played))
}

// publish is the service commit hook. It runs under the service lock, so
// checkpoints and events follow commit order.
func (h *Handler) publish(ch game.Change) {
	h.checkpoint(ch.Snapshot)

	switch ch.Kind {
	case game.ChangeNewGame:
		h.hub.Broadcast(EventNewGame, boardState(ch.Snapshot))
	case game.ChangeMove:
		h.hub.Broadcast(EventMoveMade, moveResponse(ch.Snapshot, ch.Snapshot.LastMove))
	case game.ChangeComputerMove:
		h.hub.Broadcast(EventEngineMove, moveResponse(ch.Snapshot, ch.Played))
	case game.ChangeUndo:
		h.hub.Broadcast(EventMoveUndone, takebackResponse(ch.Snapshot))
	}
}

// parseDifficulty reads an optional difficulty, clamping it to the
// selector's range.
func (h *Handler) parseDifficulty(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return h.difficulty, nil
	}
	d, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("difficulty must be an integer")
	}
	return selector.ClampDifficulty(d), nil
}

// decodeBody reads an optional JSON body into dst. An empty body leaves
// dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errors.New("malformed JSON body")
	}
	return nil
}

// checkpoint saves the replayable state. Failures are logged and do not
// fail the request.
func (h *Handler) checkpoint(snap game.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), checkpointTimeout)
	defer cancel()

	cp := &store.Checkpoint{GameID: snap.GameID, Moves: snap.CoordinateHistory}
	if err := h.store.Save(ctx, cp); err != nil {
		h.log.Warn("checkpoint failed", zap.String("game_id", snap.GameID), zap.Error(err))
	}
}

// statusFor maps an error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case chesserrors.CodeGameOver:
		return http.StatusConflict
	case chesserrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error, move string) {
	code := chesserrors.Code(err)
	if code == chesserrors.CodeInternal {
		h.log.Error("request failed", zap.Error(err))
	}
	msg := h.msgs.ErrorText(code, map[string]string{"Move": move, "Detail": err.Error()}, err.Error())
	writeJSON(w, statusFor(code), ErrorResponse{Error: msg, Code: code})
}

func (h *Handler) writeRequestError(w http.ResponseWriter, detail string) {
	msg := h.msgs.ErrorText(codeInvalidRequest, map[string]string{"Move": "", "Detail": detail}, detail)
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Code: codeInvalidRequest})
}

func (h *Handler) text(key, fallback string) string {
	s, err := h.msgs.Render(key, nil)
	if err != nil {
		return fallback
	}
	return s
}
