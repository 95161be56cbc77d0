package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lgbarn/chess-service-go/internal/game"
)

const internalErrorJSON = `{"error":"Internal error","code":"internal"}`

// codeInvalidRequest marks transport-level failures such as a malformed
// body, which have no core error kind.
const codeInvalidRequest = "invalid_request"

// BoardState is the JSON form of a game snapshot.
type BoardState struct {
	GameID               string   `json:"game_id"`
	FEN                  string   `json:"fen"`
	Board                []string `json:"board"`
	Turn                 string   `json:"turn"`
	Castling             string   `json:"castling"`
	EnPassant            *string  `json:"en_passant"`
	IsCheck              bool     `json:"is_check"`
	IsCheckmate          bool     `json:"is_checkmate"`
	IsStalemate          bool     `json:"is_stalemate"`
	InsufficientMaterial bool     `json:"insufficient_material"`
	Repetitions          int      `json:"repetitions"`
	LegalMoves           []string `json:"legal_moves"`
	Status               string   `json:"status"`
	HalfmoveClock        int      `json:"halfmove_clock"`
	FullmoveNumber       int      `json:"fullmove_number"`
}

// GameStatus is the body of /api/game-status.
type GameStatus struct {
	Status      string   `json:"status"`
	MoveHistory []string `json:"move_history"`
	LastMove    *string  `json:"last_move"`
}

// MoveResponse is returned after a move is played.
type MoveResponse struct {
	Status     string     `json:"status"`
	Move       string     `json:"move"`
	SAN        string     `json:"san,omitempty"`
	Board      BoardState `json:"board"`
	GameStatus string     `json:"game_status"`
}

// TakebackResponse is returned after a move is taken back.
type TakebackResponse struct {
	Status      string     `json:"status"`
	Board       BoardState `json:"board"`
	MoveHistory []string   `json:"move_history"`
	LastMove    *string    `json:"last_move"`
	GameStatus  string     `json:"game_status"`
}

// NewGameResponse is returned by /api/new-game.
type NewGameResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	Board   BoardState `json:"board"`
}

// SuggestionResponse is returned by /api/computer-move. Move is null when
// the side to move has no legal move.
type SuggestionResponse struct {
	Move *string `json:"move"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type moveRequest struct {
	Move string `json:"move"`
}

type engineMoveRequest struct {
	Difficulty *int `json:"difficulty"`
}

func boardState(s game.Snapshot) BoardState {
	b := BoardState{
		GameID:               s.GameID,
		FEN:                  s.FEN,
		Board:                s.Board[:],
		Turn:                 strings.ToLower(s.SideToMove.String()),
		Castling:             s.Castling.String(),
		IsCheck:              s.InCheck,
		IsCheckmate:          s.InCheckmate,
		IsStalemate:          s.InStalemate,
		InsufficientMaterial: s.InsufficientMaterial,
		Repetitions:          s.Repetitions,
		LegalMoves:           s.LegalMoves,
		Status:               s.Status.String(),
		HalfmoveClock:        s.HalfmoveClock,
		FullmoveNumber:       s.FullmoveNumber,
	}
	if s.EnPassant.Valid() {
		b.EnPassant = optional(s.EnPassant.String())
	}
	return b
}

// moveResponse reports a played move; move is the text echoed back to the
// client, algebraic for submitted moves and coordinate for engine moves.
func moveResponse(s game.Snapshot, move string) MoveResponse {
	return MoveResponse{
		Status:     statusSuccess,
		Move:       move,
		SAN:        s.LastMove,
		Board:      boardState(s),
		GameStatus: s.Status.String(),
	}
}

func takebackResponse(s game.Snapshot) TakebackResponse {
	return TakebackResponse{
		Status:      statusSuccess,
		Board:       boardState(s),
		MoveHistory: s.History,
		LastMove:    optional(s.LastMove),
		GameStatus:  s.Status.String(),
	}
}

func gameStatus(s game.Snapshot) GameStatus {
	return GameStatus{
		Status:      s.Status.String(),
		MoveHistory: s.History,
		LastMove:    optional(s.LastMove),
	}
}

// optional maps "" to null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// writeJSON writes body with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		writeInternalError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(internalErrorJSON))
}
