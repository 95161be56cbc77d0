package game

import (
	"github.com/lgbarn/chess-service-go/internal/chess"
	"github.com/lgbarn/chess-service-go/internal/engine"
	"github.com/lgbarn/chess-service-go/internal/notation"
)

// Snapshot is a self-contained view of a session at one moment. It shares
// no memory with the session.
type Snapshot struct {
	GameID string

	// FEN is the lossless position encoding.
	FEN string

	// Board lists ranks 8 down to 1 as FEN letters with '.' for empty.
	Board [chess.BoardSize]string

	SideToMove chess.Colour
	Castling   chess.CastlingRights
	EnPassant  chess.Square

	Status      engine.Status
	InCheck     bool
	InCheckmate bool
	InStalemate bool

	// Informational only; it never ends the game.
	InsufficientMaterial bool
	Repetitions          int

	// Coordinate notation in generation order.
	LegalMoves []string

	// Moves played, oldest first.
	History           []string
	CoordinateHistory []string

	// LastMove is the algebraic text of the latest move, "" before the first.
	LastMove string

	HalfmoveClock  int
	FullmoveNumber int
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	pos := s.pos
	snap := Snapshot{
		FEN:                  engine.PositionToFEN(pos),
		SideToMove:           pos.ToMove,
		Castling:             pos.Castling,
		EnPassant:            pos.EnPassant,
		Status:               s.status,
		InCheck:              s.status == engine.Check || s.status == engine.Checkmate,
		InCheckmate:          s.status == engine.Checkmate,
		InStalemate:          s.status == engine.Stalemate,
		InsufficientMaterial: engine.HasInsufficientMaterial(pos),
		Repetitions:          s.reps.Current(),
		HalfmoveClock:        pos.HalfmoveClock,
		FullmoveNumber:       pos.FullmoveNumber,
		LegalMoves:           []string{},
		History:              make([]string, 0, len(s.history)),
		CoordinateHistory:    make([]string, 0, len(s.history)),
	}

	for i := range snap.Board {
		snap.Board[i] = engine.PlacementRow(pos, chess.BoardSize-1-i, false)
	}
	for _, m := range engine.LegalMoves(pos) {
		snap.LegalMoves = append(snap.LegalMoves, notation.EncodeCoordinate(m))
	}
	for _, h := range s.history {
		snap.History = append(snap.History, h.SAN)
		snap.CoordinateHistory = append(snap.CoordinateHistory, notation.EncodeCoordinate(h.Move))
	}
	snap.LastMove, _ = s.LastMove()

	return snap
}
