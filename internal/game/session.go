// Package game holds the single live chess game: a Session with its
// reversible history and derived status, and a Service that serialises
// access to it for the transport layer.
package game

import (
	"github.com/lgbarn/chess-service-go/internal/chess"
	"github.com/lgbarn/chess-service-go/internal/engine"
	"github.com/lgbarn/chess-service-go/internal/errors"
	"github.com/lgbarn/chess-service-go/internal/hashing"
	"github.com/lgbarn/chess-service-go/internal/notation"
)

// HistoryEntry is one applied move with what is needed to take it back.
type HistoryEntry struct {
	Move chess.Move
	Undo chess.UndoRecord
	SAN  string
}

// Session owns one position and the moves that led to it. It is not safe
// for concurrent use; Service adds the locking.
type Session struct {
	pos     *chess.Position
	history []HistoryEntry
	status  engine.Status
	reps    *hashing.Repetitions
}

// NewSession starts a game from the standard initial position.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// NewSessionFromFEN starts a game from an arbitrary position.
func NewSessionFromFEN(fen string) (*Session, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Session{
		pos:    pos,
		status: engine.DeriveStatus(pos),
		reps:   hashing.NewRepetitions(hashing.Hash(pos)),
	}, nil
}

// Reset returns to the standard initial position with an empty history.
func (s *Session) Reset() {
	s.pos = chess.NewInitialPosition()
	s.history = nil
	s.status = engine.Ongoing
	s.reps = hashing.NewRepetitions(hashing.Hash(s.pos))
}

// Position returns a copy of the current position.
func (s *Session) Position() *chess.Position {
	return s.pos.Copy()
}

// Status returns the status of the current position.
func (s *Session) Status() engine.Status {
	return s.status
}

// Repetitions returns how many times the current position has occurred
// in this game. It is informational and never ends the game.
func (s *Session) Repetitions() int {
	return s.reps.Current()
}

// Ply returns the number of moves played.
func (s *Session) Ply() int {
	return len(s.history)
}

// LastMove returns the algebraic text of the most recent move.
func (s *Session) LastMove() (string, bool) {
	if len(s.history) == 0 {
		return "", false
	}
	return s.history[len(s.history)-1].SAN, true
}

// ApplyMove decodes text in either notation, plays it and returns the
// move with the new status. Failures are *errors.MoveError values
// wrapping ErrGameOver, ErrInvalidNotation, ErrIllegalMove or
// ErrAmbiguousMove; the session is unchanged on failure.
func (s *Session) ApplyMove(text string) (chess.Move, engine.Status, error) {
	if s.status.IsTerminal() {
		return chess.Move{}, s.status, s.moveError(errors.ErrGameOver, text)
	}
	m, err := notation.Decode(text, s.pos)
	if err != nil {
		return chess.Move{}, s.status, s.moveError(err, text)
	}
	s.play(m)
	return m, s.status, nil
}

// Play applies a move already known to be legal, such as one from the
// move selector.
func (s *Session) Play(m chess.Move) (engine.Status, error) {
	if s.status.IsTerminal() {
		return s.status, s.moveError(errors.ErrGameOver, m.String())
	}
	if !engine.IsLegal(s.pos, m) {
		return s.status, s.moveError(errors.ErrIllegalMove, m.String())
	}
	s.play(m)
	return s.status, nil
}

func (s *Session) play(m chess.Move) {
	san := notation.EncodeAlgebraic(m, s.pos)
	rec := engine.Apply(s.pos, m)
	s.history = append(s.history, HistoryEntry{Move: m, Undo: rec, SAN: san})
	s.status = engine.DeriveStatus(s.pos)
	s.reps.Push(hashing.Hash(s.pos))
}

// UndoLast takes back the most recent move and returns the new status
// and the algebraic text of the move now last, if any. It fails with
// ErrEmptyHistory when nothing has been played.
func (s *Session) UndoLast() (engine.Status, string, error) {
	if len(s.history) == 0 {
		return s.status, "", errors.Wrap(errors.ErrEmptyHistory, "undo")
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	engine.Undo(s.pos, last.Undo)
	s.status = engine.DeriveStatus(s.pos)
	s.reps.Pop()

	prev, _ := s.LastMove()
	return s.status, prev, nil
}

func (s *Session) moveError(err error, text string) error {
	return &errors.MoveError{Err: err, Notation: text, Ply: len(s.history) + 1}
}
