package game

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-service-go/internal/engine"
	"github.com/lgbarn/chess-service-go/internal/errors"
	"github.com/lgbarn/chess-service-go/internal/notation"
	"github.com/lgbarn/chess-service-go/internal/selector"
)

// ChangeKind names the mutation a Change reports.
type ChangeKind int

const (
	ChangeNewGame ChangeKind = iota
	ChangeMove
	ChangeComputerMove
	ChangeUndo
)

// Change is one committed mutation of the game.
type Change struct {
	Kind     ChangeKind
	Snapshot Snapshot

	// Coordinate text of the move played; empty for new games and undo.
	Played string
}

// CommitFunc observes committed changes. It runs with the service lock
// held, so changes arrive in commit order, and it must not call back into
// the Service.
type CommitFunc func(Change)

// Service is the one shared game behind the transport layer. Every method
// holds the lock for its whole duration, so a half-applied move is never
// visible.
type Service struct {
	mu       sync.Mutex
	session  *Session
	gameID   string
	selector *selector.Selector
	onCommit CommitFunc
}

// NewService creates a service with a fresh game. A nil selector gets a
// randomly seeded one.
func NewService(sel *selector.Selector) *Service {
	if sel == nil {
		sel = selector.New(nil)
	}
	return &Service{
		session:  NewSession(),
		gameID:   uuid.NewString(),
		selector: sel,
	}
}

// OnCommit sets the hook run after every successful NewGame, ApplyMove,
// UndoLast and PlayComputerMove. A later call replaces the hook.
func (s *Service) OnCommit(fn CommitFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onCommit = fn
}

// View calls fn with the current state. No change commits until fn
// returns, and fn must not call back into the Service.
func (s *Service) View(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.snapshot())
}

// commit reports a change to the hook and returns its snapshot.
func (s *Service) commit(kind ChangeKind, played string) Snapshot {
	snap := s.snapshot()
	if s.onCommit != nil {
		s.onCommit(Change{Kind: kind, Snapshot: snap, Played: played})
	}
	return snap
}

func (s *Service) snapshot() Snapshot {
	snap := s.session.Snapshot()
	snap.GameID = s.gameID
	return snap
}

// NewGame replaces the current session with a new one.
func (s *Service) NewGame() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = NewSession()
	s.gameID = uuid.NewString()
	return s.commit(ChangeNewGame, "")
}

// CurrentState returns the state of the current game.
func (s *Service) CurrentState() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// ApplyMove plays a move given in coordinate or algebraic notation.
func (s *Service) ApplyMove(text string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, err := s.session.ApplyMove(text)
	if err != nil {
		return Snapshot{}, err
	}
	return s.commit(ChangeMove, notation.EncodeCoordinate(m)), nil
}

// UndoLast takes back the most recent move.
func (s *Service) UndoLast() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, _, err := s.session.UndoLast(); err != nil {
		return Snapshot{}, err
	}
	return s.commit(ChangeUndo, ""), nil
}

// SelectComputerMove suggests a move in coordinate notation without
// playing it. It returns false when the side to move has no legal move.
func (s *Service) SelectComputerMove(difficulty int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.selector.SelectMove(s.session.pos, difficulty)
	if !ok {
		return "", false
	}
	return notation.EncodeCoordinate(m), true
}

// PlayComputerMove selects and plays a move for the side to move and
// returns the new state with the coordinate text of the move played.
func (s *Service) PlayComputerMove(difficulty int) (Snapshot, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Status().IsTerminal() {
		return Snapshot{}, "", s.session.moveError(errors.ErrGameOver, "")
	}
	m, ok := s.selector.SelectMove(s.session.pos, difficulty)
	if !ok {
		return Snapshot{}, "", s.session.moveError(errors.ErrGameOver, "")
	}
	if _, err := s.session.Play(m); err != nil {
		return Snapshot{}, "", err
	}
	played := notation.EncodeCoordinate(m)
	return s.commit(ChangeComputerMove, played), played, nil
}

// Restore replaces the current game with gameID replayed from the
// initial position through moves. The current game is kept if any move
// fails to apply. Restoring does not run the commit hook.
func (s *Service) Restore(gameID string, moves []string) (Snapshot, error) {
	session := NewSession()
	for _, text := range moves {
		if _, _, err := session.ApplyMove(text); err != nil {
			return Snapshot{}, errors.Wrapf(err, "restoring game %s", gameID)
		}
	}
	if gameID == "" {
		gameID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session
	s.gameID = gameID
	return s.snapshot(), nil
}

// Status returns the status of the current game.
func (s *Service) Status() engine.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.Status()
}
