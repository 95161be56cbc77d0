// Package selector picks a move for the computer side. It is a weighted
// random mover, not a search: higher difficulties prefer captures.
package selector

import (
	"math/rand/v2"
	"sync"

	"github.com/lgbarn/chess-service-go/internal/chess"
	"github.com/lgbarn/chess-service-go/internal/engine"
)

// Difficulty bounds. At CaptureThreshold and above, a capture is always
// chosen when one is available.
const (
	MinDifficulty    = 1
	MaxDifficulty    = 10
	CaptureThreshold = 5
)

// Selector chooses moves using its own random source. It is safe for
// concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Selector drawing from src. A nil src uses a randomly
// seeded PCG generator.
func New(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Selector{rng: rand.New(src)}
}

// NewSeeded creates a Selector with a reproducible sequence.
func NewSeeded(seed uint64) *Selector {
	return New(rand.NewPCG(seed, seed))
}

// ClampDifficulty limits d to the supported range.
func ClampDifficulty(d int) int {
	return min(max(d, MinDifficulty), MaxDifficulty)
}

// SelectMove returns a legal move for the side to move in pos, or false
// when there is none. pos is not modified.
func (s *Selector) SelectMove(pos *chess.Position, difficulty int) (chess.Move, bool) {
	moves := engine.LegalMoves(pos)
	if len(moves) == 0 {
		return chess.Move{}, false
	}

	pool := moves
	if ClampDifficulty(difficulty) >= CaptureThreshold {
		if captures := capturesOf(moves); len(captures) > 0 {
			pool = captures
		}
	}

	s.mu.Lock()
	i := s.rng.IntN(len(pool))
	s.mu.Unlock()
	return pool[i], true
}

func capturesOf(moves []chess.Move) []chess.Move {
	var captures []chess.Move
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}
