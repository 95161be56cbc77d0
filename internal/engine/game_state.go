package engine

import (
	"fmt"

	"github.com/lgbarn/chess-service-go/internal/chess"
)

// Status is the outcome of a position for the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

var statusNames = [...]string{"ongoing", "check", "checkmate", "stalemate"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText renders the status by name in JSON and YAML.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// DeriveStatus classifies pos from the point of view of the side to move.
func DeriveStatus(pos *chess.Position) Status {
	inCheck := IsInCheck(pos)
	hasMoves := HasLegalMoves(pos)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	}
	return Ongoing
}
