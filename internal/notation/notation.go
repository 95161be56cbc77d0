// Package notation converts between moves and their text forms: coordinate
// notation ("e2e4", "e7e8q") and standard algebraic notation ("Nbd7",
// "exd6", "O-O", "Qh4#"). Decoding always resolves against the legal moves
// of a position.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-service-go/internal/chess"
	"github.com/lgbarn/chess-service-go/internal/errors"
)

// Decode reads a move in either notation. Text of coordinate shape, once
// check and annotation marks are dropped, is tried as coordinate first and
// falls back to algebraic; anything else is read as algebraic, so short
// algebraic text such as "Nbd7" is never misrouted. Both paths resolve
// against the legal moves of pos.
func Decode(text string, pos *chess.Position) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return chess.Move{}, fmt.Errorf("empty move: %w", errors.ErrInvalidNotation)
	}
	core := strings.TrimRightFunc(text, func(r rune) bool { return r < 0x80 && isSuffix(byte(r)) })
	if !IsCoordinateShape(core) {
		return DecodeAlgebraic(text, pos)
	}
	m, err := DecodeCoordinate(core, pos)
	if err == nil {
		return m, nil
	}
	if alt, altErr := DecodeAlgebraic(text, pos); altErr == nil {
		return alt, nil
	}
	return chess.Move{}, err
}
