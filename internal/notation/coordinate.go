package notation

import (
	"fmt"

	"github.com/lgbarn/chess-service-go/internal/chess"
	"github.com/lgbarn/chess-service-go/internal/engine"
	"github.com/lgbarn/chess-service-go/internal/errors"
)

// EncodeCoordinate returns origin, destination and a lowercase promotion
// letter, e.g. "e2e4" or "e7e8q".
func EncodeCoordinate(m chess.Move) string {
	return m.String()
}

// isPromotionLetter reports whether c names a promotion piece in either case.
func isPromotionLetter(c byte) bool {
	switch chess.KindFromLetter(c) {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return true
	}
	return false
}

// IsCoordinateShape reports whether text has the fixed coordinate layout:
// two squares and an optional promotion letter.
func IsCoordinateShape(text string) bool {
	if len(text) != 4 && len(text) != 5 {
		return false
	}
	if !chess.IsFile(text[0]) || !chess.IsRank(text[1]) || !chess.IsFile(text[2]) || !chess.IsRank(text[3]) {
		return false
	}
	return len(text) == 4 || isPromotionLetter(text[4])
}

// DecodeCoordinate parses coordinate text and returns the matching legal
// move. Text of the wrong shape fails with ErrInvalidNotation; a move that
// is not legal in pos fails with ErrIllegalMove.
func DecodeCoordinate(text string, pos *chess.Position) (chess.Move, error) {
	if !IsCoordinateShape(text) {
		return chess.Move{}, fmt.Errorf("not coordinate notation: %w", errors.ErrInvalidNotation)
	}
	from, _ := chess.ParseSquare(text[0:2])
	to, _ := chess.ParseSquare(text[2:4])
	promotion := chess.NoKind
	if len(text) == 5 {
		promotion = chess.KindFromLetter(text[4])
	}

	for _, m := range engine.LegalMoves(pos) {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%s to %s: %w", from, to, errors.ErrIllegalMove)
}
