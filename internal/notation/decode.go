package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-service-go/internal/chess"
	"github.com/lgbarn/chess-service-go/internal/engine"
	"github.com/lgbarn/chess-service-go/internal/errors"
)

// isCapture returns true if c is a capture character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isSuffix returns true for check, mate and annotation marks.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// pieceLetter returns the kind named by a leading SAN piece letter.
// Only uppercase letters count; a lowercase 'b' is the b-file.
func pieceLetter(c byte) chess.Kind {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return chess.KindFromLetter(c)
	}
	return chess.NoKind
}

// sanMove is the board-independent content of an algebraic move.
type sanMove struct {
	castle    chess.MoveFlag // FlagCastleKingside or FlagCastleQueenside, or 0
	kind      chess.Kind
	to        chess.Square
	fromFile  int // -1 when absent
	fromRank  int // -1 when absent
	promotion chess.Kind
}

// parseSAN splits algebraic text into its parts without looking at a board.
func parseSAN(text string) (sanMove, error) {
	san := sanMove{fromFile: -1, fromRank: -1}

	s := strings.TrimRightFunc(text, func(r rune) bool { return r < 0x80 && isSuffix(byte(r)) })
	if s == "" {
		return san, fmt.Errorf("empty move: %w", errors.ErrInvalidNotation)
	}

	if isCastlingChar(s[0]) {
		return parseCastling(s)
	}

	san.kind = chess.Pawn
	if k := pieceLetter(s[0]); k != chess.NoKind {
		san.kind = k
		s = s[1:]
	}

	// Promotion: e8=Q or e8Q.
	if san.kind == chess.Pawn && len(s) >= 3 && isPromotionLetter(s[len(s)-1]) {
		san.promotion = chess.KindFromLetter(s[len(s)-1])
		s = strings.TrimSuffix(s[:len(s)-1], "=")
	}
	if strings.IndexByte(s, '=') >= 0 {
		return san, fmt.Errorf("misplaced '=': %w", errors.ErrInvalidNotation)
	}

	if len(s) < 2 {
		return san, fmt.Errorf("no destination square: %w", errors.ErrInvalidNotation)
	}
	to, ok := chess.ParseSquare(s[len(s)-2:])
	if !ok {
		return san, fmt.Errorf("no destination square: %w", errors.ErrInvalidNotation)
	}
	san.to = to

	prefix := s[:len(s)-2]
	capture := prefix != "" && isCapture(prefix[len(prefix)-1])
	if capture {
		prefix = prefix[:len(prefix)-1]
	}

	// Disambiguation: file, rank, or both, in that order.
	if prefix != "" && chess.IsFile(prefix[0]) {
		san.fromFile = int(prefix[0] - chess.FirstFile)
		prefix = prefix[1:]
	}
	if prefix != "" && chess.IsRank(prefix[0]) {
		san.fromRank = int(prefix[0] - chess.FirstRank)
		prefix = prefix[1:]
	}
	if prefix != "" {
		return san, fmt.Errorf("unexpected %q: %w", prefix, errors.ErrInvalidNotation)
	}

	if san.kind == chess.Pawn {
		if san.fromRank >= 0 {
			return san, fmt.Errorf("pawn moves take no rank hint: %w", errors.ErrInvalidNotation)
		}
		if capture && san.fromFile < 0 {
			return san, fmt.Errorf("pawn capture needs a file: %w", errors.ErrInvalidNotation)
		}
		// A bare pawn destination means a straight push.
		if san.fromFile < 0 {
			san.fromFile = to.File()
		}
	}
	return san, nil
}

// parseCastling accepts O-O and O-O-O with optional separators.
func parseCastling(s string) (sanMove, error) {
	san := sanMove{fromFile: -1, fromRank: -1, kind: chess.King}
	count := 0
	for i := 0; i < len(s); i++ {
		switch {
		case isCastlingChar(s[i]):
			count++
		case s[i] == '-':
		default:
			return san, fmt.Errorf("bad castling %q: %w", s, errors.ErrInvalidNotation)
		}
	}
	switch count {
	case 2:
		san.castle = chess.FlagCastleKingside
	case 3:
		san.castle = chess.FlagCastleQueenside
	default:
		return san, fmt.Errorf("bad castling %q: %w", s, errors.ErrInvalidNotation)
	}
	return san, nil
}

// matches reports whether the legal move m fits san in pos.
func (san sanMove) matches(pos *chess.Position, m chess.Move) bool {
	if san.castle != 0 {
		return m.Has(san.castle)
	}
	if m.IsCastle() || m.To != san.to || m.Promotion != san.promotion {
		return false
	}
	if pos.Get(m.From).Kind() != san.kind {
		return false
	}
	if san.fromFile >= 0 && m.From.File() != san.fromFile {
		return false
	}
	return san.fromRank < 0 || m.From.Rank() == san.fromRank
}

// DecodeAlgebraic parses algebraic text and resolves it against the legal
// moves of pos. Unparseable text fails with ErrInvalidNotation, text that
// fits no legal move with ErrIllegalMove and text that fits several with
// ErrAmbiguousMove. Capture marks are optional; check, mate and annotation
// suffixes are ignored.
func DecodeAlgebraic(text string, pos *chess.Position) (chess.Move, error) {
	san, err := parseSAN(text)
	if err != nil {
		return chess.Move{}, err
	}

	var found []chess.Move
	for _, m := range engine.LegalMoves(pos) {
		if san.matches(pos, m) {
			found = append(found, m)
		}
	}

	switch len(found) {
	case 0:
		return chess.Move{}, fmt.Errorf("no legal move fits %q: %w", text, errors.ErrIllegalMove)
	case 1:
		return found[0], nil
	}
	return chess.Move{}, fmt.Errorf("%q fits %d moves: %w", text, len(found), errors.ErrAmbiguousMove)
}
