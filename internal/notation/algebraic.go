package notation

import (
	"strings"

	"github.com/lgbarn/chess-service-go/internal/chess"
	"github.com/lgbarn/chess-service-go/internal/engine"
)

// Castling strings.
const (
	KingsideCastle  = "O-O"
	QueensideCastle = "O-O-O"
)

// EncodeAlgebraic renders m, a legal move in pos, in standard algebraic
// notation with minimal disambiguation and a check or mate suffix.
// pos is not modified.
func EncodeAlgebraic(m chess.Move, pos *chess.Position) string {
	var sb strings.Builder

	switch {
	case m.Has(chess.FlagCastleKingside):
		sb.WriteString(KingsideCastle)
	case m.Has(chess.FlagCastleQueenside):
		sb.WriteString(QueensideCastle)
	default:
		kind := pos.Get(m.From).Kind()
		if kind == chess.Pawn {
			if m.IsCapture() {
				sb.WriteByte(m.From.FileChar())
				sb.WriteByte('x')
			}
		} else {
			sb.WriteByte(kind.Letter())
			sb.WriteString(disambiguation(m, pos, kind))
			if m.IsCapture() {
				sb.WriteByte('x')
			}
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	}

	after := pos.Copy()
	engine.Apply(after, m)
	switch engine.DeriveStatus(after) {
	case engine.Checkmate:
		sb.WriteByte('#')
	case engine.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other pieces of the same kind that can reach the same square.
func disambiguation(m chess.Move, pos *chess.Position, kind chess.Kind) string {
	var rivals, sameFile, sameRank int
	for _, other := range engine.LegalMoves(pos) {
		if other.To != m.To || other.From == m.From || pos.Get(other.From).Kind() != kind {
			continue
		}
		rivals++
		if other.From.File() == m.From.File() {
			sameFile++
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank++
		}
	}

	switch {
	case rivals == 0:
		return ""
	case sameFile == 0:
		return string(m.From.FileChar())
	case sameRank == 0:
		return string(m.From.RankChar())
	}
	return m.From.String()
}
