package engine

import "github.com/lgbarn/chess-service-go/internal/chess"

// Apply plays m on pos in place and returns the record needed to take it
// back. The move is assumed to come from PseudoLegalMoves or LegalMoves
// for this position; nothing is validated here.
func Apply(pos *chess.Position, m chess.Move) chess.UndoRecord {
	moved := pos.Get(m.From)
	rec := chess.UndoRecord{
		Move:           m,
		Moved:          moved,
		CapturedSquare: chess.NoSquare,
		Castling:       pos.Castling,
		EnPassant:      pos.EnPassant,
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.FullmoveNumber,
	}

	// Remove any captured piece first; en passant takes from beside the
	// destination.
	captureSq := m.To
	if m.Has(chess.FlagEnPassant) {
		captureSq = chess.NewSquare(m.To.File(), m.From.Rank())
	}
	if captured, ok := pos.PieceAt(captureSq); ok {
		rec.Captured = captured
		rec.CapturedSquare = captureSq
		pos.Set(captureSq, chess.NoPiece)
	}

	placed := moved
	if m.IsPromotion() {
		placed = chess.MakePiece(moved.Colour(), m.Promotion)
	}
	pos.Set(m.From, chess.NoPiece)
	pos.Set(m.To, placed)

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m)
		rook := pos.Get(rookFrom)
		pos.Set(rookFrom, chess.NoPiece)
		pos.Set(rookTo, rook)
	}

	pos.Castling &^= castlingLoss[m.From] | castlingLoss[m.To]

	pos.EnPassant = chess.NoSquare
	if m.Has(chess.FlagDoublePush) {
		pos.EnPassant = chess.NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}

	if moved.Kind() == chess.Pawn || rec.Captured != chess.NoPiece {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if pos.ToMove == chess.Black {
		pos.FullmoveNumber++
	}
	pos.ToMove = pos.ToMove.Opposite()

	return rec
}

// Undo reverses the move recorded in rec, restoring pos exactly as it
// was before Apply.
func Undo(pos *chess.Position, rec chess.UndoRecord) {
	m := rec.Move

	pos.ToMove = pos.ToMove.Opposite()
	pos.Castling = rec.Castling
	pos.EnPassant = rec.EnPassant
	pos.HalfmoveClock = rec.HalfmoveClock
	pos.FullmoveNumber = rec.FullmoveNumber

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m)
		rook := pos.Get(rookTo)
		pos.Set(rookTo, chess.NoPiece)
		pos.Set(rookFrom, rook)
	}

	pos.Set(m.To, chess.NoPiece)
	pos.Set(m.From, rec.Moved)
	if rec.Captured != chess.NoPiece {
		pos.Set(rec.CapturedSquare, rec.Captured)
	}
}
