package engine

import "github.com/lgbarn/chess-service-go/internal/chess"

// PseudoLegalMoves returns every move the side to move could make if
// leaving its own king in check were allowed. Squares are scanned from
// a1 to h8, so the order is deterministic for a given position.
func PseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece, ok := pos.PieceAt(sq)
		if !ok || piece.Colour() != pos.ToMove {
			continue
		}
		switch piece.Kind() {
		case chess.Pawn:
			moves = appendPawnMoves(moves, pos, sq)
		case chess.Knight:
			moves = appendStepMoves(moves, pos, sq, knightOffsets)
		case chess.Bishop:
			moves = appendSlidingMoves(moves, pos, sq, diagonalDirs)
		case chess.Rook:
			moves = appendSlidingMoves(moves, pos, sq, straightDirs)
		case chess.Queen:
			moves = appendSlidingMoves(moves, pos, sq, diagonalDirs)
			moves = appendSlidingMoves(moves, pos, sq, straightDirs)
		case chess.King:
			moves = appendStepMoves(moves, pos, sq, kingOffsets)
			moves = appendCastlingMoves(moves, pos, sq)
		}
	}
	return moves
}

// LegalMoves returns the pseudo-legal moves that do not leave the mover's
// king attacked. pos is not modified.
func LegalMoves(pos *chess.Position) []chess.Move {
	pseudo := PseudoLegalMoves(pos)
	legal := pseudo[:0]
	scratch := pos.Copy()
	for _, m := range pseudo {
		if leavesKingSafe(scratch, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	scratch := pos.Copy()
	for _, m := range PseudoLegalMoves(pos) {
		if leavesKingSafe(scratch, m) {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is one of the legal moves in pos.
func IsLegal(pos *chess.Position, m chess.Move) bool {
	for _, legal := range LegalMoves(pos) {
		if legal == m {
			return true
		}
	}
	return false
}

// leavesKingSafe plays m on scratch, checks the mover's king and takes
// the move back again.
func leavesKingSafe(scratch *chess.Position, m chess.Move) bool {
	mover := scratch.ToMove
	rec := Apply(scratch, m)
	safe := !IsKingAttacked(scratch, mover)
	Undo(scratch, rec)
	return safe
}
