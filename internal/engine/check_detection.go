package engine

import "github.com/lgbarn/chess-service-go/internal/chess"

// IsAttacked reports whether any piece of colour by attacks sq. This is a
// pseudo-attack test: pins on the attacker are ignored, as check requires.
func IsAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) bool {
	if !sq.Valid() {
		return false
	}

	// Pawns attack diagonally forward, so look one rank behind sq from
	// the attacker's point of view.
	pawn := chess.MakePiece(by, chess.Pawn)
	for _, df := range [2]int{-1, 1} {
		if pos.Get(sq.Offset(df, -by.Forward())) == pawn {
			return true
		}
	}

	if attackedByStep(pos, sq, chess.MakePiece(by, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(pos, sq, chess.MakePiece(by, chess.King), kingOffsets) {
		return true
	}

	queen := chess.MakePiece(by, chess.Queen)
	if attackedBySlider(pos, sq, diagonalDirs, chess.MakePiece(by, chess.Bishop), queen) {
		return true
	}
	return attackedBySlider(pos, sq, straightDirs, chess.MakePiece(by, chess.Rook), queen)
}

func attackedByStep(pos *chess.Position, sq chess.Square, attacker chess.Piece, offsets [8][2]int) bool {
	for _, off := range offsets {
		if pos.Get(sq.Offset(off[0], off[1])) == attacker {
			return true
		}
	}
	return false
}

func attackedBySlider(pos *chess.Position, sq chess.Square, dirs [4][2]int, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		for s := sq.Offset(dir[0], dir[1]); s != chess.NoSquare; s = s.Offset(dir[0], dir[1]) {
			piece, occupied := pos.PieceAt(s)
			if !occupied {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break
		}
	}
	return false
}

// IsInCheck reports whether the side to move has its king attacked.
// A position without that king is never in check.
func IsInCheck(pos *chess.Position) bool {
	return IsKingAttacked(pos, pos.ToMove)
}

// IsKingAttacked reports whether colour's king is attacked by the other side.
func IsKingAttacked(pos *chess.Position, colour chess.Colour) bool {
	king := pos.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsAttacked(pos, king, colour.Opposite())
}
