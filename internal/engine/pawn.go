package engine

import "github.com/lgbarn/chess-service-go/internal/chess"

// appendPawnMoves adds single and double pushes, diagonal captures,
// en passant and promotions for the pawn on from.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square) []chess.Move {
	colour := pos.ToMove
	dir := colour.Forward()
	startRank := colour.HomeRank() + dir
	lastRank := colour.Opposite().HomeRank()

	// Forward move
	if one := from.Offset(0, dir); one != chess.NoSquare && pos.Get(one) == chess.NoPiece {
		moves = appendPawnMove(moves, from, one, 0, lastRank)

		// Double push from starting rank
		if from.Rank() == startRank {
			if two := from.Offset(0, 2*dir); pos.Get(two) == chess.NoPiece {
				moves = append(moves, chess.Move{From: from, To: two, Flags: chess.FlagDoublePush})
			}
		}
	}

	// Captures
	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if to == chess.NoSquare {
			continue
		}
		if target, ok := pos.PieceAt(to); ok {
			if target.Colour() != colour {
				moves = appendPawnMove(moves, from, to, chess.FlagCapture, lastRank)
			}
			continue
		}
		if to == pos.EnPassant && isEnPassantVictim(pos, chess.NewSquare(to.File(), from.Rank())) {
			moves = append(moves, chess.Move{From: from, To: to, Flags: chess.FlagCapture | chess.FlagEnPassant})
		}
	}
	return moves
}

// appendPawnMove adds a pawn move, expanded into one move per promotion
// kind when it lands on the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, flags chess.MoveFlag, lastRank int) []chess.Move {
	if to.Rank() != lastRank {
		return append(moves, chess.Move{From: from, To: to, Flags: flags})
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind, Flags: flags})
	}
	return moves
}

// isEnPassantVictim reports whether sq holds an enemy pawn that can be
// taken en passant. It guards against en-passant targets from a FEN
// that no double push could have produced.
func isEnPassantVictim(pos *chess.Position, sq chess.Square) bool {
	return pos.Get(sq) == chess.MakePiece(pos.ToMove.Opposite(), chess.Pawn)
}
