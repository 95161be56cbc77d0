package engine

import "github.com/lgbarn/chess-service-go/internal/chess"

// Direction tables as (file, rank) deltas.
var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	diagonalDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	straightDirs  = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

// appendStepMoves adds the one-step moves of a knight or king.
func appendStepMoves(moves []chess.Move, pos *chess.Position, from chess.Square, offsets [8][2]int) []chess.Move {
	colour := pos.ToMove
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if to == chess.NoSquare {
			continue
		}
		target, occupied := pos.PieceAt(to)
		switch {
		case !occupied:
			moves = append(moves, chess.Move{From: from, To: to})
		case target.Colour() != colour:
			moves = append(moves, chess.Move{From: from, To: to, Flags: chess.FlagCapture})
		}
	}
	return moves
}

// appendSlidingMoves adds the moves of a bishop, rook or queen. Each ray
// stops at the first occupied square, which is included if it holds an
// enemy piece.
func appendSlidingMoves(moves []chess.Move, pos *chess.Position, from chess.Square, dirs [4][2]int) []chess.Move {
	colour := pos.ToMove
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to != chess.NoSquare; to = to.Offset(dir[0], dir[1]) {
			target, occupied := pos.PieceAt(to)
			if !occupied {
				moves = append(moves, chess.Move{From: from, To: to})
				continue
			}
			if target.Colour() != colour {
				moves = append(moves, chess.Move{From: from, To: to, Flags: chess.FlagCapture})
			}
			break // Blocked
		}
	}
	return moves
}
