package engine

import "github.com/lgbarn/chess-service-go/internal/chess"

// castlingLoss maps a square to the rights that lapse when a piece moves
// from or to it.
var castlingLoss = map[chess.Square]chess.CastlingRights{
	chess.E1: chess.WhiteKingside | chess.WhiteQueenside,
	chess.H1: chess.WhiteKingside,
	chess.A1: chess.WhiteQueenside,
	chess.E8: chess.BlackKingside | chess.BlackQueenside,
	chess.H8: chess.BlackKingside,
	chess.A8: chess.BlackQueenside,
}

// castleSide describes the squares involved in one castling move.
type castleSide struct {
	flag     chess.MoveFlag
	kingTo   int // file
	rookFrom int
	rookTo   int
	empty    []int // files between king and rook
	safe     []int // files the king crosses or lands on
}

var (
	kingside = castleSide{
		flag:     chess.FlagCastleKingside,
		kingTo:   6,
		rookFrom: 7,
		rookTo:   5,
		empty:    []int{5, 6},
		safe:     []int{5, 6},
	}
	queenside = castleSide{
		flag:     chess.FlagCastleQueenside,
		kingTo:   2,
		rookFrom: 0,
		rookTo:   3,
		empty:    []int{1, 2, 3},
		safe:     []int{3, 2},
	}
)

// kingStartFile is the e-file.
const kingStartFile = 4

// appendCastlingMoves adds the castling moves available to the king on
// from. Castling out of check, through an attacked square or onto one is
// never generated.
func appendCastlingMoves(moves []chess.Move, pos *chess.Position, from chess.Square) []chess.Move {
	colour := pos.ToMove
	home := colour.HomeRank()
	if from != chess.NewSquare(kingStartFile, home) {
		return moves
	}

	var sides []castleSide
	if pos.Castling.Has(chess.KingsideRight(colour)) {
		sides = append(sides, kingside)
	}
	if pos.Castling.Has(chess.QueensideRight(colour)) {
		sides = append(sides, queenside)
	}
	if len(sides) == 0 || IsAttacked(pos, from, colour.Opposite()) {
		return moves
	}

	for _, side := range sides {
		if canCastle(pos, colour, side) {
			moves = append(moves, chess.Move{
				From:  from,
				To:    chess.NewSquare(side.kingTo, home),
				Flags: side.flag,
			})
		}
	}
	return moves
}

func canCastle(pos *chess.Position, colour chess.Colour, side castleSide) bool {
	home := colour.HomeRank()
	if pos.Get(chess.NewSquare(side.rookFrom, home)) != chess.MakePiece(colour, chess.Rook) {
		return false
	}
	for _, file := range side.empty {
		if pos.Get(chess.NewSquare(file, home)) != chess.NoPiece {
			return false
		}
	}
	for _, file := range side.safe {
		if IsAttacked(pos, chess.NewSquare(file, home), colour.Opposite()) {
			return false
		}
	}
	return true
}

// castleRookSquares returns where the rook starts and ends for a castling move.
func castleRookSquares(m chess.Move) (from, to chess.Square) {
	side := kingside
	if m.Has(chess.FlagCastleQueenside) {
		side = queenside
	}
	rank := m.From.Rank()
	return chess.NewSquare(side.rookFrom, rank), chess.NewSquare(side.rookTo, rank)
}
