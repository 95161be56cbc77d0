// Package hashing provides Zobrist position hashes and the repetition
// bookkeeping built on them.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-service-go/internal/chess"
)

const (
	numSquares = chess.BoardSize * chess.BoardSize
	pieceSlots = int(chess.King)<<chess.PieceShift + int(chess.White) + 1
)

// Fixed seed so hashes are stable across runs.
const seed1, seed2 = 0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9

var (
	pieceKeys     [numSquares][pieceSlots]uint64
	blackToMove   uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewPCG(seed1, seed2))
	for sq := range pieceKeys {
		for p := range pieceKeys[sq] {
			pieceKeys[sq][p] = rng.Uint64()
		}
	}
	blackToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
}

// Hash returns the Zobrist hash of pos. Move counters are not part of
// the hash. The en-passant file counts only when a pawn of the side to
// move stands ready to capture, so positions that differ only in an
// unusable target hash alike.
func Hash(pos *chess.Position) uint64 {
	var h uint64
	for sq, p := range pos.Squares {
		if p != chess.NoPiece {
			h ^= pieceKeys[sq][p]
		}
	}
	if pos.ToMove == chess.Black {
		h ^= blackToMove
	}
	h ^= castlingKeys[pos.Castling&0x0f]
	if enPassantCapturable(pos) {
		h ^= enPassantKeys[pos.EnPassant.File()]
	}
	return h
}

func enPassantCapturable(pos *chess.Position) bool {
	ep := pos.EnPassant
	if !ep.Valid() {
		return false
	}
	pawn := chess.MakePiece(pos.ToMove, chess.Pawn)
	back := -pos.ToMove.Forward()
	return pos.Get(ep.Offset(-1, back)) == pawn || pos.Get(ep.Offset(1, back)) == pawn
}
