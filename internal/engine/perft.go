package engine

import "github.com/lgbarn/chess-service-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// pos is restored before returning.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		rec := Apply(pos, m)
		nodes += Perft(pos, depth-1)
		Undo(pos, rec)
	}
	return nodes
}
