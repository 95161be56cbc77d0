package testutil

import (
	"testing"

	"github.com/lgbarn/chess-service-go/internal/chess"
	"github.com/lgbarn/chess-service-go/internal/engine"
	"github.com/lgbarn/chess-service-go/internal/notation"
)

// Positions used across package tests.
const (
	// FoolsMateFEN is the position after 1. f3 e5 2. g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// CaptureFEN is 1. e4 d5 2. Nc3 where black's only capture is d5xe4.
	CaptureFEN = "rnbqkbnr/ppp1pppp/8/3p4/4P3/2N5/PPPP1PPP/R1BQKBNR b KQkq - 1 2"

	// StalemateFEN has black to move with no legal move and not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// KiwipeteFEN is the standard perft stress position.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

// MustPosition parses fen or fails the test.
func MustPosition(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("parsing FEN %q: %v", fen, err)
	}
	return pos
}

// MustPlay decodes and applies each move to pos in turn, failing the test
// on the first move that is rejected. It returns the moves played.
func MustPlay(t testing.TB, pos *chess.Position, moves ...string) []chess.Move {
	t.Helper()
	played := make([]chess.Move, 0, len(moves))
	for i, text := range moves {
		m, err := notation.Decode(text, pos)
		if err != nil {
			t.Fatalf("move %d %q: %v", i+1, text, err)
		}
		engine.Apply(pos, m)
		played = append(played, m)
	}
	return played
}

// MoveTexts returns the coordinate text of each move.
func MoveTexts(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = notation.EncodeCoordinate(m)
	}
	return out
}

// LegalMoveTexts returns the coordinate text of every legal move in pos.
func LegalMoveTexts(pos *chess.Position) []string {
	return MoveTexts(engine.LegalMoves(pos))
}
