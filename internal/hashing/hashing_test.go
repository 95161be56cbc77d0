package hashing

import (
	"testing"

	"github.com/lgbarn/chess-service-go/internal/chess"
	"github.com/lgbarn/chess-service-go/internal/engine"
	"github.com/lgbarn/chess-service-go/internal/testutil"
)

func TestHashConsistency(t *testing.T) {
	a := chess.NewInitialPosition()
	b := testutil.MustPosition(t, engine.InitialFEN)
	if Hash(a) != Hash(b) {
		t.Errorf("identical positions hash differently: %x != %x", Hash(a), Hash(b))
	}
}

func TestHashIgnoresMoveCounters(t *testing.T) {
	a := testutil.MustPosition(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	b := testutil.MustPosition(t, "4k3/8/8/8/8/8/8/4K2R w K - 37 60")
	if Hash(a) != Hash(b) {
		t.Error("move counters changed the hash")
	}
}

func TestHashDistinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"placement", engine.InitialFEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1"},
		{"side to move", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "4k3/8/8/8/8/8/8/4K3 b - - 0 1"},
		{"castling", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "4k3/8/8/8/8/8/8/4K2R w - - 0 1"},
		{"usable en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Hash(testutil.MustPosition(t, tt.a)) == Hash(testutil.MustPosition(t, tt.b)) {
				t.Errorf("%q and %q hash alike", tt.a, tt.b)
			}
		})
	}
}

func TestHashIgnoresUnusableEnPassant(t *testing.T) {
	// After 1. e4 no black pawn can take on e3.
	a := testutil.MustPosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	b := testutil.MustPosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	if Hash(a) != Hash(b) {
		t.Error("unusable en-passant target changed the hash")
	}
}

func TestHashSurvivesApplyUndo(t *testing.T) {
	pos := testutil.MustPosition(t, testutil.KiwipeteFEN)
	want := Hash(pos)
	for _, m := range engine.LegalMoves(pos) {
		rec := engine.Apply(pos, m)
		engine.Undo(pos, rec)
		if got := Hash(pos); got != want {
			t.Fatalf("hash after %s and undo = %x, want %x", m, got, want)
		}
	}
}

func TestRepetitions(t *testing.T) {
	pos := chess.NewInitialPosition()
	r := NewRepetitions(Hash(pos))
	testutil.AssertEqual(t, r.Current(), 1)

	// Knights out and back twice returns to the start position twice.
	for i, text := range []string{"Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8"} {
		testutil.MustPlay(t, pos, text)
		r.Push(Hash(pos))
		if i == 3 {
			testutil.AssertEqual(t, r.Current(), 2, "after first cycle")
		}
	}
	testutil.AssertEqual(t, r.Current(), 3, "after second cycle")
	testutil.AssertEqual(t, r.Len(), 9)

	r.Pop()
	testutil.AssertEqual(t, r.Current(), 2, "after Pop, position with Nf6 twice")

	r.Reset(Hash(chess.NewInitialPosition()))
	r.Pop()
	testutil.AssertEqual(t, r.Len(), 1, "Pop never drops the initial position")
	testutil.AssertEqual(t, r.Current(), 1)
}

func BenchmarkHash(b *testing.B) {
	pos, err := engine.NewPositionFromFEN(testutil.KiwipeteFEN)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Hash(pos)
	}
}
