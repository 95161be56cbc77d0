package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-service-go/internal/chess"
)

func mustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func TestLegalMoves_Initial(t *testing.T) {
	pos := chess.NewInitialPosition()
	got := moveStrings(LegalMoves(pos))
	want := []string{
		"a2a3", "a2a4", "b1a3", "b1c3", "b2b3", "b2b4", "c2c3", "c2c4",
		"d2d3", "d2d4", "e2e3", "e2e4", "f2f3", "f2f4", "g1f3", "g1h3",
		"g2g3", "g2g4", "h2h3", "h2h4",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LegalMoves() mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMoves_DeterministicOrder(t *testing.T) {
	pos := mustPosition(t, benchFENs["Complex"])
	first := LegalMoves(pos)
	second := LegalMoves(pos)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("LegalMoves order changed between calls (-first +second):\n%s", diff)
	}
}

func TestLegalMoves_NeverLeaveKingAttacked(t *testing.T) {
	for name, fen := range benchFENs {
		t.Run(name, func(t *testing.T) {
			pos := mustPosition(t, fen)
			mover := pos.ToMove
			for _, m := range LegalMoves(pos) {
				cp := pos.Copy()
				Apply(cp, m)
				if IsKingAttacked(cp, mover) {
					t.Errorf("move %s leaves the %v king attacked", m, mover)
				}
			}
		})
	}
}

func TestLegalMoves_Pinned(t *testing.T) {
	// The knight on e2 is pinned against the king by the rook on e8.
	pos := mustPosition(t, "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")
	for _, m := range LegalMoves(pos) {
		if m.From == chess.E2 {
			t.Errorf("pinned knight produced move %s", m)
		}
	}
}

func TestLegalMoves_Castling(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		kingside  bool
		queenside bool
	}{
		{"both available", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", false, false},
		{"in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", false, false},
		{"f1 attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", false, true},
		{"d1 attacked", "r3k2r/8/8/8/8/8/3r4/R3K2R w KQ - 0 1", true, false},
		{"b1 attacked only", "r3k2r/8/8/8/8/8/1r6/R3K2R w KQ - 0 1", true, true},
		{"g1 blocked", "r3k2r/8/8/8/8/8/8/R3K1NR w KQ - 0 1", false, true},
		{"b1 blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQ - 0 1", true, false},
		{"rook missing", "r3k2r/8/8/8/8/8/8/4K2R w KQ - 0 1", true, false},
		{"black both", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, tt.fen)
			var gotK, gotQ bool
			for _, m := range LegalMoves(pos) {
				gotK = gotK || m.Has(chess.FlagCastleKingside)
				gotQ = gotQ || m.Has(chess.FlagCastleQueenside)
			}
			if gotK != tt.kingside || gotQ != tt.queenside {
				t.Errorf("castling = (K %v, Q %v), want (K %v, Q %v)", gotK, gotQ, tt.kingside, tt.queenside)
			}
		})
	}
}

func TestLegalMoves_EnPassant(t *testing.T) {
	pos := mustPosition(t, benchFENs["EnPassant"])
	var found bool
	for _, m := range LegalMoves(pos) {
		if m.From == chess.F5 && m.To == chess.E6 {
			found = true
			if !m.Has(chess.FlagEnPassant) || !m.IsCapture() {
				t.Errorf("f5e6 flags = %b, want capture|en passant", m.Flags)
			}
		}
	}
	if !found {
		t.Error("en passant f5e6 not generated")
	}

	// Without the target square the capture is gone.
	pos.EnPassant = chess.NoSquare
	for _, m := range LegalMoves(pos) {
		if m.From == chess.F5 && m.To == chess.E6 {
			t.Error("en passant generated without a target square")
		}
	}
}

func TestLegalMoves_Promotion(t *testing.T) {
	pos := mustPosition(t, "1n5k/P7/8/8/8/8/8/4K3 w - - 0 1")
	var promos []string
	for _, m := range LegalMoves(pos) {
		if m.IsPromotion() {
			promos = append(promos, m.String())
		}
	}
	sort.Strings(promos)
	want := []string{"a7a8b", "a7a8n", "a7a8q", "a7a8r", "a7b8b", "a7b8n", "a7b8q", "a7b8r"}
	if diff := cmp.Diff(want, promos); diff != "" {
		t.Errorf("promotions mismatch (-want +got):\n%s", diff)
	}
}

func TestIsLegal(t *testing.T) {
	pos := chess.NewInitialPosition()
	if !IsLegal(pos, chess.Move{From: chess.E2, To: chess.E4, Flags: chess.FlagDoublePush}) {
		t.Error("e2e4 should be legal")
	}
	if IsLegal(pos, chess.Move{From: chess.E2, To: chess.E5}) {
		t.Error("e2e5 should not be legal")
	}
}

func TestIsAttacked(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/3p4/8/5N2/8/R3K3 w - - 0 1")
	tests := []struct {
		sq   chess.Square
		by   chess.Colour
		want bool
	}{
		{chess.E4, chess.Black, true},  // pawn d5
		{chess.C4, chess.Black, true},  // pawn d5
		{chess.D4, chess.Black, false}, // pawns do not attack forward
		{chess.E5, chess.White, true},  // knight f3
		{chess.A8, chess.White, true},  // rook a1
		{chess.D2, chess.White, true},  // king e1
		{chess.H8, chess.White, false},
		{chess.D8, chess.Black, true}, // king e8
	}
	for _, tt := range tests {
		if got := IsAttacked(pos, tt.sq, tt.by); got != tt.want {
			t.Errorf("IsAttacked(%v, %v) = %v, want %v", tt.sq, tt.by, got, tt.want)
		}
	}
}
