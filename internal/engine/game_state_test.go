package engine

import (
	"testing"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Status
	}{
		{"initial", InitialFEN, Ongoing},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", Checkmate},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/K2R4 b - - 0 1", Ongoing},
		{"back rank mate delivered", "3R2k1/5ppp/8/8/8/8/8/K7 b - - 0 1", Checkmate},
		{"check", "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3", Check},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
		{"king and pawn stalemate", "k7/P7/1K6/8/8/8/8/8 b - - 0 1", Stalemate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, tt.fen)
			if got := DeriveStatus(pos); got != tt.want {
				t.Errorf("DeriveStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFoolsMateFromStart(t *testing.T) {
	pos := mustPosition(t, InitialFEN)
	for _, text := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if DeriveStatus(pos).IsTerminal() {
			t.Fatalf("game ended before %s", text)
		}
		Apply(pos, findMove(t, pos, text))
	}
	if got := DeriveStatus(pos); got != Checkmate {
		t.Errorf("DeriveStatus() = %v, want checkmate", got)
	}
	if len(LegalMoves(pos)) != 0 {
		t.Error("checkmated side still has legal moves")
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		status   Status
		want     string
		terminal bool
	}{
		{Ongoing, "ongoing", false},
		{Check, "check", false},
		{Checkmate, "checkmate", true},
		{Stalemate, "stalemate", true},
	}
	for _, tt := range tests {
		text, err := tt.status.MarshalText()
		if err != nil || string(text) != tt.want {
			t.Errorf("MarshalText() = (%q, %v), want %q", text, err, tt.want)
		}
		if tt.status.IsTerminal() != tt.terminal {
			t.Errorf("%v.IsTerminal() = %v, want %v", tt.status, tt.status.IsTerminal(), tt.terminal)
		}
	}
}
