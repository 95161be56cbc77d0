package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-service-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-service-go/internal/errors"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  string
	}{
		{"initial depth 2", engine.InitialFEN, 2, "Nodes searched: 400\n"},
		{"depth 0", engine.InitialFEN, 0, "Nodes searched: 1\n"},
		{"en passant position", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, "Nodes searched: 191\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := run(context.Background(), &buf, tt.fen, tt.depth, 2, false, false); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRunDivide(t *testing.T) {
	var buf bytes.Buffer
	if err := run(context.Background(), &buf, engine.InitialFEN, 1, 2, true, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// 20 root moves, a blank line, the total.
	if len(lines) != 22 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "a2a3: 1" || lines[len(lines)-1] != "Nodes searched: 20" {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := run(context.Background(), &buf, "not a fen", 1, 1, false, false); !errors.Is(err, chesserrors.ErrInvalidFEN) {
		t.Errorf("bad FEN error = %v, want ErrInvalidFEN", err)
	}
	if err := run(context.Background(), &buf, engine.InitialFEN, -1, 1, false, false); err == nil {
		t.Error("negative depth accepted")
	}
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := run(ctx, &buf, engine.InitialFEN, 3, 2, false, false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("run error = %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Errorf("interrupted run wrote %q", buf.String())
	}
}
