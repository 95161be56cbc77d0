// chess-perft counts move-generation nodes from a position, for checking
// the move generator against published perft results.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/lgbarn/chess-service-go/internal/engine"
	"github.com/lgbarn/chess-service-go/internal/worker"
)

var (
	fen     = flag.String("fen", engine.InitialFEN, "Position to search")
	depth   = flag.Int("depth", 4, "Search depth in plies")
	workers = flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines")
	divide  = flag.Bool("divide", false, "Print the node count below each root move")
	timing  = flag.Bool("time", false, "Print elapsed time and nodes per second")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts legal move paths to a fixed depth.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, *fen, *depth, *workers, *divide, *timing); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run writes the perft result for fen to w. Interrupting ctx abandons the
// search and returns its error.
func run(ctx context.Context, w io.Writer, fen string, depth, workers int, showDivide, showTime bool) error {
	if depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", depth)
	}
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}

	start := time.Now()
	counts, total, err := worker.Divide(ctx, pos, depth, workers)
	if err != nil {
		return fmt.Errorf("perft interrupted: %w", err)
	}
	elapsed := time.Since(start)

	if showDivide {
		for _, c := range counts {
			fmt.Fprintf(w, "%s: %d\n", c.Move, c.Nodes)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Nodes searched: %d\n", total)
	if showTime {
		nps := float64(total) / elapsed.Seconds()
		fmt.Fprintf(w, "Time: %v (%.0f nodes/s)\n", elapsed.Round(time.Millisecond), nps)
	}
	return nil
}
