package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-service-go/internal/chess"
	"github.com/lgbarn/chess-service-go/internal/engine"
)

// RootCount is the perft count below one root move.
type RootCount struct {
	Move  string
	Nodes uint64
}

// CountSubtree is the ProcessFunc used by Divide.
func CountSubtree(item WorkItem) ProcessResult {
	return ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: engine.Perft(item.Position, item.Depth),
	}
}

// Divide runs perft to depth on pos with one work item per legal root
// move. Counts are sorted by move text. pos is not modified. Cancelling
// ctx stops the pool: queued subtrees are skipped and ctx.Err() is
// returned.
func Divide(ctx context.Context, pos *chess.Position, depth, workers int) ([]RootCount, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if depth <= 0 {
		return nil, 1, nil
	}
	moves := engine.LegalMoves(pos)

	pool := NewPool(CountSubtree, WithWorkers(workers), WithBufferSize(len(moves)+1))
	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	pool.Start()
	go func() {
		defer pool.Close()
		for i, m := range moves {
			child := pos.Copy()
			engine.Apply(child, m)
			if !pool.TrySubmit(WorkItem{Position: child, Move: m, Depth: depth - 1, Index: i}) {
				return
			}
		}
	}()

	counts := make([]RootCount, 0, len(moves))
	var total uint64
	for res := range pool.Results() {
		counts = append(counts, RootCount{Move: res.Move.String(), Nodes: res.Nodes})
		total += res.Nodes
	}
	if pool.IsStopped() {
		return nil, 0, ctx.Err()
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Move < counts[j].Move })
	return counts, total, nil
}
