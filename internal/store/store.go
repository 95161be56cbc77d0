// Package store checkpoints the live game so a restarted server can
// replay it.
package store

import (
	"context"
	"time"
)

// Checkpoint is the replayable record of one game: its id and the moves
// played from the initial position in coordinate notation.
type Checkpoint struct {
	GameID    string    `json:"game_id"`
	Moves     []string  `json:"moves"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store saves and loads the single live checkpoint.
type Store interface {
	Save(ctx context.Context, cp *Checkpoint) error
	// Load returns nil, nil when nothing is stored.
	Load(ctx context.Context) (*Checkpoint, error)
	Clear(ctx context.Context) error
}

// Nop is a Store that keeps nothing. It is used when no redis URL is
// configured.
type Nop struct{}

func (Nop) Save(context.Context, *Checkpoint) error   { return nil }
func (Nop) Load(context.Context) (*Checkpoint, error) { return nil, nil }
func (Nop) Clear(context.Context) error               { return nil }
