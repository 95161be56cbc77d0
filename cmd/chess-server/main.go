// chess-server serves a single shared chess game over HTTP and websockets.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-service-go/internal/config"
	"github.com/lgbarn/chess-service-go/internal/game"
	"github.com/lgbarn/chess-service-go/internal/httpapi"
	"github.com/lgbarn/chess-service-go/internal/msgcat"
	"github.com/lgbarn/chess-service-go/internal/obslog"
	"github.com/lgbarn/chess-service-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("chess-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		os.Exit(1)
	}

	log := obslog.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

// run serves until ctx is cancelled and then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	msgs, err := msgcat.New(cfg.Game.MessagesDir)
	if err != nil {
		return fmt.Errorf("loading messages: %w", err)
	}

	st, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	h := httpapi.NewHandler(game.NewService(nil), httpapi.Options{
		Logger:            log,
		Store:             st,
		Catalog:           msgs,
		DefaultDifficulty: cfg.Game.DefaultDifficulty,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
	})
	if err := h.Restore(ctx); err != nil {
		log.Warn("checkpoint not restored, starting a new game", zap.Error(err))
	}

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: h.Router()}
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	h.Hub().Close()
	return srv.Shutdown(shutdownCtx)
}

// openStore connects to redis when a URL is configured and otherwise
// returns a store that keeps nothing.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Store, func(), error) {
	if cfg.Store.RedisURL == "" {
		return store.Nop{}, func() {}, nil
	}
	rdb, err := store.Connect(ctx, cfg.Store.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("checkpointing to redis", zap.String("key", cfg.Store.CheckpointKey))
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			log.Warn("closing redis", zap.Error(err))
		}
	}
	return store.NewRedisStore(rdb, cfg.Store.CheckpointKey, cfg.Store.CheckpointTTL), closeFn, nil
}
