// flags.go - Command-line flag definitions
package main

import (
	"flag"

	"github.com/lgbarn/chess-service-go/internal/config"
)

var (
	configFile = flag.String("config", "", "Configuration file (yaml, json, toml or env)")

	// Overrides applied on top of the loaded configuration
	addr       = flag.String("addr", "", "Listen address (default from config, :5000)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat  = flag.String("log-format", "", "Log format: console or json")
	difficulty = flag.Int("difficulty", 0, "Default computer difficulty 1-10")
	redisURL   = flag.String("redis", "", "Redis URL for game checkpoints (empty disables)")

	version = flag.Bool("version", false, "Print version and exit")
)

// applyFlags overlays explicitly set flags onto cfg.
func applyFlags(cfg *config.Config) {
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *difficulty != 0 {
		cfg.Game.DefaultDifficulty = *difficulty
	}
	if *redisURL != "" {
		cfg.Store.RedisURL = *redisURL
	}
}
