// Package config loads the chess service configuration from defaults, an
// optional file and CHESS_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lgbarn/chess-service-go/internal/errors"
	"github.com/lgbarn/chess-service-go/internal/selector"
)

// EnvPrefix is prepended to every environment override, e.g. CHESS_ADDR.
const EnvPrefix = "CHESS"

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"log_level"`
	Format string `mapstructure:"log_format"` // json or console
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	DefaultDifficulty int    `mapstructure:"default_difficulty"`
	MessagesDir       string `mapstructure:"messages_dir"`
}

// StoreConfig holds checkpoint settings. An empty RedisURL disables
// checkpointing.
type StoreConfig struct {
	RedisURL      string        `mapstructure:"redis_url"`
	CheckpointKey string        `mapstructure:"checkpoint_key"`
	CheckpointTTL time.Duration `mapstructure:"checkpoint_ttl"`
}

// Config holds all service configuration.
type Config struct {
	Server ServerConfig `mapstructure:",squash"`
	Log    LogConfig    `mapstructure:",squash"`
	Game   GameConfig   `mapstructure:",squash"`
	Store  StoreConfig  `mapstructure:",squash"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":5000",
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Game: GameConfig{
			DefaultDifficulty: selector.CaptureThreshold,
		},
		Store: StoreConfig{
			CheckpointKey: "chess:session",
			CheckpointTTL: 24 * time.Hour,
		},
	}
}

// setDefaults registers every key so environment variables bind even
// without a config file.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("addr", cfg.Server.Addr)
	v.SetDefault("shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("allowed_origins", cfg.Server.AllowedOrigins)
	v.SetDefault("log_level", cfg.Log.Level)
	v.SetDefault("log_format", cfg.Log.Format)
	v.SetDefault("default_difficulty", cfg.Game.DefaultDifficulty)
	v.SetDefault("messages_dir", cfg.Game.MessagesDir)
	v.SetDefault("redis_url", cfg.Store.RedisURL)
	v.SetDefault("checkpoint_key", cfg.Store.CheckpointKey)
	v.SetDefault("checkpoint_ttl", cfg.Store.CheckpointTTL)
}

// Load reads configuration. path may be empty, in which case only
// defaults and environment variables apply. The file format follows the
// extension (yaml, json, toml, env).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("addr is empty: %w", errors.ErrInvalidConfig)
	}
	if d := c.Game.DefaultDifficulty; d < selector.MinDifficulty || d > selector.MaxDifficulty {
		return fmt.Errorf("default_difficulty %d outside %d..%d: %w",
			d, selector.MinDifficulty, selector.MaxDifficulty, errors.ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log_format %q: %w", c.Log.Format, errors.ErrInvalidConfig)
	}
	if c.Store.RedisURL != "" && c.Store.CheckpointKey == "" {
		return fmt.Errorf("checkpoint_key is empty: %w", errors.ErrInvalidConfig)
	}
	if c.Server.ShutdownTimeout < 0 || c.Store.CheckpointTTL < 0 {
		return fmt.Errorf("negative duration: %w", errors.ErrInvalidConfig)
	}
	return nil
}
