package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Config validation errors
var (
	ErrInvalidRounds     = errors.New("rounds must be positive")
	ErrInvalidAllocs     = errors.New("allocs must be positive")
	ErrInvalidElemSize   = errors.New("elem_size must be positive")
	ErrInvalidChunkElems = errors.New("chunk_elems must be positive")
	ErrInvalidLogLevel   = errors.New("log_level must be debug, info, warn, or error")
)

// Config holds the benchmark parameters. Defaults come from the
// environment (FIXEDARENA_BENCH_* variables) and can be overridden with
// flags.
type Config struct {
	Rounds     int    `envconfig:"ROUNDS" default:"50"`
	Allocs     int    `envconfig:"ALLOCS" default:"100000"`
	ElemSize   int    `envconfig:"ELEM_SIZE" default:"64"`
	ChunkElems int    `envconfig:"CHUNK_ELEMS" default:"4096"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON    bool   `envconfig:"LOG_JSON" default:"false"`
}

// LoadConfig reads the environment into a Config.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("FIXEDARENA_BENCH", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid.
func ValidateConfig(cfg *Config) error {
	if cfg.Rounds <= 0 {
		return ErrInvalidRounds
	}
	if cfg.Allocs <= 0 {
		return ErrInvalidAllocs
	}
	if cfg.ElemSize <= 0 {
		return ErrInvalidElemSize
	}
	if cfg.ChunkElems <= 0 {
		return ErrInvalidChunkElems
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a config string to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, ErrInvalidLogLevel
	}
}
