// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/project-votes/kv"
)

// Defaults
const (
	DefaultPort         = 3318
	DefaultBackend      = kv.BackendMemory
	DefaultListLimit    = 10
	DefaultMaxBodyBytes = 4 << 20 // a 2 MB image grows by a third as a data URI
)

type Config struct {
	Port         int
	Backend      string
	RedisURL     string
	DatabaseURL  string
	ListLimit    int
	LogLevel     slog.Level
	MaxBodyBytes int64
}

// StoreOptions returns the backend selection for kv.Open.
func (c Config) StoreOptions() kv.Options {
	return kv.Options{
		Backend:     c.Backend,
		RedisURL:    c.RedisURL,
		DatabaseURL: c.DatabaseURL,
	}
}

// ParseFlags parses args, then fills anything unset from the environment
// (after loading the .env file, if present) and finally from defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, logLevel string

	fs := flag.NewFlagSet("project-votes", flag.ContinueOnError)
	Register(fs, &cfg, &logLevel)
	fs.StringVar(&envFile, "env-file", ".env", "Env file to load (missing file is ignored)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := LoadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	return Resolve(cfg, logLevel)
}

// Register binds the shared configuration flags to fs. The server and
// votectl use the same names.
func Register(fs *flag.FlagSet, cfg *Config, logLevel *string) {
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Backend, "b", "", "Store backend (memory, redis, postgres, sqlite)")
	fs.StringVar(&cfg.RedisURL, "r", "", "Redis URL")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres or sqlite)")
	fs.IntVar(&cfg.ListLimit, "limit", 0, "Default number of projects listed")
	fs.StringVar(logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.Int64Var(&cfg.MaxBodyBytes, "max-body", 0, "Maximum request body size in bytes")
}

// LoadEnvFile loads variables from path without overriding ones already
// set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Resolve applies environment fallbacks and defaults to values set by
// flags, then validates the result.
func Resolve(cfg Config, logLevel string) (Config, error) {
	var err error

	if cfg.Port == 0 {
		if cfg.Port, err = envInt("PORT", DefaultPort); err != nil {
			return Config{}, err
		}
	}

	if cfg.Backend == "" {
		cfg.Backend = os.Getenv("STORE_BACKEND")
		if cfg.Backend == "" {
			cfg.Backend = DefaultBackend
		}
	}
	if !slices.Contains(kv.Backends, cfg.Backend) {
		return Config{}, fmt.Errorf("unknown store backend %q (want one of %v)", cfg.Backend, kv.Backends)
	}

	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("KV_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	switch cfg.Backend {
	case kv.BackendRedis:
		if cfg.RedisURL == "" {
			return Config{}, errors.New("redis URL required (use -r or REDIS_URL env)")
		}
	case kv.BackendPostgres, kv.BackendSQLite:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	if cfg.ListLimit == 0 {
		if cfg.ListLimit, err = envInt("LIST_LIMIT", DefaultListLimit); err != nil {
			return Config{}, err
		}
	}
	if cfg.ListLimit < 0 {
		return Config{}, errors.New("list limit must not be negative")
	}

	if cfg.MaxBodyBytes == 0 {
		limit, err := envInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxBodyBytes = int64(limit)
	}
	if cfg.MaxBodyBytes < 0 {
		return Config{}, errors.New("max body size must not be negative")
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	return cfg, nil
}

func envInt(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", name)
	}
	return n, nil
}
