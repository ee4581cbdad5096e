// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/project-votes/kv"
)

// clearEnv unsets every variable ParseFlags reads for the duration of t.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"PORT", "STORE_BACKEND", "REDIS_URL", "KV_URL", "DATABASE_URL", "LIST_LIMIT", "LOG_LEVEL", "MAX_BODY_BYTES"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Backend != kv.BackendMemory {
		t.Errorf("expected memory backend, got %q", cfg.Backend)
	}
	if cfg.ListLimit != DefaultListLimit {
		t.Errorf("expected list limit %d, got %d", DefaultListLimit, cfg.ListLimit)
	}
	if cfg.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Errorf("expected max body %d, got %d", DefaultMaxBodyBytes, cfg.MaxBodyBytes)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("LIST_LIMIT", "25")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Backend != kv.BackendRedis {
		t.Errorf("expected redis backend, got %q", cfg.Backend)
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("unexpected redis URL %q", cfg.RedisURL)
	}
	if cfg.ListLimit != 25 {
		t.Errorf("expected list limit 25, got %d", cfg.ListLimit)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", "redis")

	cfg, err := ParseFlags([]string{"-p", "8080", "-b", "sqlite", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Backend != kv.BackendSQLite {
		t.Errorf("CLI should override env: expected sqlite, got %q", cfg.Backend)
	}

	opts := cfg.StoreOptions()
	if opts.Backend != kv.BackendSQLite || opts.DatabaseURL != "file:test.db" {
		t.Errorf("unexpected store options %+v", opts)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PORT=7000\nSTORE_BACKEND=postgres\nDATABASE_URL=postgres://x\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets these directly; make sure they are removed afterwards
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("STORE_BACKEND")
		os.Unsetenv("DATABASE_URL")
	})

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 7000 {
		t.Errorf("expected port from env file, got %d", cfg.Port)
	}
	if cfg.Backend != kv.BackendPostgres || cfg.DatabaseURL != "postgres://x" {
		t.Errorf("unexpected backend config %q %q", cfg.Backend, cfg.DatabaseURL)
	}
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	clearEnv(t)

	if _, err := ParseFlags([]string{"-env-file", filepath.Join(t.TempDir(), "nope.env")}); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown backend", []string{"-b", "etcd"}, nil},
		{"redis without url", []string{"-b", "redis"}, nil},
		{"postgres without url", []string{"-b", "postgres"}, nil},
		{"sqlite without url", []string{"-b", "sqlite"}, nil},
		{"invalid port env", nil, map[string]string{"PORT": "abc"}},
		{"negative limit", []string{"-limit", "-1"}, nil},
		{"invalid log level", []string{"-log-level", "loud"}, nil},
		{"unknown flag", []string{"-x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseFlags_KVURLFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("KV_URL", "redis://kv.internal:6379/1")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RedisURL != "redis://kv.internal:6379/1" {
		t.Errorf("expected KV_URL to be used, got %q", cfg.RedisURL)
	}

	t.Setenv("REDIS_URL", "redis://primary:6379/0")
	cfg, err = ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RedisURL != "redis://primary:6379/0" {
		t.Errorf("expected REDIS_URL to win over KV_URL, got %q", cfg.RedisURL)
	}
}
