package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	BcryptCost      int
	ShutdownTimeout time.Duration
	LogLevel        slog.Level
}

const (
	defaultRunAddress      = ":8080"
	defaultBcryptCost      = bcrypt.DefaultCost
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
)

// Load parses configuration from flags and environment variables.
// Values from a .env file in the working directory are applied first and
// never override variables already present in the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

// Lookup reads an environment variable, as os.LookupEnv does.
type Lookup func(string) (string, bool)

func load(args []string, lookup Lookup) (*Config, error) {
	fs := flag.NewFlagSet("becas", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	finish := Bind(fs, lookup)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return finish()
}

// Bind registers the configuration flags on fs with defaults taken from
// lookup. The returned function validates the values once fs is parsed.
func Bind(fs *flag.FlagSet, lookup Lookup) func() (*Config, error) {
	cfg := &Config{
		RunAddress:      Env(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     Env(lookup, "DATABASE_URI", ""),
		BcryptCost:      getInt(lookup, "BCRYPT_COST", defaultBcryptCost),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		logLevelStr        = Env(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "Credential store DSN (postgres:// or sqlite:)")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt cost used when hashing passwords")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn or error")

	return func() (*Config, error) {
		var err error

		if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
			return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
		}

		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(logLevelStr))); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}

		if uriFile, ok := lookup("DATABASE_URI_FILE"); ok && uriFile != "" {
			content, err := os.ReadFile(uriFile)
			if err != nil {
				return nil, fmt.Errorf("read database uri file: %w", err)
			}
			cfg.DatabaseURI = strings.TrimSpace(string(content))
		}

		if cfg.BcryptCost <= 0 {
			cfg.BcryptCost = defaultBcryptCost
		}

		if cfg.ShutdownTimeout <= 0 {
			cfg.ShutdownTimeout = defaultShutdownTimeout
		}

		if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)
		}

		if cfg.DatabaseURI == "" {
			return nil, fmt.Errorf("database URI must be provided")
		}

		return cfg, nil
	}
}

// Env returns the value of key, or def when it is unset or empty.
func Env(lookup Lookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup Lookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup Lookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
