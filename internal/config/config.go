package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DatabaseURI          string
	SessionSecret        string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	OrderNumberDigits    int
	OrderNumberAttempts  int
	ShutdownTimeout      time.Duration
	SeedCatalog          bool
	LogLevel             string
}

const (
	defaultRunAddress           = ":8080"
	defaultSessionSecret        = "change-me-in-production"
	defaultSessionTTL           = 30 * time.Minute
	defaultSessionSweepInterval = time.Minute
	defaultOrderNumberDigits    = 6
	defaultOrderNumberAttempts  = 32
	defaultShutdownTimeout      = 10 * time.Second
	defaultLogLevel             = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		SessionSecret:        getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:           getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		SessionSweepInterval: getDuration(lookup, "SESSION_SWEEP_INTERVAL", defaultSessionSweepInterval),
		OrderNumberDigits:    getInt(lookup, "ORDER_NUMBER_DIGITS", defaultOrderNumberDigits),
		OrderNumberAttempts:  getInt(lookup, "ORDER_NUMBER_ATTEMPTS", defaultOrderNumberAttempts),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SeedCatalog:          getBool(lookup, "SEED_CATALOG", false),
		LogLevel:             getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("milktea", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		sweepIntervalStr   = cfg.SessionSweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session cookies")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Idle lifetime of customer sessions")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between expired session sweeps")
	fs.IntVar(&cfg.OrderNumberDigits, "order-digits", cfg.OrderNumberDigits, "Length of generated order numbers")
	fs.IntVar(&cfg.OrderNumberAttempts, "order-attempts", cfg.OrderNumberAttempts, "Maximum order number allocation attempts")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.SeedCatalog, "seed", cfg.SeedCatalog, "Populate empty catalog with default menu")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.SessionSweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.SessionSweepInterval <= 0 {
		cfg.SessionSweepInterval = defaultSessionSweepInterval
	}

	if cfg.OrderNumberDigits <= 0 {
		cfg.OrderNumberDigits = defaultOrderNumberDigits
	}

	if cfg.OrderNumberAttempts <= 0 {
		cfg.OrderNumberAttempts = defaultOrderNumberAttempts
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.OrderNumberDigits > 18 {
		return nil, fmt.Errorf("order number digits must not exceed 18, got %d", cfg.OrderNumberDigits)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
