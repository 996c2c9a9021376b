package config

import (
	"os"
	"strconv"

	"github.com/decred/slog"
	"github.com/joho/godotenv"
)

const (
	DefaultListenAddr = ":12345"
	DefaultLogLevel   = "info"
)

// Config carries everything the server binary needs. Values come from
// the environment, optionally seeded from a .env file in the working
// directory.
type Config struct {
	ListenAddr   string // game TCP listener
	SpectateAddr string // spectator HTTP listener, empty disables it
	LogLevel     string
	Seed         int64 // serve RNG seed, 0 derives from the clock
}

// Load reads .env when present and assembles the config. Malformed
// values fall back to their defaults with a warning rather than
// failing startup.
func Load(log slog.Logger) Config {
	if log == nil {
		log = slog.Disabled
	}
	if err := godotenv.Load(); err == nil {
		log.Debugf("loaded environment from .env")
	}

	cfg := Config{
		ListenAddr:   getEnv("PONG_LISTEN_ADDR", DefaultListenAddr),
		SpectateAddr: getEnv("PONG_SPECTATE_ADDR", ""),
		LogLevel:     getEnv("PONG_LOG_LEVEL", DefaultLogLevel),
	}

	if raw := os.Getenv("PONG_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warnf("PONG_SEED %q is not an integer, using clock seed", raw)
		} else {
			cfg.Seed = seed
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
