package config

import (
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	GinMode         string
	TZ              string
	Host            string
	Port            string
	StoreDriver     string
	SQLiteDSN       string
	RateLimit       RateLimitConfig
	ShutdownTimeout time.Duration
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// Load reads an optional .env file (only outside release mode) and then the
// process environment. Unset or unparsable values fall back to defaults.
func Load() *Config {
	if getenv("GIN_MODE", "debug") != "release" {
		envFile := getenv("ENV_FILE", ".env")
		if err := godotenv.Load(envFile); err == nil {
			slog.Info("loaded env file", "path", envFile)
		} else if !os.IsNotExist(err) {
			slog.Warn("could not load env file", "path", envFile, "error", err)
		}
	}

	cfg := &Config{
		GinMode:     getenv("GIN_MODE", "debug"),
		TZ:          getenv("TZ", "UTC"),
		Host:        getenv("HOST", "localhost"),
		Port:        getenv("PORT", "9000"),
		StoreDriver: getenv("STORE_DRIVER", StoreMemory),
		SQLiteDSN:   getenv("SQLITE_DSN", "file:bookshelf?mode=memory&cache=shared"),
		RateLimit: RateLimitConfig{
			Enabled: getenvBool("RATE_LIMIT_ENABLED", true),
			RPS:     getenvFloat("RATE_LIMIT_RPS", 10),
			Burst:   getenvInt("RATE_LIMIT_BURST", 20),
		},
		ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	return cfg
}

// Location resolves TZ, the zone used for log timestamps.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.TZ)
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
