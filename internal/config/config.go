package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = 8080
	DefaultServiceName = "byword-intake-api"
	DefaultVersion     = "1.0.0"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	// Host is empty to bind all interfaces.
	Host         string
	Port         int
	ServiceName  string
	Version      string
	LogLevel     string
	MetricsAddr  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function, applying defaults
// for missing or unparseable values.
func FromEnv(getenv func(string) string) Config {
	return Config{
		Host:         getenv("HOST"),
		Port:         envInt(getenv, "PORT", DefaultPort),
		ServiceName:  envString(getenv, "SERVICE_NAME", DefaultServiceName),
		Version:      envString(getenv, "SERVICE_VERSION", DefaultVersion),
		LogLevel:     envString(getenv, "LOG_LEVEL", "INFO"),
		MetricsAddr:  getenv("METRICS_ADDR"),
		ReadTimeout:  envDuration(getenv, "READ_TIMEOUT", 10*time.Second),
		WriteTimeout: envDuration(getenv, "WRITE_TIMEOUT", 10*time.Second),
	}
}

// Addr is the listen address for the public API.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func envString(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) int {
	v := getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > 65535 {
		return fallback
	}
	return n
}

func envDuration(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	v := getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
