package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr           string
	LogLevel           string
	LogFormat          string
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string

	// NASA NeoWs enrichment configuration.
	NasaAPIKey   string
	NeoEnabled   bool
	NeoTimeout   time.Duration
	NeoCacheSize int

	// Record persistence configuration.
	RedisAddr     string
	SaveEnabled   bool
	SaveKeyPrefix string
}

// Load reads configuration from environment variables, applying defaults
// where unset. There is no baked-in fallback credential: enabling NEO
// enrichment without NASA_API_KEY is a startup error.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	neoTimeout, err := parseDuration("NEO_TIMEOUT", "8s")
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv("NASA_API_KEY")
	neoEnabled := apiKey != ""
	if v := os.Getenv("NEO_ENABLED"); v != "" {
		neoEnabled = v == "true"
	}

	saveEnabled := os.Getenv("SAVE_ENABLED") == "true"

	cfg := &Config{
		HTTPAddr:           envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		CORSAllowedOrigins: splitAndTrim(envOrDefault("CORS_ALLOWED_ORIGINS", "*")),

		NasaAPIKey:   apiKey,
		NeoEnabled:   neoEnabled,
		NeoTimeout:   neoTimeout,
		NeoCacheSize: parseNeoCacheSize(),

		RedisAddr:     envOrDefault("REDIS_ADDR", "localhost:6379"),
		SaveEnabled:   saveEnabled,
		SaveKeyPrefix: envOrDefault("SAVE_KEY_PREFIX", "impacts/"),
	}

	if cfg.NeoEnabled && cfg.NasaAPIKey == "" {
		return nil, errors.New("NEO_ENABLED is true but NASA_API_KEY is not set")
	}
	if cfg.SaveEnabled && cfg.RedisAddr == "" {
		return nil, errors.New("SAVE_ENABLED is true but REDIS_ADDR is not set")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return nil, errors.New("CORS_ALLOWED_ORIGINS must not be empty")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseNeoCacheSize() int {
	if s := os.Getenv("NEO_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
