// README: Config loader with env defaults for HTTP, storage, AI backends, Maps, Firebase and image checks.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

type Config struct {
	HTTP struct {
		Addr        string
		CORSOrigins []string
		RateLimit   RateLimitConfig
	}
	DB struct {
		DSN           string
		MigrationsDir string
		AutoMigrate   bool
	}
	Redis struct {
		Addr     string
		CacheTTL time.Duration
	}
	// Store is the trip persistence backend: postgres, firestore or memory.
	Store string
	AI    struct {
		Provider        string
		GeminiKey       string
		GeminiModel     string
		OpenAIKey       string
		OpenAIModel     string
		OpenAIBaseURL   string
		GenerateTimeout time.Duration
		// RetryBackoff is the base wait between model attempts; attempt n waits n times it.
		RetryBackoff time.Duration
	}
	Maps struct {
		APIKey   string
		CacheTTL time.Duration
	}
	Firebase struct {
		ProjectID       string
		CredentialsFile string
	}
	Images struct {
		Placeholder  string
		ProbeTimeout time.Duration
		Concurrency  int
	}
	Quota struct {
		Monthly int
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPGEN_HTTP_ADDR", ":8080")
	cfg.HTTP.CORSOrigins = splitList(envOrDefault("TRIPGEN_CORS_ORIGINS", "http://localhost:5173"))
	rl, err := parseRateLimit(envOrDefault("TRIPGEN_RATE_LIMIT", "30/min"))
	if err != nil {
		return cfg, fmt.Errorf("invalid TRIPGEN_RATE_LIMIT value: %w", err)
	}
	cfg.HTTP.RateLimit = rl

	cfg.DB.DSN = os.Getenv("TRIPGEN_DB_DSN")
	cfg.DB.MigrationsDir = envOrDefault("TRIPGEN_MIGRATIONS_DIR", "migrations")
	cfg.DB.AutoMigrate = envOrDefaultBool("TRIPGEN_AUTO_MIGRATE", false)
	cfg.Redis.Addr = os.Getenv("TRIPGEN_REDIS_ADDR")
	cfg.Redis.CacheTTL = envOrDefaultDuration("TRIPGEN_CACHE_TTL", 30*time.Minute)

	cfg.Store = strings.ToLower(envOrDefault("TRIPGEN_STORE", "postgres"))

	cfg.AI.Provider = strings.ToLower(envOrDefault("TRIPGEN_AI_PROVIDER", "gemini"))
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.GeminiModel = envOrDefault("TRIPGEN_GEMINI_MODEL", "gemini-1.5-flash")
	cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.OpenAIModel = envOrDefault("TRIPGEN_OPENAI_MODEL", "gpt-4o-mini")
	cfg.AI.OpenAIBaseURL = os.Getenv("TRIPGEN_OPENAI_BASE_URL")
	cfg.AI.GenerateTimeout = envOrDefaultDuration("TRIPGEN_GENERATE_TIMEOUT", 90*time.Second)
	cfg.AI.RetryBackoff = envOrDefaultDuration("TRIPGEN_RETRY_BACKOFF", 2*time.Second)

	cfg.Maps.APIKey = os.Getenv("TRIPGEN_MAPS_API_KEY")
	cfg.Maps.CacheTTL = envOrDefaultDuration("TRIPGEN_PLACE_CACHE_TTL", 24*time.Hour)

	cfg.Firebase.ProjectID = os.Getenv("TRIPGEN_FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("TRIPGEN_FIREBASE_CREDENTIALS")

	cfg.Images.Placeholder = envOrDefault("TRIPGEN_PLACEHOLDER_IMAGE", "https://images.unsplash.com/photo-1469474968028-56623f02e42e")
	cfg.Images.ProbeTimeout = envOrDefaultDuration("TRIPGEN_IMAGE_PROBE_TIMEOUT", 5*time.Second)
	cfg.Images.Concurrency = envOrDefaultInt("TRIPGEN_IMAGE_PROBE_CONCURRENCY", 8)

	cfg.Quota.Monthly = envOrDefaultInt("TRIPGEN_MONTHLY_QUOTA", 20)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.AI.Provider {
	case "gemini":
		if c.AI.GeminiKey == "" {
			return missing("GEMINI_API_KEY")
		}
	case "openai":
		if c.AI.OpenAIKey == "" {
			return missing("OPENAI_API_KEY")
		}
	default:
		return fmt.Errorf("unsupported TRIPGEN_AI_PROVIDER: %s", c.AI.Provider)
	}

	switch c.Store {
	case "postgres":
		if c.DB.DSN == "" {
			return missing("TRIPGEN_DB_DSN")
		}
	case "firestore", "memory":
	default:
		return fmt.Errorf("unsupported TRIPGEN_STORE: %s", c.Store)
	}

	if c.Firebase.ProjectID == "" {
		return missing("TRIPGEN_FIREBASE_PROJECT_ID")
	}
	return nil
}

func missing(key string) error {
	return fmt.Errorf("environment variable %s is required", key)
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	var interval time.Duration
	switch unit := strings.ToLower(strings.TrimSpace(parts[1])); unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
