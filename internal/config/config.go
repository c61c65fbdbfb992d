package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrMissingAPIKey      = errors.New("model provider API key is required")
	ErrUnknownProvider    = errors.New("unknown LLM_PROVIDER")
)

// Supported model providers.
const (
	ProviderGoogleAI  = "googleai"
	ProviderGenAI     = "genai"
	ProviderAnthropic = "anthropic"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	LogFormat       string
	DatabaseURL     string
	DatabaseName    string
	LLMProvider     string
	LLMModel        string
	LLMAPIKey       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, after a best-effort load of .env.
// There are no baked-in secrets: a missing database URL or provider key is an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8000"),
		Env:          normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "json")),
		DatabaseURL:  firstEnv("DATABASE_URL", "MONGODB_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "career_advisor"),
		LLMProvider:  strings.ToLower(getEnv("LLM_PROVIDER", ProviderGoogleAI)),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}

	switch cfg.LLMProvider {
	case ProviderGoogleAI, ProviderGenAI:
		cfg.LLMAPIKey = firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY")
		cfg.LLMModel = getEnv("LLM_MODEL", "gemini-2.5-flash")
		if cfg.LLMAPIKey == "" {
			return Config{}, fmt.Errorf("%w: set GEMINI_API_KEY", ErrMissingAPIKey)
		}
	case ProviderAnthropic:
		cfg.LLMAPIKey = os.Getenv("ANTHROPIC_API_KEY")
		cfg.LLMModel = getEnv("LLM_MODEL", "claude-3-7-sonnet-latest")
		if cfg.LLMAPIKey == "" {
			return Config{}, fmt.Errorf("%w: set ANTHROPIC_API_KEY", ErrMissingAPIKey)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.LLMProvider)
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}

// Addr normalizes the listen address.
func (c Config) Addr() string {
	if c.Port == "" {
		return ":8000"
	}
	if c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// IsProduction reports whether gin should run in release mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if val := strings.TrimSpace(os.Getenv(k)); val != "" {
			return val
		}
	}
	return ""
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	default:
		return "dev"
	}
}
