package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Oracle provider selectors.
const (
	ProviderGemini   = "gemini"
	ProviderMoonshot = "moonshot"
)

// sentinelCredentials are placeholder values copied from env templates.
// A credential matching one of these is treated as not configured.
var sentinelCredentials = map[string]struct{}{
	"changeme":              {},
	"your-api-key-here":     {},
	"your_api_key_here":     {},
	"your-gemini-api-key":   {},
	"your-moonshot-api-key": {},
}

type Config struct {
	Env         string
	HTTPAddr    string
	DatabaseURL string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	// OracleProvider selects the preferred intent oracle backend.
	OracleProvider  string
	GeminiAPIKey    string
	GeminiModel     string
	MoonshotAPIKey  string
	MoonshotModel   string
	MoonshotBaseURL string

	// ScoringConcurrency bounds in-flight oracle calls per batch.
	ScoringConcurrency int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	corsAllowCreds := strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true")
	if containsWildcard(corsOrigins) && !corsAllowAll {
		// A wildcard origin implies allow-all, and credentials cannot be
		// combined with it. Drop credentials here; the hard error below is
		// reserved for an explicit CORS_ALLOW_ALL=true request.
		corsAllowAll = true
		corsAllowCreds = false
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     corsAllowCreds,
		OracleProvider:     strings.ToLower(getEnv("ORACLE_PROVIDER", ProviderGemini)),
		GeminiAPIKey:       normalizeCredential(getEnv("GEMINI_API_KEY", "")),
		GeminiModel:        getEnv("GEMINI_MODEL", ""),
		MoonshotAPIKey:     normalizeCredential(getEnv("MOONSHOT_API_KEY", "")),
		MoonshotModel:      getEnv("MOONSHOT_MODEL", ""),
		MoonshotBaseURL:    getEnv("MOONSHOT_BASE_URL", ""),
		ScoringConcurrency: mustInt(getEnv("SCORING_CONCURRENCY", "8"), 8),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.OracleProvider != ProviderGemini && cfg.OracleProvider != ProviderMoonshot {
		return nil, fmt.Errorf("ORACLE_PROVIDER must be %q or %q", ProviderGemini, ProviderMoonshot)
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.ScoringConcurrency < 1 {
		return nil, fmt.Errorf("SCORING_CONCURRENCY must be at least 1")
	}

	return cfg, nil
}

// GeminiConfigured reports whether a usable Gemini credential is present.
func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

// MoonshotConfigured reports whether a usable Moonshot credential is present.
func (c *Config) MoonshotConfigured() bool {
	return c.MoonshotAPIKey != ""
}

// normalizeCredential maps absent and placeholder credentials to the empty
// string so downstream code has a single "not configured" signal.
func normalizeCredential(value string) string {
	trimmed := strings.TrimSpace(value)
	if _, isSentinel := sentinelCredentials[strings.ToLower(trimmed)]; isSentinel {
		return ""
	}
	return trimmed
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
