package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// AI enhancement
	AnthropicAPIKey string
	AnthropicModel  string
	OpenAIAPIKey    string
	OpenAIModel     string

	// Output
	OutputDir string

	// PDF extraction
	PDFFallbackPdftotext bool

	// Upload limits
	MaxUploadBytes int64

	// Enhancement call budget
	EnhanceTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     envOr("OPENAI_MODEL", "gpt-4-turbo-preview"),

		OutputDir: envOr("OUTPUT_DIR", "outputs"),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		EnhanceTimeout: envDuration("ENHANCE_TIMEOUT", 2*time.Minute),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.EnhanceTimeout <= 0 {
		cfg.EnhanceTimeout = 2 * time.Minute
	}

	return cfg
}

// Validate checks settings that must be present for the requested provider.
// Missing keys are not fatal at load time: enhancement degrades to disabled.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR must not be empty")
	}
	return nil
}

// HasProviderKey reports whether the named AI provider is usable.
func (c Config) HasProviderKey(provider string) bool {
	switch provider {
	case "gpt4":
		return c.OpenAIAPIKey != ""
	default:
		return c.AnthropicAPIKey != ""
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
