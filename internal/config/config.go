package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

const defaultLLMBase = "https://generativelanguage.googleapis.com/v1beta/openai"

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey string

	LLMAPIKey      string
	LLMAPIBase     string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int
	LLMTimeout     time.Duration

	Port        string
	LogLevel    string
	Environment string
	CORSOrigins []string

	VideoWindow  int
	MaxComments  int
	FetchTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Get YouTube API key from environment
	apiKey := strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}

	cfg := &Config{
		YouTubeAPIKey: apiKey,

		LLMAPIKey:      strings.TrimSpace(env.Str("LLM_API_KEY", "")),
		LLMAPIBase:     env.Str("LLM_API_BASE", defaultLLMBase),
		LLMModel:       env.Str("LLM_MODEL", "gemini-1.5-flash"),
		LLMTemperature: env.Float("LLM_TEMPERATURE", 0.7),
		LLMMaxTokens:   env.Int("LLM_MAX_TOKENS", 1024),
		LLMTimeout:     env.Duration("LLM_TIMEOUT", 60*time.Second),

		Port:        env.Str("PORT", "8080"),
		LogLevel:    env.Str("LOG_LEVEL", "info"),
		Environment: env.Str("ENVIRONMENT", "development"),
		CORSOrigins: env.List("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001"),

		VideoWindow:  env.Int("VIDEO_WINDOW", 10),
		MaxComments:  env.Int("MAX_COMMENTS", 50),
		FetchTimeout: env.Duration("FETCH_TIMEOUT", 15*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LLMEnabled reports whether a text-generation backend is configured
func (c *Config) LLMEnabled() bool {
	return c.LLMAPIKey != ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	if c.VideoWindow <= 0 {
		return fmt.Errorf("VIDEO_WINDOW must be positive, got %d", c.VideoWindow)
	}
	if c.MaxComments <= 0 {
		return fmt.Errorf("MAX_COMMENTS must be positive, got %d", c.MaxComments)
	}
	return nil
}
