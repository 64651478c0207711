package analyzer

import (
	"context"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Generator turns a prompt into a free-form completion.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// LLMConfig captures the settings of an OpenAI-compatible completion endpoint.
type LLMConfig struct {
	APIBase     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// LLMGenerator is a Generator backed by a chat completion API.
type LLMGenerator struct {
	client *llm.Client
}

// NewLLMGenerator builds a generator for the given endpoint.
func NewLLMGenerator(cfg LLMConfig) *LLMGenerator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &LLMGenerator{
		client: llm.NewClient(cfg.APIBase, cfg.APIKey, cfg.Model,
			llm.WithMaxTokens(cfg.MaxTokens),
			llm.WithTemperature(cfg.Temperature),
			llm.WithHTTPClient(&http.Client{Timeout: timeout}),
		),
	}
}

// Generate sends the prompt as a single user message.
func (g *LLMGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.client.Complete(ctx, "", prompt)
}
