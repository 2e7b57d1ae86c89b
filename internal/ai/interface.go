package ai

import (
	"context"
	"fmt"
	"strings"
)

// Conversation roles used in seed history.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one message of the example conversation a chat session is primed with.
type Turn struct {
	Role string
	Text string
}

// Generator performs a single generation attempt against a text backend.
// Implementations must not retry; the Dispatcher owns retry policy.
// history is read-only and seeds a fresh session for every call.
type Generator interface {
	Generate(ctx context.Context, history []Turn, prompt string) (string, error)
}

// GeneratorConfig selects and configures a backend.
type GeneratorConfig struct {
	Provider    string
	GeminiKey   string
	GeminiModel string
	OpenAIKey   string
	OpenAIModel string
	OpenAIBase  string
}

// NewGenerator builds the backend named by cfg.Provider.
// The returned close func releases client resources.
func NewGenerator(ctx context.Context, cfg GeneratorConfig) (Generator, func(), error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "gemini":
		p, err := NewGeminiProvider(ctx, cfg.GeminiKey, DefaultGeminiOptions(cfg.GeminiModel))
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	case "openai":
		p, err := NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBase)
		if err != nil {
			return nil, nil, err
		}
		return p, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}
