// Package editor sends text to a hosted language model for copy-editing
// and returns the corrected text verbatim.
package editor

import (
	"context"
	"fmt"
	"time"
)

// Editor performs one copy-editing call per invocation.
type Editor interface {
	// Edit submits text with editing instructions and returns the
	// service's corrected version. An empty return with a nil error
	// means the service produced no usable text.
	Edit(ctx context.Context, instructions, text string) (string, error)

	// Name returns the provider identifier.
	Name() string
}

// Config holds provider connection settings.
type Config struct {
	Provider  string        // "anthropic" or "openai"
	APIKey    string        // provider API key
	BaseURL   string        // override for OpenAI-compatible endpoints
	Model     string        // provider model, empty for the provider default
	MaxTokens int           // completion token cap, 0 for the default
	Timeout   time.Duration // per-request timeout, 0 for no limit
}

// New creates an editor for the configured provider. An empty provider
// selects anthropic.
func New(cfg Config) (Editor, error) {
	switch cfg.Provider {
	case "", "anthropic":
		return newAnthropicEditor(cfg), nil
	case "openai":
		return newOpenAIEditor(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
