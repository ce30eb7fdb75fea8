package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicMaxTokens = 4096

// anthropicEditor wraps the Anthropic SDK.
type anthropicEditor struct {
	client    anthropic.Client
	model     string
	maxTokens int
}

func newAnthropicEditor(cfg Config) *anthropicEditor {
	// Retries stay with the caller, which owns the inter-call pacing.
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
	}

	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	model := cfg.Model
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	return &anthropicEditor{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Edit sends one message request and returns the model's text output.
func (e *anthropicEditor) Edit(ctx context.Context, instructions, text string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: int64(e.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: instructions},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	}

	resp, err := e.client.Messages.New(ctx, params)
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return "", &ServiceError{StatusCode: apierr.StatusCode, Body: apierr.RawJSON()}
		}
		return "", &TransportError{Err: err}
	}

	var content string
	for _, block := range resp.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			content = b.Text
		}
	}
	return strings.TrimSpace(content), nil
}

func (e *anthropicEditor) Name() string {
	return "anthropic"
}
