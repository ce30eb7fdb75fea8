package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIMaxTokens = 4096

// openaiEditor wraps the OpenAI SDK. It also serves any
// OpenAI-compatible endpoint via Config.BaseURL.
type openaiEditor struct {
	client    openai.Client
	model     string
	maxTokens int
}

func newOpenAIEditor(cfg Config) *openaiEditor {
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
		model = string(openai.ChatModelGPT4o)
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultOpenAIMaxTokens
	}

	return &openaiEditor{
		client:    openai.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Edit sends one chat completion request and returns the first choice.
func (e *openaiEditor) Edit(ctx context.Context, instructions, text string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(instructions),
			openai.UserMessage(text),
		},
		MaxTokens: openai.Int(int64(e.maxTokens)),
	}

	resp, err := e.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", &ServiceError{StatusCode: apierr.StatusCode, Body: apierr.RawJSON()}
		}
		return "", &TransportError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (e *openaiEditor) Name() string {
	return "openai"
}
