package hintgen

import (
	"context"
	"errors"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/nihongo-hints/internal/config"
)

// ErrNoText is returned when a response carries no text block.
var ErrNoText = errors.New("no text content in response")

// TextGenerator submits a prompt and returns a short completion.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnthropicGenerator is a TextGenerator backed by the Anthropic Messages API.
// The client never retries on its own; a failed request surfaces as an error.
type AnthropicGenerator struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewAnthropicGenerator creates a generator from the LLM configuration.
// extra options are applied last (e.g. option.WithBaseURL for a proxy).
func NewAnthropicGenerator(cfg config.LLMConfig, extra ...option.RequestOption) *AnthropicGenerator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	opts = append(opts, extra...)

	return &AnthropicGenerator{
		client:      anthropic.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Model returns the configured model name.
func (g *AnthropicGenerator) Model() string { return g.model }

// Generate sends prompt as a single user message and returns the first text
// block of the response.
func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(g.model),
		MaxTokens:   g.maxTokens,
		Temperature: anthropic.Float(g.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", ErrNoText
}
