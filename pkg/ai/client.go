package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrNotConfigured is returned when no API key was provided at startup.
var ErrNotConfigured = errors.New("AI_API_KEY is not configured")

// Generator produces prose text from a data payload and an instruction.
// It is the only contact surface with the external completion endpoint,
// so usecases can be tested against a mock.
type Generator interface {
	GenerateSummary(ctx context.Context, text, systemPrompt string) (string, error)
}

// OpenAIGenerator implements Generator against an OpenAI-compatible
// chat-completion endpoint.
type OpenAIGenerator struct {
	client     openai.Client
	model      string
	configured bool
}

// NewOpenAIGenerator creates a generator. An empty apiKey is allowed at
// startup; calls will then fail with ErrNotConfigured.
func NewOpenAIGenerator(apiKey, baseURL, model string) *OpenAIGenerator {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIGenerator{
		client:     openai.NewClient(opts...),
		model:      model,
		configured: apiKey != "",
	}
}

// GenerateSummary submits the text with the given system prompt and returns
// the generated prose unmodified. No retries, no caching.
func (g *OpenAIGenerator) GenerateSummary(ctx context.Context, text, systemPrompt string) (string, error) {
	if !g.configured {
		return "", ErrNotConfigured
	}

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("AI API error: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "No summary generated.", nil
	}

	return completion.Choices[0].Message.Content, nil
}
