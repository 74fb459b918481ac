package ai

import (
	"context"
	"errors"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultOpenAIModel     = openai.GPT3Dot5Turbo
	defaultOpenAIMaxTokens = 2000
)

// OpenAIGenerator calls the chat completions API
type OpenAIGenerator struct {
	client *openai.Client
	opts   Options
}

// NewOpenAIGenerator creates a generator for the public OpenAI endpoint
func NewOpenAIGenerator(apiKey string, opts Options) *OpenAIGenerator {
	return NewOpenAIGeneratorWithConfig(openai.DefaultConfig(apiKey), opts)
}

// NewOpenAIGeneratorWithConfig allows pointing the client at another base URL
func NewOpenAIGeneratorWithConfig(cfg openai.ClientConfig, opts Options) *OpenAIGenerator {
	if opts.Model == "" {
		opts.Model = DefaultOpenAIModel
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultOpenAIMaxTokens
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		opts:   opts,
	}
}

// Generate sends the prompt as a single user message and returns the first choice
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: requestTemperature(g.opts.Temperature),
		MaxTokens:   g.opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// requestTemperature keeps an explicit zero on the wire. The request field is
// omitempty, so 0 would otherwise fall back to the API default of 1.
func requestTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
