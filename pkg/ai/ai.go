// Package ai wraps the text-generation APIs used to write forecast summaries.
package ai

import "context"

// Generator turns a prompt into generated text
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options are the sampling settings shared by both providers
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
}
