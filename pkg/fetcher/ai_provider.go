package fetcher

import (
	"context"
	"fmt"
	"os"

	"github.com/shadowbane/kayak-forecast-map/pkg/ai"
	"go.uber.org/zap"
)

// AIProvider asks a text generator for the forecast document using a prompt file
type AIProvider struct {
	name       string
	generator  ai.Generator
	promptPath string
}

// NewAIProvider creates a provider named after the backing model vendor
func NewAIProvider(name string, generator ai.Generator, promptPath string) *AIProvider {
	return &AIProvider{
		name:       name,
		generator:  generator,
		promptPath: promptPath,
	}
}

func (p *AIProvider) Name() string {
	return p.name
}

// Fetch reads the prompt, calls the generator and strips markdown fences from the reply
func (p *AIProvider) Fetch(ctx context.Context) ([]byte, error) {
	prompt, err := os.ReadFile(p.promptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt: %w", err)
	}

	zap.S().Debugf("Sending %d byte prompt to %s", len(prompt), p.name)

	text, err := p.generator.Generate(ctx, string(prompt))
	if err != nil {
		return nil, err
	}

	zap.S().Debugf("Response from %s:\n%s", p.name, text)

	return []byte(StripCodeFences(text)), nil
}
