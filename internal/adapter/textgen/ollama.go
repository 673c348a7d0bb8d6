package textgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/REVAN05072006/explainify/internal/config"
	"github.com/REVAN05072006/explainify/internal/domain"

	"github.com/tmc/langchaingo/llms"
	ollamaLLM "github.com/tmc/langchaingo/llms/ollama"
)

// OllamaGenerator implements domain.TextGenerator against a local Ollama
// server.
type OllamaGenerator struct {
	llm         llms.Model
	temperature float64
	timeout     time.Duration
}

// NewOllamaGenerator creates a new OllamaGenerator.
// It requires the Ollama server URL and model name.
func NewOllamaGenerator(cfg config.BackendConfig) (*OllamaGenerator, error) {
	if cfg.Ollama.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	llm, err := ollamaLLM.New(
		ollamaLLM.WithServerURL(cfg.Ollama.ServerURL),
		ollamaLLM.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama LLM client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &OllamaGenerator{llm: llm, temperature: cfg.Temperature, timeout: timeout}, nil
}

// GenerateText submits the prompt and returns the backend's raw text.
func (g *OllamaGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := g.llm.Call(callCtx, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		return "", domain.NewBackendUnavailableError("Ollama", err)
	}
	return strings.TrimSpace(response), nil
}
