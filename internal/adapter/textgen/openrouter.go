package textgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/REVAN05072006/explainify/internal/config"
	"github.com/REVAN05072006/explainify/internal/domain"

	"github.com/tmc/langchaingo/llms"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
)

// Generous per-call ceiling; generation of a full learning bundle is slow.
// Each call gets its own deadline so a hung enrichment call cannot starve
// the primary one.
const defaultCallTimeout = 45 * time.Second

// OpenRouterGenerator implements domain.TextGenerator against an
// OpenAI-compatible chat completion API (OpenRouter in front of DeepSeek
// by default).
type OpenRouterGenerator struct {
	llm         llms.Model
	temperature float64
	timeout     time.Duration
}

// NewOpenRouterGenerator creates a new OpenRouterGenerator.
// It requires an API key and a model name.
func NewOpenRouterGenerator(cfg config.BackendConfig) (*OpenRouterGenerator, error) {
	if cfg.OpenRouter.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openrouter model name cannot be empty")
	}

	httpClient := &http.Client{
		Transport: &headerTransport{
			referer: cfg.OpenRouter.Referer,
			title:   cfg.OpenRouter.Title,
		},
	}

	opts := []openaiLLM.Option{
		openaiLLM.WithToken(cfg.OpenRouter.APIKey),
		openaiLLM.WithModel(cfg.Model),
		openaiLLM.WithHTTPClient(httpClient),
	}
	if cfg.OpenRouter.BaseURL != "" {
		opts = append(opts, openaiLLM.WithBaseURL(cfg.OpenRouter.BaseURL))
	}

	llm, err := openaiLLM.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI client for OpenRouter: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &OpenRouterGenerator{llm: llm, temperature: cfg.Temperature, timeout: timeout}, nil
}

// GenerateText submits the prompt and returns the backend's raw text.
func (g *OpenRouterGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := g.llm.Call(callCtx, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		return "", domain.NewBackendUnavailableError("OpenRouter", err)
	}
	return strings.TrimSpace(response), nil
}

// headerTransport adds the attribution headers OpenRouter uses for app
// ranking to every outgoing request.
type headerTransport struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.referer != "" {
		clone.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		clone.Header.Set("X-Title", t.title)
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
