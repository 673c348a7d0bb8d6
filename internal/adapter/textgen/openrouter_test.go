package textgen

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/REVAN05072006/explainify/internal/config"
	"github.com/REVAN05072006/explainify/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tmc/langchaingo/llms"
)

// MockModel implements llms.Model for both generator adapters in this package.
type MockModel struct {
	mock.Mock
}

func (m *MockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llms.ContentResponse), args.Error(1)
}

var _ llms.Model = (*MockModel)(nil)

func openRouterConfig() config.BackendConfig {
	return config.BackendConfig{
		Source:      "openrouter",
		Model:       "deepseek/deepseek-chat",
		Temperature: 0.4,
		Timeout:     45 * time.Second,
		OpenRouter: config.OpenRouterConfig{
			APIKey:  "fake-api-key",
			BaseURL: "https://openrouter.ai/api/v1",
			Referer: "http://localhost",
			Title:   "Explainify",
		},
	}
}

func TestNewOpenRouterGenerator(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gen, err := NewOpenRouterGenerator(openRouterConfig())
		assert.NoError(t, err)
		assert.NotNil(t, gen)
	})

	t.Run("empty api key", func(t *testing.T) {
		cfg := openRouterConfig()
		cfg.OpenRouter.APIKey = ""
		_, err := NewOpenRouterGenerator(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "openrouter API key cannot be empty")
	})

	t.Run("empty model name", func(t *testing.T) {
		cfg := openRouterConfig()
		cfg.Model = ""
		_, err := NewOpenRouterGenerator(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "openrouter model name cannot be empty")
	})

	t.Run("zero timeout gets the default", func(t *testing.T) {
		cfg := openRouterConfig()
		cfg.Timeout = 0
		gen, err := NewOpenRouterGenerator(cfg)
		assert.NoError(t, err)
		assert.Equal(t, defaultCallTimeout, gen.timeout)
	})

	t.Run("explicit timeout is kept", func(t *testing.T) {
		cfg := openRouterConfig()
		cfg.Timeout = 10 * time.Second
		gen, err := NewOpenRouterGenerator(cfg)
		assert.NoError(t, err)
		assert.Equal(t, 10*time.Second, gen.timeout)
	})
}

func TestOpenRouterGenerator_GenerateText(t *testing.T) {
	ctx := context.Background()

	t.Run("trims the response", func(t *testing.T) {
		mockLLM := new(MockModel)
		mockLLM.On("Call", mock.Anything, "prompt-text").Return("\n  {\"a\": 1}  \n", nil).Once()

		gen := &OpenRouterGenerator{llm: mockLLM, temperature: 0.4, timeout: time.Second}
		got, err := gen.GenerateText(ctx, "prompt-text")
		assert.NoError(t, err)
		assert.Equal(t, `{"a": 1}`, got)
		mockLLM.AssertExpectations(t)
	})

	t.Run("applies a per-call deadline", func(t *testing.T) {
		mockLLM := new(MockModel)
		mockLLM.On("Call", mock.MatchedBy(func(callCtx context.Context) bool {
			_, ok := callCtx.Deadline()
			return ok
		}), "prompt-text").Return("ok", nil).Once()

		gen := &OpenRouterGenerator{llm: mockLLM, temperature: 0.4, timeout: 30 * time.Second}
		_, err := gen.GenerateText(ctx, "prompt-text")
		assert.NoError(t, err)
		mockLLM.AssertExpectations(t)
	})

	t.Run("wraps backend failures", func(t *testing.T) {
		mockLLM := new(MockModel)
		callErr := errors.New("API returned unexpected status code: 429")
		mockLLM.On("Call", mock.Anything, "prompt-text").Return("", callErr).Once()

		gen := &OpenRouterGenerator{llm: mockLLM, temperature: 0.4, timeout: time.Second}
		_, err := gen.GenerateText(ctx, "prompt-text")
		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrBackendUnavailable, domainErr.Code)
		assert.Contains(t, err.Error(), "OpenRouter")
		assert.ErrorIs(t, err, callErr)
		mockLLM.AssertExpectations(t)
	})
}

// captureTransport records the request it receives so header injection can
// be asserted without a network round trip.
type captureTransport struct {
	req *http.Request
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.req = req
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: make(http.Header)}, nil
}

func TestHeaderTransport(t *testing.T) {
	t.Run("sets attribution headers on a clone", func(t *testing.T) {
		capture := &captureTransport{}
		transport := &headerTransport{base: capture, referer: "http://localhost", title: "Explainify"}

		req, err := http.NewRequest("POST", "https://openrouter.ai/api/v1/chat/completions", nil)
		assert.NoError(t, err)

		resp, err := transport.RoundTrip(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, "http://localhost", capture.req.Header.Get("HTTP-Referer"))
		assert.Equal(t, "Explainify", capture.req.Header.Get("X-Title"))

		// the caller's request must stay untouched
		assert.Empty(t, req.Header.Get("HTTP-Referer"))
		assert.Empty(t, req.Header.Get("X-Title"))
	})

	t.Run("empty headers are not sent", func(t *testing.T) {
		capture := &captureTransport{}
		transport := &headerTransport{base: capture}

		req, err := http.NewRequest("POST", "https://openrouter.ai/api/v1/chat/completions", nil)
		assert.NoError(t, err)

		_, err = transport.RoundTrip(req)
		assert.NoError(t, err)
		_, present := capture.req.Header["Http-Referer"]
		assert.False(t, present)
		_, present = capture.req.Header["X-Title"]
		assert.False(t, present)
	})
}

// Ensure OpenRouterGenerator implements TextGenerator
var _ domain.TextGenerator = (*OpenRouterGenerator)(nil)
