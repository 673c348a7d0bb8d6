package pipeline

import (
	"context"

	"github.com/REVAN05072006/explainify/internal/domain"
	"github.com/REVAN05072006/explainify/internal/logger"

	"go.uber.org/zap"
)

// DocumentPipeline orchestrates the primary document flow: prompt
// construction, one backend call, then extraction, parsing, validation,
// and answer repair. Each stage's failure is terminal for the request;
// the backend is never re-prompted and no partial document is returned.
type DocumentPipeline struct {
	backend domain.TextGenerator
}

// NewDocumentPipeline creates a new DocumentPipeline on top of a backend
func NewDocumentPipeline(backend domain.TextGenerator) *DocumentPipeline {
	return &DocumentPipeline{backend: backend}
}

// GenerateDocument runs the full primary pipeline for a topic.
func (p *DocumentPipeline) GenerateDocument(ctx context.Context, topic string) (*domain.LearningContentDocument, error) {
	raw, err := p.backend.GenerateText(ctx, BuildDocumentPrompt(topic))
	if err != nil {
		return nil, err
	}

	doc, err := BuildDocument(raw)
	if err != nil {
		logger.Get().Warn("Discarding unusable backend response",
			zap.String("topic", topic),
			zap.String("response", truncate(raw, 300)),
			zap.Error(err))
		return nil, err
	}
	return doc, nil
}

// BuildDocument turns raw backend text into a validated document:
// extract, parse, validate, repair. Exposed separately from the backend
// call so the whole text-to-document path can be exercised on canned input.
func BuildDocument(raw string) (*domain.LearningContentDocument, error) {
	jsonText, err := ExtractObject(raw)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(jsonText)
	if err != nil {
		return nil, err
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}
	if err := RepairDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// truncate shortens s for log output.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
