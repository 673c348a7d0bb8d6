package service

import (
	"context"

	"github.com/REVAN05072006/explainify/internal/domain"
	"github.com/REVAN05072006/explainify/internal/logger"
	"github.com/REVAN05072006/explainify/internal/pipeline"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LearningService defines the interface for learning-content operations
type LearningService interface {
	GenerateContent(ctx context.Context, topic string) (*domain.LearningContentDocument, error)
}

// learningService implements LearningService
type learningService struct {
	pipeline    *pipeline.DocumentPipeline
	suggestions SuggestionService // nil disables enrichment
}

// NewLearningService creates a new instance of learningService. suggestions
// may be nil, in which case documents carry no study_suggestions field.
func NewLearningService(primary domain.TextGenerator, suggestions SuggestionService) LearningService {
	return &learningService{
		pipeline:    pipeline.NewDocumentPipeline(primary),
		suggestions: suggestions,
	}
}

// GenerateContent implements LearningService. The primary document and the
// enrichment suggestions are fetched concurrently. Suggest never returns an
// error, so the group only ever carries the primary pipeline's error; a
// primary failure cancels the group context, which aborts the enrichment
// call instead of waiting it out.
func (s *learningService) GenerateContent(ctx context.Context, topic string) (*domain.LearningContentDocument, error) {
	g, gctx := errgroup.WithContext(ctx)

	var doc *domain.LearningContentDocument
	g.Go(func() error {
		var err error
		doc, err = s.pipeline.GenerateDocument(gctx, topic)
		return err
	})

	var suggestions []domain.StudySuggestion
	if s.suggestions != nil {
		g.Go(func() error {
			suggestions = s.suggestions.Suggest(gctx, topic)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc.StudySuggestions = suggestions
	logger.Get().Info("Generated learning content",
		zap.String("topic", topic),
		zap.Int("suggestions", len(suggestions)))
	return doc, nil
}
