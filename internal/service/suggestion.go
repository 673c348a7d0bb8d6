package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/REVAN05072006/explainify/internal/domain"
	"github.com/REVAN05072006/explainify/internal/logger"
	"github.com/REVAN05072006/explainify/internal/pipeline"

	"go.uber.org/zap"
)

// SuggestionService produces follow-up study suggestions for a topic.
// Implementations never fail: enrichment is cosmetic, and nothing it does
// may abort the primary document.
type SuggestionService interface {
	Suggest(ctx context.Context, topic string) []domain.StudySuggestion
}

// suggestionService implements SuggestionService on top of a secondary
// generative backend.
type suggestionService struct {
	backend domain.TextGenerator
}

// NewSuggestionService creates a new instance of suggestionService
func NewSuggestionService(backend domain.TextGenerator) SuggestionService {
	return &suggestionService{backend: backend}
}

// Suggest implements SuggestionService. Every failure mode of the backend
// call and of suggestion parsing degrades to the topic-derived defaults:
// zero usable items fall back to the default set, one or two are padded up
// to the minimum, and anything past the maximum is dropped.
func (s *suggestionService) Suggest(ctx context.Context, topic string) []domain.StudySuggestion {
	raw, err := s.backend.GenerateText(ctx, pipeline.BuildSuggestionsPrompt(topic))
	if err != nil {
		logger.Get().Warn("Suggestion backend call failed, using defaults",
			zap.String("topic", topic), zap.Error(err))
		return defaultSuggestions(topic)
	}

	parsed, err := parseSuggestions(raw)
	if err != nil {
		logger.Get().Warn("Suggestion response unusable, using defaults",
			zap.String("topic", topic), zap.Error(err))
		return defaultSuggestions(topic)
	}
	return normalizeSuggestions(topic, parsed)
}

// parseSuggestions extracts and decodes the suggestions array from raw
// backend text, dropping items without a topic.
func parseSuggestions(raw string) ([]domain.StudySuggestion, error) {
	jsonText, err := pipeline.ExtractArray(raw)
	if err != nil {
		return nil, err
	}

	var suggestions []domain.StudySuggestion
	if err := json.Unmarshal([]byte(jsonText), &suggestions); err != nil {
		return nil, domain.NewParseError(err)
	}

	kept := suggestions[:0]
	for _, sug := range suggestions {
		if strings.TrimSpace(sug.Topic) == "" {
			continue
		}
		kept = append(kept, sug)
	}
	return kept, nil
}

func normalizeSuggestions(topic string, suggestions []domain.StudySuggestion) []domain.StudySuggestion {
	if len(suggestions) == 0 {
		return defaultSuggestions(topic)
	}
	for i := len(suggestions); i < domain.MinSuggestions; i++ {
		suggestions = append(suggestions, fillerSuggestion(topic, i))
	}
	if len(suggestions) > domain.MaxSuggestions {
		suggestions = suggestions[:domain.MaxSuggestions]
	}
	return suggestions
}

// defaultSuggestions is the fixed fallback set used when enrichment yields
// nothing usable.
func defaultSuggestions(topic string) []domain.StudySuggestion {
	return []domain.StudySuggestion{
		{Topic: "Advanced " + topic, Description: fmt.Sprintf("Go deeper into the harder aspects of %s.", topic)},
		{Topic: topic + " in Practice", Description: fmt.Sprintf("See how %s is applied to real problems.", topic)},
		{Topic: "History of " + topic, Description: fmt.Sprintf("Learn how %s developed over time.", topic)},
	}
}

func fillerSuggestion(topic string, i int) domain.StudySuggestion {
	defaults := defaultSuggestions(topic)
	return defaults[i%len(defaults)]
}
