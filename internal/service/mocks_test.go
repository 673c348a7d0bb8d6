package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/REVAN05072006/explainify/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

var _ domain.TextGenerator = (*MockTextGenerator)(nil)

// --- MockSuggestionService ---
type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) Suggest(ctx context.Context, topic string) []domain.StudySuggestion {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.StudySuggestion)
}

var _ SuggestionService = (*MockSuggestionService)(nil)

// validDocument builds a complete, rule-abiding learning document so the
// primary pipeline succeeds on canned backend output.
func validDocument() *domain.LearningContentDocument {
	doc := &domain.LearningContentDocument{
		TeachingContent: domain.TeachingContent{
			Title:        "Photosynthesis",
			Introduction: "Photosynthesis is the process plants use to turn light into chemical energy.",
			Sections: []domain.Section{
				{Heading: "Light-Dependent Reactions", Content: "Chlorophyll absorbs photons and splits water molecules."},
				{Heading: "The Calvin Cycle", Content: "ATP and NADPH drive carbon fixation into glucose."},
			},
			Summary: "Plants capture light energy, store it as sugar and release oxygen.",
		},
	}

	for i := 0; i < domain.FlashcardCount; i++ {
		doc.Flashcards = append(doc.Flashcards, domain.Flashcard{
			Title:       fmt.Sprintf("Concept %d", i+1),
			Explanation: fmt.Sprintf("Explanation for concept %d.", i+1),
			KeyPoint:    fmt.Sprintf("Key point %d.", i+1),
		})
	}
	for i := 0; i < domain.QuizCount; i++ {
		doc.Quiz = append(doc.Quiz, domain.QuizQuestion{
			Question: fmt.Sprintf("Quiz question %d?", i+1),
			Options:  []string{"Chlorophyll", "Mitochondria", "Ribosome", "Nucleus"},
			Answer:   "Chlorophyll",
		})
	}
	for i := 0; i < domain.MCQCount; i++ {
		doc.Test.MCQQuestions = append(doc.Test.MCQQuestions, domain.MCQQuestion{
			Question:    fmt.Sprintf("Test question %d?", i+1),
			Options:     []string{"Oxygen", "Nitrogen", "Helium", "Argon"},
			Answer:      "Oxygen",
			Explanation: "Photosynthesis releases oxygen as a byproduct.",
		})
	}
	for i := 0; i < domain.QACount; i++ {
		doc.Test.QAQuestions = append(doc.Test.QAQuestions, domain.QAPair{
			Question: fmt.Sprintf("Open question %d?", i+1),
			Answer:   fmt.Sprintf("Model answer %d.", i+1),
		})
	}
	return doc
}

func validDocumentJSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(validDocument())
	if err != nil {
		t.Fatalf("failed to marshal fixture document: %v", err)
	}
	return string(data)
}
