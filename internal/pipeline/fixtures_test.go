package pipeline

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/REVAN05072006/explainify/internal/domain"
)

// validDocument builds a complete, rule-abiding learning document for the
// Photosynthesis topic. Tests mutate fresh copies of it to trigger one
// specific violation at a time.
func validDocument() *domain.LearningContentDocument {
	doc := &domain.LearningContentDocument{
		TeachingContent: domain.TeachingContent{
			Title:        "Photosynthesis",
			Introduction: "Photosynthesis is the process plants use to turn light into chemical energy.",
			Sections: []domain.Section{
				{Heading: "Light-Dependent Reactions", Content: "Chlorophyll absorbs photons and splits water molecules."},
				{Heading: "The Calvin Cycle", Content: "ATP and NADPH drive carbon fixation into glucose."},
				{Heading: "Limiting Factors", Content: "Light intensity, carbon dioxide and temperature set the pace."},
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

// documentJSON marshals a document for use as canned backend output.
func documentJSON(t *testing.T, doc *domain.LearningContentDocument) string {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal fixture document: %v", err)
	}
	return string(data)
}
