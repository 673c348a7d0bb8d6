package pipeline

import (
	"fmt"

	"github.com/REVAN05072006/explainify/internal/domain"
)

// ValidateDocument enforces the collection cardinalities and the non-empty
// field invariants on a parsed document. The first violation short-circuits
// the pass, and every count violation names the offending field.
func ValidateDocument(doc *domain.LearningContentDocument) error {
	if err := doc.TeachingContent.Validate(); err != nil {
		return err
	}

	if got := len(doc.Flashcards); got != domain.FlashcardCount {
		return domain.NewSchemaError("flashcards", countMessage(domain.FlashcardCount, got))
	}
	for i := range doc.Flashcards {
		if err := doc.Flashcards[i].Validate(); err != nil {
			return err
		}
	}

	if got := len(doc.Quiz); got != domain.QuizCount {
		return domain.NewSchemaError("quiz", countMessage(domain.QuizCount, got))
	}
	if got := len(doc.Test.MCQQuestions); got != domain.MCQCount {
		return domain.NewSchemaError("test.mcq_questions", countMessage(domain.MCQCount, got))
	}
	if got := len(doc.Test.QAQuestions); got != domain.QACount {
		return domain.NewSchemaError("test.qa_questions", countMessage(domain.QACount, got))
	}
	return nil
}

func countMessage(want, got int) string {
	return fmt.Sprintf("expected exactly %d items, got %d", want, got)
}
