package domain

import (
	"fmt"
	"strings"
)

// Cardinalities the generative backend is instructed to honor and the
// validation pass enforces.
const (
	FlashcardCount = 5
	QuizCount      = 5
	MCQCount       = 5
	QACount        = 3
	OptionCount    = 4

	MinSuggestions = 3
	MaxSuggestions = 4
)

// Section represents one unit of lesson narrative
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// TeachingContent represents the lesson part of a learning bundle
type TeachingContent struct {
	Title        string    `json:"title"`
	Introduction string    `json:"introduction"`
	Sections     []Section `json:"sections"`
	Summary      string    `json:"summary"`
}

// Validate checks that every lesson field carries content
func (t *TeachingContent) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewSchemaError("teaching_content.title", "must not be empty")
	}
	if strings.TrimSpace(t.Introduction) == "" {
		return NewSchemaError("teaching_content.introduction", "must not be empty")
	}
	if len(t.Sections) == 0 {
		return NewSchemaError("teaching_content.sections", "must not be empty")
	}
	for i, s := range t.Sections {
		if strings.TrimSpace(s.Heading) == "" || strings.TrimSpace(s.Content) == "" {
			return NewSchemaError("teaching_content.sections", fmt.Sprintf("section %d has an empty heading or content", i))
		}
	}
	if strings.TrimSpace(t.Summary) == "" {
		return NewSchemaError("teaching_content.summary", "must not be empty")
	}
	return nil
}

// Flashcard represents a single study card
type Flashcard struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	KeyPoint    string `json:"key_point"`
}

// Validate checks that every flashcard field carries content
func (f *Flashcard) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return NewSchemaError("flashcards", "title must not be empty")
	}
	if strings.TrimSpace(f.Explanation) == "" {
		return NewSchemaError("flashcards", "explanation must not be empty")
	}
	if strings.TrimSpace(f.KeyPoint) == "" {
		return NewSchemaError("flashcards", "key_point must not be empty")
	}
	return nil
}

// QuizQuestion represents a multiple-choice question
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// MCQQuestion represents a multiple-choice test question with a model explanation
type MCQQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// QAPair represents an open question with its model answer
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TestBundle represents the assessment part of a learning bundle
type TestBundle struct {
	MCQQuestions []MCQQuestion `json:"mcq_questions"`
	QAQuestions  []QAPair      `json:"qa_questions"`
}

// StudySuggestion represents a related follow-up topic
type StudySuggestion struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// LearningContentDocument is the top-level result of a generation request.
// It is owned by exactly one request, mutated only during the validation
// pass (answer repair), and immutable once handed to the caller.
type LearningContentDocument struct {
	TeachingContent  TeachingContent   `json:"teaching_content"`
	Flashcards       []Flashcard       `json:"flashcards"`
	Quiz             []QuizQuestion    `json:"quiz"`
	Test             TestBundle        `json:"test"`
	StudySuggestions []StudySuggestion `json:"study_suggestions,omitempty"`
}
