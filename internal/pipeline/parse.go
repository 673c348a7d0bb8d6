package pipeline

import (
	"encoding/json"
	"errors"

	"github.com/REVAN05072006/explainify/internal/domain"
)

// requiredFields are the top-level keys every document must carry, checked
// in this order so the first missing one is the one reported.
var requiredFields = []string{"teaching_content", "flashcards", "quiz", "test"}

// ParseDocument turns an extracted JSON substring into a typed document.
// Malformed syntax surfaces as a parse error; a wrong top-level container,
// a missing required key, or a mistyped section surfaces as a schema error
// naming the field.
func ParseDocument(jsonText string) (*domain.LearningContentDocument, error) {
	data := []byte(jsonText)

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, domain.NewParseError(err)
	}

	root, ok := generic.(map[string]any)
	if !ok {
		return nil, domain.NewSchemaError("document", "top-level value is not a JSON object")
	}
	for _, field := range requiredFields {
		if _, present := root[field]; !present {
			return nil, domain.NewMissingFieldError(field)
		}
	}

	var doc domain.LearningContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, domain.NewSchemaError(typeErr.Field, "unexpected "+typeErr.Value)
		}
		return nil, domain.NewSchemaError("document", err.Error())
	}
	return &doc, nil
}
