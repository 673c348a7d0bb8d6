package pipeline

import (
	"strings"

	"github.com/REVAN05072006/explainify/internal/domain"
)

// stripCodeFences removes markdown fence markers anywhere in the text.
// Backends regularly wrap their output in ```json fences despite being
// told not to.
func stripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// ExtractObject isolates the outermost JSON object from raw backend text:
// everything from the first "{" through the last "}". This is boundary
// discovery only; whether the slice is valid JSON is the parser's problem.
func ExtractObject(raw string) (string, error) {
	cleaned := stripCodeFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end <= start {
		return "", domain.NewExtractionError("object")
	}
	return strings.TrimSpace(cleaned[start : end+1]), nil
}

// ExtractArray isolates the outermost JSON array, the container used by the
// enrichment suggestions response.
func ExtractArray(raw string) (string, error) {
	cleaned := stripCodeFences(raw)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end <= start {
		return "", domain.NewExtractionError("array")
	}
	return strings.TrimSpace(cleaned[start : end+1]), nil
}
