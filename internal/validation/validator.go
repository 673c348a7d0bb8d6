package validation

import (
	"fmt"
	"strings"

	"github.com/REVAN05072006/explainify/internal/domain"
)

// MaxTopicLength bounds the topic because prompts embed it verbatim.
const MaxTopicLength = 500

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTopic checks and normalizes the topic of a generation request.
// The returned topic is whitespace-trimmed.
func (v *Validator) ValidateTopic(topic string) (string, error) {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return "", domain.NewInvalidInputError("Topic required")
	}
	if len(trimmed) > MaxTopicLength {
		return "", domain.NewInvalidInputError(fmt.Sprintf("Topic must be at most %d characters", MaxTopicLength))
	}
	return trimmed, nil
}
