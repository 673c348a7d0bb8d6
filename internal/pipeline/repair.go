package pipeline

import (
	"fmt"
	"strings"

	"github.com/REVAN05072006/explainify/internal/domain"
)

// RepairAnswer reconciles a stated answer with its offered options. Backends
// frequently restate the correct option with different casing, punctuation,
// or surrounding words; downstream grading needs exact equality, so a near
// miss is rewritten to the matched option's original text. The rules apply
// in order and the first hit wins:
//
//  1. exact match - the answer is already one of the options, kept as is
//  2. case-insensitive match - rewritten to that option's original casing
//  3. substring match, case-insensitive, in either direction - rewritten to
//     that option's text
//
// When several options qualify under rule 2 or 3, the first option in list
// order is chosen. An empty answer never matches. The second return value
// reports whether any rule placed the answer.
func RepairAnswer(options []string, answer string) (string, bool) {
	if strings.TrimSpace(answer) == "" {
		return "", false
	}

	for _, opt := range options {
		if answer == opt {
			return answer, true
		}
	}

	lowered := strings.ToLower(answer)
	for _, opt := range options {
		if lowered == strings.ToLower(opt) {
			return opt, true
		}
	}

	for _, opt := range options {
		loweredOpt := strings.ToLower(opt)
		if strings.Contains(loweredOpt, lowered) || strings.Contains(lowered, loweredOpt) {
			return opt, true
		}
	}

	return "", false
}

// RepairDocument runs the answer repair over every multiple-choice item in
// the document, quiz questions and test MCQs alike, under the same policy.
// Answers are rewritten in place; this is the only mutation the document
// undergoes between parsing and delivery. Any unrepairable item aborts the
// whole document, since a dangling answer would corrupt grading.
func RepairDocument(doc *domain.LearningContentDocument) error {
	for i := range doc.Quiz {
		q := &doc.Quiz[i]
		repaired, err := repairItem("quiz", i, q.Options, q.Answer)
		if err != nil {
			return err
		}
		q.Answer = repaired
	}

	for i := range doc.Test.MCQQuestions {
		q := &doc.Test.MCQQuestions[i]
		repaired, err := repairItem("test.mcq_questions", i, q.Options, q.Answer)
		if err != nil {
			return err
		}
		q.Answer = repaired
	}
	return nil
}

// repairItem applies the per-item pre-checks, then the matching rules.
// A wrong option count is a cardinality problem and reported as such; an
// unplaceable answer is an answer-consistency failure naming the question,
// the answer, and the full option list.
func repairItem(section string, index int, options []string, answer string) (string, error) {
	if got := len(options); got != domain.OptionCount {
		field := fmt.Sprintf("%s[%d].options", section, index)
		return "", domain.NewSchemaError(field, countMessage(domain.OptionCount, got))
	}

	repaired, ok := RepairAnswer(options, answer)
	if !ok {
		return "", domain.NewAnswerConsistencyError(section, index, answer, options)
	}
	return repaired, nil
}
