package domain

import "context"

// TextGenerator is the single outbound capability the pipeline depends on:
// submit a prompt to a generative backend, receive its raw text response.
// Implementations own their network timeout; callers treat any returned
// error as terminal for the call (no automatic retry or re-prompting).
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
