package event

import "errors"

var (
	// ErrEmptyDraft means a required entry-form field was missing; no events
	// are created and the caller re-prompts.
	ErrEmptyDraft = errors.New("draft is missing a required field")

	ErrInvalidAge = errors.New("age must be a non-negative number")
)
