package services

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed request; Details lists every problem found.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Details, "; "))
}

// DuplicateError reports chinese values that already exist in the level or
// repeat inside the submitted batch.
type DuplicateError struct {
	Level      string
	Duplicates []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate flashcards in level %q: %s", e.Level, strings.Join(e.Duplicates, ", "))
}

// NotFoundError reports a level without any flashcards.
type NotFoundError struct {
	Level string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Level '%s' not found", e.Level)
}
