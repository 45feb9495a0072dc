package render

import "fmt"

// HighlightError is returned when source code could not be highlighted
// because the language's configuration could not be loaded,
// or because the highlighter failed.
type HighlightError struct {
	// Language being highlighted.
	Language string

	// Err is the underlying failure.
	Err error
}

func (e *HighlightError) Error() string {
	return fmt.Sprintf("highlighting failed: %v: %v", e.Language, e.Err)
}

func (e *HighlightError) Unwrap() error { return e.Err }
