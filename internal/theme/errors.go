package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument indicates that a theme document
	// could not be parsed, or is missing its palette.
	ErrMalformedDocument = errors.New("malformed theme document")

	// ErrInvalidShape indicates that a theme document parsed
	// but is not structured like a theme.
	ErrInvalidShape = errors.New("document is not a valid theme")
)

// UnresolvedColorError is returned when a theme entry
// references a color that isn't in the palette.
type UnresolvedColorError struct {
	// Scope is the theme entry with the bad reference,
	// e.g. "keyword" or "ui.background".
	Scope string

	// Field inside the entry holding the reference, if any.
	// This is empty for entries that are bare references.
	Field string

	// Ref is the referenced color name.
	// This is empty if the field was missing or not a string.
	Ref string
}

func (e *UnresolvedColorError) Error() string {
	name := e.Scope
	if e.Field != "" {
		name += "." + e.Field
	}
	if e.Ref == "" {
		return fmt.Sprintf("%v: expected a palette color name", name)
	}
	return fmt.Sprintf("%v: color %q not found in palette", name, e.Ref)
}
