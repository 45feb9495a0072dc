// Package theme resolves Helix-style theme documents
// into styles addressed by scope index.
//
// A theme document has a palette of named colors,
// and top-level entries keyed by scope name.
// Each entry is either the name of a palette color,
// or a table with a foreground color reference
// and an optional list of modifiers.
//
//	"keyword" = "red"
//	"function.method" = { fg = "blue", modifiers = ["bold", "italic"] }
//	"ui.text" = "white"
//	"ui.background" = { bg = "black" }
//
//	[palette]
//	red = "#ff0000"
//	blue = "#0000ff"
//	white = "#ffffff"
//	black = "#000000"
package theme

import (
	"go.abhg.dev/treepaint/internal/scope"
)

const (
	// DefaultForeground is used when a theme doesn't specify ui.text.
	DefaultForeground = "#fff"

	// DefaultBackground is used when a theme doesn't specify
	// a background color in ui.background.
	DefaultBackground = "#000"
)

// Style is a resolved color with modifiers.
type Style struct {
	// Color in any CSS color syntax.
	// This is copied verbatim from the palette.
	Color string

	Bold   bool
	Italic bool
}

// Theme is a resolved theme.
//
// Themes are immutable once built,
// and may be shared between goroutines.
type Theme struct {
	styles map[int]Style // scope index => style

	// Foreground is the default text color.
	Foreground Style

	// Background is the default background color.
	Background Style
}

// Style returns the style for the scope at index i,
// reporting false if the theme has nothing to say about it.
func (t *Theme) Style(i int) (Style, bool) {
	s, ok := t.styles[i]
	return s, ok
}

// Len reports the number of scopes that have a style.
func (t *Theme) Len() int { return len(t.styles) }

// Each calls fn for every styled scope, in scope index order.
func (t *Theme) Each(fn func(int, Style)) {
	for i := range scope.Len() {
		if s, ok := t.styles[i]; ok {
			fn(i, s)
		}
	}
}
