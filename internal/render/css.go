package render

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/treepaint/internal/scope"
	"go.abhg.dev/treepaint/internal/theme"
)

// ClassPrefix prefixes every CSS class and custom property
// generated by treepaint.
const ClassPrefix = "tsc"

// LineClass is the class of the element that holds a single line.
const LineClass = ClassPrefix + "-line"

// Custom properties defined on :root by the stylesheet.
const (
	ForegroundVar = "--" + ClassPrefix + "-main-fg-color"
	BackgroundVar = "--" + ClassPrefix + "-main-bg-color"
)

// WriteCSS writes the stylesheet for a theme to w.
//
// The stylesheet defines the default foreground and background colors
// as custom properties on :root,
// a class for every scope that the theme styles,
// and the [LineClass] utility class.
func WriteCSS(w io.Writer, t *theme.Theme) error {
	_, err := io.WriteString(w, CSS(t))
	return errtrace.Wrap(err)
}

// CSS returns the stylesheet for a theme.
// See [WriteCSS] for details.
func CSS(t *theme.Theme) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, ":root { %v: %v; %v: %v; }\n",
		ForegroundVar, t.Foreground.Color,
		BackgroundVar, t.Background.Color)

	t.Each(func(i int, s theme.Style) {
		fmt.Fprintf(&sb, ".%v { color: %v; ", scope.Class(ClassPrefix, i), s.Color)
		if s.Bold {
			sb.WriteString("font-weight: bold; ")
		}
		if s.Italic {
			sb.WriteString("font-style: italic; ")
		}
		sb.WriteString("}\n")
	})

	fmt.Fprintf(&sb, ".%v { word-wrap: normal; white-space: pre; }\n", LineClass)
	return sb.String()
}
