package render

import (
	"html/template"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/treepaint/internal/highlight"
	"go.abhg.dev/treepaint/internal/scope"
	"golang.org/x/net/html"
	"pgregory.net/rapid"
)

// Without any scopes, lines are the escaped source lines.
func TestRenderer_renderEvents_plainText(t *testing.T) {
	t.Parallel()

	r := testRenderer(t)
	rapid.Check(t, func(t *rapid.T) {
		src := rapid.StringMatching(`[a-z<>&"' \n]*`).Draw(t, "src")

		got, err := r.renderEvents(textEvents(src), []byte(src))
		require.NoError(t, err)

		var want []string
		if src != "" {
			parts := strings.Split(src, "\n")
			if parts[len(parts)-1] == "" {
				parts = parts[:len(parts)-1]
			}
			for _, p := range parts {
				want = append(want, template.HTMLEscapeString(p))
			}
		}
		assert.Equal(t, want, got)
	})
}

var _tagRe = regexp.MustCompile(`<[^>]*>`)

// Arbitrary well-nested streams produce balanced lines
// that spell out the source.
// CRLF terminators are dropped wherever the span boundaries fall.
func TestRenderer_renderEvents_nesting(t *testing.T) {
	t.Parallel()

	r := testRenderer(t)
	rapid.Check(t, func(t *rapid.T) {
		src := rapid.StringMatching(`[a-c<&\r\n]{1,40}`).Draw(t, "src")

		var (
			events []highlight.Event
			depth  int
			off    int
		)
		for off < len(src) {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				events = append(events, highlight.EnterScope{
					Scope: rapid.IntRange(0, scope.Len()-1).Draw(t, "scope"),
				})
				depth++
			case 1:
				if depth > 0 {
					events = append(events, highlight.ExitScope{})
					depth--
				}
			case 2:
				end := rapid.IntRange(off+1, len(src)).Draw(t, "end")
				events = append(events, highlight.Text{Start: off, End: end})
				off = end
			}
		}
		for ; depth > 0; depth-- {
			events = append(events, highlight.ExitScope{})
		}

		lines, err := r.renderEvents(eventsOf(events...), []byte(src))
		require.NoError(t, err)

		var text []string
		for _, line := range lines {
			assert.Equal(t,
				strings.Count(line, "<span"), strings.Count(line, "</span>"),
				"unbalanced line: %q", line)
			text = append(text, html.UnescapeString(_tagRe.ReplaceAllString(line, "")))
		}

		want := strings.TrimSuffix(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
		assert.Equal(t, want, strings.Join(text, "\n"))
	})
}
