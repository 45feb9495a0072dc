package html

import (
	"bytes"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRenderer_RenderPage(t *testing.T) {
	t.Parallel()

	page := &Page{
		Title: "main.rs <draft>",
		CSS:   ".tsc-keyword { color: #ff0000; }\n",
		Lines: []string{
			`<span class="tsc-keyword">fn</span> main() {`,
			`}`,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, new(Renderer).RenderPage(&buf, page))

	doc, err := html.Parse(&buf)
	require.NoError(t, err)

	title := cascadia.Query(doc, cascadia.MustCompile("head > title"))
	if assert.NotNil(t, title) && assert.NotNil(t, title.FirstChild) {
		assert.Equal(t, "main.rs <draft>", title.FirstChild.Data)
	}

	style := cascadia.Query(doc, cascadia.MustCompile("head > style"))
	if assert.NotNil(t, style) && assert.NotNil(t, style.FirstChild) {
		assert.Contains(t, style.FirstChild.Data, ".tsc-keyword { color: #ff0000; }")
		assert.Contains(t, style.FirstChild.Data, "var(--tsc-main-bg-color)")
	}

	cells := cascadia.QueryAll(doc, cascadia.MustCompile("pre td.tsc-line"))
	require.Len(t, cells, 2)

	kw := cascadia.Query(cells[0], cascadia.MustCompile("span.tsc-keyword"))
	if assert.NotNil(t, kw) && assert.NotNil(t, kw.FirstChild) {
		assert.Equal(t, "fn", kw.FirstChild.Data)
	}
}

func TestRenderer_RenderPage_embedded(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, (&Renderer{Embedded: true}).RenderPage(&buf, &Page{
		Title: "ignored",
		CSS:   "ignored",
		Lines: []string{"a &amp; b"},
	}))

	got := buf.String()
	assert.NotContains(t, got, "<html>")
	assert.NotContains(t, got, "<style>")
	assert.NotContains(t, got, "ignored")
	assert.Contains(t, got, `<tr><td class="tsc-line">a &amp; b</td></tr>`)
}
