// Package render turns highlighted source code into themed HTML.
//
// A [Renderer] is bound to a single [theme.Theme].
// It produces one HTML fragment per source line,
// and the stylesheet that gives those fragments color.
// Every fragment is self-contained:
// spans that cross a line break are closed at the end of the line
// and reopened on the next,
// so lines may be placed in separate containers (e.g. table rows).
package render

import (
	"fmt"
	"io"
	"iter"
	"log"
	"slices"
	"time"

	"braces.dev/errtrace"
	"go.abhg.dev/treepaint/internal/highlight"
	"go.abhg.dev/treepaint/internal/language"
	"go.abhg.dev/treepaint/internal/scope"
	"go.abhg.dev/treepaint/internal/theme"
)

// Option customizes a [Renderer].
type Option func(*Renderer)

// WithLogger sets the logger used for debug messages.
// By default, nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		r.log = l
	}
}

// Renderer renders source code into HTML lines.
//
// A Renderer caches the compiled highlighting configuration
// for each language it renders.
// It is not safe for concurrent use:
// use a Renderer per goroutine.
// The Theme may be shared between Renderers.
type Renderer struct {
	theme   *theme.Theme
	classes []string // scope index => ` class="tsc-..."` or ""
	css     string   // lazily built stylesheet
	log     *log.Logger

	configs map[string]*highlight.Config // language name => config
}

// New builds a Renderer for the given theme.
func New(t *theme.Theme, opts ...Option) *Renderer {
	classes := make([]string, scope.Len())
	t.Each(func(i int, _ theme.Style) {
		classes[i] = fmt.Sprintf(` class="%v"`, scope.Class(ClassPrefix, i))
	})

	r := &Renderer{
		theme:   t,
		classes: classes,
		log:     log.New(io.Discard, "", 0),
		configs: make(map[string]*highlight.Config),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CSS returns the stylesheet for this renderer's theme.
// The stylesheet is built once and reused.
func (r *Renderer) CSS() string {
	if r.css == "" {
		r.css = CSS(r.theme)
	}
	return r.css
}

// Render highlights src as the given language,
// and returns a sequence of HTML fragments, one per line.
//
// Lines do not include the line terminator.
// A trailing line terminator does not start a new line.
//
// All lines are built before Render returns;
// the sequence only walks over them.
//
// If the source could not be highlighted,
// Render returns a [*HighlightError] and no lines.
func (r *Renderer) Render(lang *language.Language, src []byte) (iter.Seq[string], error) {
	lines, err := r.RenderLines(lang, src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return slices.Values(lines), nil
}

// RenderLines is a variant of [Renderer.Render]
// that returns all lines at once.
func (r *Renderer) RenderLines(lang *language.Language, src []byte) ([]string, error) {
	cfg, err := r.config(lang)
	if err != nil {
		return nil, errtrace.Wrap(&HighlightError{Language: lang.Name, Err: err})
	}

	start := time.Now()
	lines, err := r.renderEvents(highlight.Highlight(cfg, src), src)
	if err != nil {
		return nil, errtrace.Wrap(&HighlightError{Language: lang.Name, Err: err})
	}
	r.log.Printf("rendered %d lines of %v in %v", len(lines), lang.Name, time.Since(start))
	return lines, nil
}

// config returns the cached configuration for a language,
// loading it if necessary.
func (r *Renderer) config(lang *language.Language) (*highlight.Config, error) {
	if cfg, ok := r.configs[lang.Name]; ok {
		return cfg, nil
	}

	r.log.Printf("loading highlighting configuration for %v", lang.Name)
	cfg, err := lang.Load()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	r.configs[lang.Name] = cfg
	return cfg, nil
}

// renderEvents renders a highlight stream over src.
// It panics if the stream isn't well nested.
func (r *Renderer) renderEvents(events iter.Seq2[highlight.Event, error], src []byte) ([]string, error) {
	s := session{classes: r.classes}
	for event, err := range events {
		if err != nil {
			return nil, errtrace.Wrap(err)
		}

		switch e := event.(type) {
		case highlight.EnterScope:
			s.enter(e.Scope)
		case highlight.ExitScope:
			s.exit()
		case highlight.Text:
			s.text(src[e.Start:e.End])
		default:
			panic(fmt.Sprintf("unrecognized event type %T", e))
		}
	}
	return s.finish(), nil
}
