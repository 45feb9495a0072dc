// Package html assembles rendered lines into HTML pages.
package html

import (
	"embed"
	"html/template"
	"io"

	"braces.dev/errtrace"
	"go.abhg.dev/treepaint/internal/render"
)

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	_pageTmpl = template.Must(template.ParseFS(_tmplFS, "tmpl/page.html"))
)

// Page is a single rendered source file.
type Page struct {
	// Title of the page.
	Title string

	// CSS is the stylesheet for the rendered lines.
	CSS string

	// Lines of HTML produced by the renderer.
	// These are trusted and written as-is.
	Lines []string
}

// Renderer writes pages.
type Renderer struct {
	// Whether we're in embedded mode.
	// In this mode, output will only contain the table of lines
	// and will not generate a complete, stylized HTML page.
	Embedded bool
}

func (r *Renderer) templateName() string {
	if r.Embedded {
		return "Body"
	}
	return "Page"
}

type pageData struct {
	Title string
	CSS   template.CSS
	Lines []template.HTML

	LineClass     string
	ForegroundVar template.CSS
	BackgroundVar template.CSS
}

// RenderPage writes a page to w.
func (r *Renderer) RenderPage(w io.Writer, p *Page) error {
	lines := make([]template.HTML, len(p.Lines))
	for i, line := range p.Lines {
		lines[i] = template.HTML(line)
	}

	return errtrace.Wrap(_pageTmpl.ExecuteTemplate(w, r.templateName(), pageData{
		Title:         p.Title,
		CSS:           template.CSS(p.CSS),
		Lines:         lines,
		LineClass:     render.LineClass,
		ForegroundVar: template.CSS(render.ForegroundVar),
		BackgroundVar: template.CSS(render.BackgroundVar),
	}))
}
