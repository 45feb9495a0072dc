package render

import (
	"bytes"
	"html/template"

	"go.abhg.dev/treepaint/internal/must"
)

// session holds the state of a single render call.
// It turns highlight events into HTML, one line at a time.
type session struct {
	classes []string // scope => ` class="..."` or ""

	open  []int // scopes with open spans, outermost first
	line  bytes.Buffer
	lines []string

	// Whether text was written to line
	// since the last line break.
	dirty bool

	// A CR was the last text seen in the source.
	// It's dropped if an LF follows.
	// Tags written while it's pending go to afterCR
	// so that the CR keeps its place if it turns out to be text.
	cr      bool
	afterCR bytes.Buffer
}

func (s *session) enter(scope int) {
	s.open = append(s.open, scope)
	s.openSpan(scope)
}

func (s *session) exit() {
	must.Truef(len(s.open) > 0, "scope exit without a matching enter")
	s.open = s.open[:len(s.open)-1]
	s.closeSpan()
}

func (s *session) openSpan(scope int) {
	w := s.tagBuffer()
	w.WriteString("<span")
	if scope < len(s.classes) {
		w.WriteString(s.classes[scope])
	}
	w.WriteString(">")
}

func (s *session) closeSpan() {
	s.tagBuffer().WriteString("</span>")
}

// tagBuffer returns the buffer that markup should be written to.
func (s *session) tagBuffer() *bytes.Buffer {
	if s.cr {
		return &s.afterCR
	}
	return &s.line
}

// text writes source text, splitting it into lines.
func (s *session) text(src []byte) {
	for len(src) > 0 {
		idx := bytes.IndexByte(src, '\n')
		if idx < 0 {
			s.write(src)
			return
		}

		s.write(src[:idx])
		s.dropCR() // part of the line terminator
		s.breakLine()
		src = src[idx+1:]
	}
}

func (s *session) write(text []byte) {
	if len(text) == 0 {
		return
	}

	s.flushCR()
	if text[len(text)-1] == '\r' {
		text = text[:len(text)-1]
		s.cr = true
	}
	template.HTMLEscape(&s.line, text)
	s.dirty = true
}

// flushCR writes a pending CR as text,
// followed by the markup held behind it.
func (s *session) flushCR() {
	if s.cr {
		s.line.WriteByte('\r')
		s.releaseCR()
	}
}

// dropCR discards a pending CR
// but keeps the markup held behind it.
func (s *session) dropCR() {
	if s.cr {
		s.releaseCR()
	}
}

func (s *session) releaseCR() {
	s.cr = false
	s.line.Write(s.afterCR.Bytes())
	s.afterCR.Reset()
}

// breakLine ends the current line.
// Open spans are closed at the end of the line
// and reopened at the start of the next one
// so that each line stands on its own.
func (s *session) breakLine() {
	for range s.open {
		s.closeSpan()
	}
	s.lines = append(s.lines, s.line.String())

	s.line.Reset()
	s.dirty = false
	for _, scope := range s.open {
		s.openSpan(scope)
	}
}

// finish flushes the last line and returns all lines.
func (s *session) finish() []string {
	must.Truef(len(s.open) == 0, "%d scopes left open at end of source", len(s.open))
	s.flushCR()
	if s.dirty {
		s.lines = append(s.lines, s.line.String())
	}
	return s.lines
}
