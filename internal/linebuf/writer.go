// Package linebuf provides line-buffered IO utilities.
package linebuf

import (
	"bytes"
	"io"
	"sync"
)

// Writer returns an io.Writer that splits its input on newline,
// calling fn for each line, including the trailing newline.
// done flushes a final partial line, if any.
//
// The slice passed to fn is only valid until fn returns.
// Writer is safe for concurrent use.
func Writer(fn func([]byte)) (_ io.Writer, done func()) {
	w := writer{writeLine: fn}
	return &w, w.flush
}

type writer struct {
	writeLine func([]byte)

	mu      sync.Mutex
	pending bytes.Buffer // text not yet passed to writeLine
}

func (w *writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending.Write(bs)
	for {
		idx := bytes.IndexByte(w.pending.Bytes(), '\n')
		if idx < 0 {
			break
		}
		w.writeLine(w.pending.Next(idx + 1))
	}
	return len(bs), nil
}

func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending.Len() > 0 {
		w.writeLine(w.pending.Next(w.pending.Len()))
	}
}
