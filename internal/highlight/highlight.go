package highlight

import (
	"errors"
	"iter"
	"unicode/utf8"

	"braces.dev/errtrace"
	"go.abhg.dev/treepaint/internal/sliceutil"
)

// ErrInvalidUTF8 indicates that the source is not UTF-8 encoded.
// Lexers only operate on UTF-8.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// Highlight annotates src using the given configuration.
//
// The sequence is consumed once.
// If the source cannot be highlighted,
// the sequence yields a single error and stops.
func Highlight(cfg *Config, src []byte) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		if off, ok := invalidUTF8(src); ok {
			yield(nil, errtrace.Errorf("%w: bad byte at offset %d", ErrInvalidUTF8, off))
			return
		}

		tokens, err := cfg.lexer.Lex(src)
		if err != nil {
			yield(nil, errtrace.Wrap(err))
			return
		}

		spans, err := indexTokens(src, tokens)
		if err != nil {
			yield(nil, errtrace.Wrap(err))
			return
		}

		var open []int // scopes currently entered
		for _, span := range spans {
			path := cfg.path(span.Type)

			keep := sliceutil.CommonPrefixLen(open, path)
			for len(open) > keep {
				open = open[:len(open)-1]
				if !yield(ExitScope{}, nil) {
					return
				}
			}
			for _, s := range path[keep:] {
				open = append(open, s)
				if !yield(EnterScope{Scope: s}, nil) {
					return
				}
			}

			if !yield(Text{Start: span.Start, End: span.End}, nil) {
				return
			}
		}

		for range open {
			if !yield(ExitScope{}, nil) {
				return
			}
		}
	}
}

// invalidUTF8 reports the offset of the first byte in src
// that isn't part of a valid UTF-8 sequence.
func invalidUTF8(src []byte) (int, bool) {
	if utf8.Valid(src) {
		return 0, false
	}
	for off := 0; off < len(src); {
		r, size := utf8.DecodeRune(src[off:])
		if r == utf8.RuneError && size <= 1 {
			return off, true
		}
		off += size
	}
	return 0, false
}
