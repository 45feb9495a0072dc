package highlight

import (
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
)

// tokenSpan is a token placed at its byte offsets in the source.
type tokenSpan struct {
	Type       chroma.TokenType
	Start, End int
}

// indexTokens places tokens at their byte offsets in src.
// The tokens must spell out src exactly, in order,
// except that the last token may carry newlines past the end of src:
// some lexers add a trailing newline to their input.
func indexTokens(src []byte, tokens []chroma.Token) ([]tokenSpan, error) {
	spans := make([]tokenSpan, 0, len(tokens))

	var off int
	for _, t := range tokens {
		value := t.Value
		if rest := len(src) - off; len(value) > rest {
			if strings.Trim(value[rest:], "\n") != "" {
				return nil, errtrace.Errorf("token %q at offset %d runs past the end of the source", t.Value, off)
			}
			value = value[:rest]
		}

		if string(src[off:off+len(value)]) != value {
			return nil, errtrace.Errorf("token %q does not match source at offset %d", t.Value, off)
		}
		if len(value) == 0 {
			continue
		}

		spans = append(spans, tokenSpan{
			Type:  t.Type,
			Start: off,
			End:   off + len(value),
		})
		off += len(value)
	}

	if off != len(src) {
		return nil, errtrace.Errorf("tokens cover %d of %d bytes", off, len(src))
	}
	return spans, nil
}
