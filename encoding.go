package main

import (
	"braces.dev/errtrace"
	"golang.org/x/text/encoding/htmlindex"
)

// decodeSource transcodes src from the named encoding to UTF-8.
// Names are as defined by the WHATWG Encoding Standard,
// e.g. "latin1", "windows-1252", "shift_jis".
func decodeSource(src []byte, name string) ([]byte, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errtrace.Errorf("encoding %q: %w", name, err)
	}

	out, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, errtrace.Errorf("decode %v: %w", name, err)
	}
	return out, nil
}
