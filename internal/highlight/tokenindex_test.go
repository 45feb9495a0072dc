package highlight

import (
	"testing"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc   string
		src    string
		tokens []chroma.Token
		want   []tokenSpan
	}{
		{
			desc: "exact",
			src:  "func foo",
			tokens: []chroma.Token{
				{Type: chroma.KeywordDeclaration, Value: "func"},
				{Type: chroma.Text, Value: " "},
				{Type: chroma.NameFunction, Value: "foo"},
			},
			want: []tokenSpan{
				{Type: chroma.KeywordDeclaration, Start: 0, End: 4},
				{Type: chroma.Text, Start: 4, End: 5},
				{Type: chroma.NameFunction, Start: 5, End: 8},
			},
		},
		{
			desc: "added newline",
			src:  "x",
			tokens: []chroma.Token{
				{Type: chroma.Name, Value: "x\n"},
			},
			want: []tokenSpan{
				{Type: chroma.Name, Start: 0, End: 1},
			},
		},
		{
			desc: "empty tokens",
			src:  "ab",
			tokens: []chroma.Token{
				{Type: chroma.Name, Value: "a"},
				{Type: chroma.Text, Value: ""},
				{Type: chroma.Name, Value: "b"},
				{Type: chroma.Text, Value: "\n"},
			},
			want: []tokenSpan{
				{Type: chroma.Name, Start: 0, End: 1},
				{Type: chroma.Name, Start: 1, End: 2},
			},
		},
		{
			desc: "empty source",
			want: []tokenSpan{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := indexTokens([]byte(tt.src), tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexTokens_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		src     string
		tokens  []chroma.Token
		wantErr string
	}{
		{
			desc:    "mismatch",
			src:     "a\r\nb",
			tokens:  []chroma.Token{{Value: "a"}, {Value: "\nb"}},
			wantErr: `token "\nb" does not match source at offset 1`,
		},
		{
			desc:    "past end",
			src:     "a",
			tokens:  []chroma.Token{{Value: "ab"}},
			wantErr: "runs past the end",
		},
		{
			desc:    "short",
			src:     "abc",
			tokens:  []chroma.Token{{Value: "ab"}},
			wantErr: "tokens cover 2 of 3 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := indexTokens([]byte(tt.src), tt.tokens)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
