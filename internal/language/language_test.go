package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/treepaint/internal/highlight"
	"go.abhg.dev/treepaint/internal/scope"
)

func TestDefault_forPath(t *testing.T) {
	t.Parallel()

	r := Default()
	tests := []struct {
		path string
		want string // empty if no match
	}{
		{"main.c", "c"},
		{"foo.h", "c"},
		{"foo.cpp", "cpp"},
		{"foo.CC", "cpp"},
		{"foo.cxx", "cpp"},
		{"src/lib.rs", "rust"},
		{"index.js", "javascript"},
		{"main.go", "go"},
		{"setup.py", "python"},
		{"file.bin", ""},
		{"Makefile", ""},
	}

	for _, tt := range tests {
		l, ok := r.ForPath(tt.path)
		if tt.want == "" {
			assert.False(t, ok, "path %q", tt.path)
			continue
		}
		if assert.True(t, ok, "path %q", tt.path) {
			assert.Equal(t, tt.want, l.Name, "path %q", tt.path)
		}
	}
}

func TestBuiltin_uniqueExtensions(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for _, l := range Builtin {
		for _, ext := range l.Extensions {
			other, ok := seen[ext]
			assert.False(t, ok, "extension %q claimed by %q and %q", ext, other, l.Name)
			seen[ext] = l.Name
		}
	}
}

func TestRegistry_lookup(t *testing.T) {
	t.Parallel()

	r := Default()

	l, ok := r.Lookup("C++")
	require.True(t, ok)
	assert.Equal(t, "cpp", l.Name)

	l, ok = r.Lookup(" golang ")
	require.True(t, ok)
	assert.Equal(t, "go", l.Name)

	_, ok = r.Lookup("cobol")
	assert.False(t, ok)

	assert.Equal(t,
		[]string{"c", "cpp", "go", "javascript", "python", "rust"},
		r.Names())
}

func TestRegistry_Register_conflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		give    *Language
		wantErr string
	}{
		{
			desc:    "empty name",
			give:    &Language{},
			wantErr: "must not be empty",
		},
		{
			desc:    "name",
			give:    &Language{Name: "rust"},
			wantErr: `name "rust" is already used by "rust"`,
		},
		{
			desc:    "alias",
			give:    &Language{Name: "typescript", Aliases: []string{"JS"}},
			wantErr: `name "JS" is already used by "javascript"`,
		},
		{
			desc:    "extension",
			give:    &Language{Name: "objc", Extensions: []string{".h"}},
			wantErr: `extension ".h" is already claimed by "c"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			r := Default()
			assert.ErrorContains(t, r.Register(tt.give), tt.wantErr)
		})
	}
}

func TestRegistry_Alias(t *testing.T) {
	t.Parallel()

	r := Default()
	require.NoError(t, r.Alias(".h", "cpp"))

	l, ok := r.ForPath("foo.h")
	require.True(t, ok)
	assert.Equal(t, "cpp", l.Name)

	l, ok = r.ForPath("foo.c")
	require.True(t, ok)
	assert.Equal(t, "c", l.Name, "other extensions are unaffected")

	assert.ErrorContains(t, r.Alias("x", "cobol"), `unknown language "cobol"`)
}

func TestLanguage_Load(t *testing.T) {
	t.Parallel()

	for _, l := range Builtin {
		t.Run(l.Name, func(t *testing.T) {
			t.Parallel()

			cfg, err := l.Load()
			require.NoError(t, err)
			assert.Equal(t, l.Name, cfg.Name)
		})
	}
}

func TestLanguage_Load_keyword(t *testing.T) {
	t.Parallel()

	l, ok := Default().Lookup("rust")
	require.True(t, ok)

	cfg, err := l.Load()
	require.NoError(t, err)

	keyword, ok := scope.Index("keyword")
	require.True(t, ok)

	src := []byte("fn main() {}\n")
	var sawKeyword bool
	for e, err := range highlight.Highlight(cfg, src) {
		require.NoError(t, err)
		if e == (highlight.EnterScope{Scope: keyword}) {
			sawKeyword = true
		}
	}
	assert.True(t, sawKeyword, "expected a keyword in %q", src)
}

func TestLanguage_Load_unknownLexer(t *testing.T) {
	t.Parallel()

	l := &Language{Name: "nope", Lexer: "definitely-not-a-lexer"}
	_, err := l.Load()
	assert.ErrorContains(t, err, `unknown lexer "definitely-not-a-lexer"`)
}
