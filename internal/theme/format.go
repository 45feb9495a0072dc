package theme

import (
	"os"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a theme document.
type Format int

const (
	// TOML is the syntax of Helix themes.
	TOML Format = iota

	// YAML expresses the same document structure in YAML.
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf guesses the format of a theme file from its extension.
// Files that aren't recognizably YAML are treated as TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// Resolve parses a Helix theme written in TOML.
//
// The returned error matches [ErrMalformedDocument] or [ErrInvalidShape]
// with errors.Is if the document can't be used,
// and is an [*UnresolvedColorError] if an entry
// references a color missing from the palette.
func Resolve(doc string) (*Theme, error) {
	return errtrace.Wrap2(ResolveFormat(TOML, doc))
}

// ResolveYAML parses a theme written in YAML.
// It otherwise behaves like [Resolve].
func ResolveYAML(doc string) (*Theme, error) {
	return errtrace.Wrap2(ResolveFormat(YAML, doc))
}

// ResolveFormat parses a theme in the given format.
func ResolveFormat(f Format, doc string) (*Theme, error) {
	var (
		tree any
		err  error
	)
	switch f {
	case YAML:
		err = yaml.Unmarshal([]byte(doc), &tree)
	default:
		_, err = toml.Decode(doc, &tree)
	}
	if err != nil {
		return nil, errtrace.Errorf("%w: %v: %w", ErrMalformedDocument, f, err)
	}

	return errtrace.Wrap2(resolveTree(tree))
}

// Load reads and resolves the theme file at path.
func Load(path string) (*Theme, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	t, err := ResolveFormat(FormatOf(path), string(bs))
	if err != nil {
		return nil, errtrace.Errorf("theme %v: %w", path, err)
	}
	return t, nil
}
