// Package language describes the languages treepaint can highlight.
//
// Languages are plain data collected in a [Registry].
// Each [Language] names the Chroma lexer that tokenises it,
// the file extensions it claims,
// and the query set that maps its tokens to highlight scopes.
package language

import (
	"path/filepath"
	"sort"
	"strings"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2/lexers"
	"go.abhg.dev/treepaint/internal/highlight"
	"go.abhg.dev/treepaint/internal/scope"
)

// Language describes a single language.
type Language struct {
	// Name identifies the language, e.g. "rust".
	Name string

	// Lexer is the name of the Chroma lexer for this language.
	// Defaults to Name.
	Lexer string

	// Extensions claimed by this language, without the leading '.'.
	Extensions []string

	// Aliases are alternative names for the language.
	Aliases []string

	// Queries maps tokens to scopes.
	// Defaults to [highlight.DefaultQueries].
	Queries highlight.Queries
}

// Load compiles the highlighting configuration for this language,
// configured for the scopes in [scope.Names].
//
// Compiling a configuration isn't free.
// Callers should hold onto the result.
func (l *Language) Load() (*highlight.Config, error) {
	name := l.Lexer
	if name == "" {
		name = l.Name
	}

	lexer := lexers.Get(name)
	if lexer == nil {
		return nil, errtrace.Errorf("language %q: unknown lexer %q", l.Name, name)
	}

	queries := l.Queries
	if queries == nil {
		queries = highlight.DefaultQueries
	}

	cfg, err := highlight.NewConfig(l.Name, highlight.ChromaLexer(lexer), queries)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	cfg.Configure(scope.Names)
	return cfg, nil
}

// Registry is a collection of languages
// addressable by name, alias, or file extension.
//
// Registries are not safe for concurrent modification.
// Build one up front and treat it as read-only afterwards.
type Registry struct {
	byName map[string]*Language
	byExt  map[string]*Language
}

// NewRegistry builds a registry from the given languages.
// It fails if two languages share a name, alias, or extension.
func NewRegistry(langs ...*Language) (*Registry, error) {
	r := Registry{
		byName: make(map[string]*Language),
		byExt:  make(map[string]*Language),
	}
	for _, l := range langs {
		if err := r.Register(l); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return &r, nil
}

// Register adds a language to the registry.
func (r *Registry) Register(l *Language) error {
	if l.Name == "" {
		return errtrace.New("language name must not be empty")
	}

	names := append([]string{l.Name}, l.Aliases...)
	for _, name := range names {
		if other, ok := r.byName[normalize(name)]; ok {
			return errtrace.Errorf("language %q: name %q is already used by %q", l.Name, name, other.Name)
		}
	}
	for _, ext := range l.Extensions {
		if other, ok := r.byExt[normalizeExt(ext)]; ok {
			return errtrace.Errorf("language %q: extension %q is already claimed by %q", l.Name, ext, other.Name)
		}
	}

	for _, name := range names {
		r.byName[normalize(name)] = l
	}
	for _, ext := range l.Extensions {
		r.byExt[normalizeExt(ext)] = l
	}
	return nil
}

// Alias maps a file extension to an existing language,
// replacing any previous mapping for that extension.
func (r *Registry) Alias(ext, name string) error {
	l, ok := r.Lookup(name)
	if !ok {
		return errtrace.Errorf("unknown language %q", name)
	}
	r.byExt[normalizeExt(ext)] = l
	return nil
}

// Lookup finds a language by name or alias.
func (r *Registry) Lookup(name string) (*Language, bool) {
	l, ok := r.byName[normalize(name)]
	return l, ok
}

// ForPath finds the language for a file based on its extension.
func (r *Registry) ForPath(path string) (*Language, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, false
	}
	l, ok := r.byExt[normalizeExt(ext)]
	return l, ok
}

// Names returns the names of all registered languages, sorted.
func (r *Registry) Names() []string {
	var names []string
	for key, l := range r.byName {
		if key == normalize(l.Name) {
			names = append(names, l.Name)
		}
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeExt(ext string) string {
	return normalize(strings.TrimPrefix(ext, "."))
}
