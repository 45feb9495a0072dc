package highlight

import (
	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
)

// Capture names the scope that a token type is highlighted with.
type Capture struct {
	// Scope name, e.g. "string" or "function.method".
	Scope string

	// Within optionally names a scope that encloses Scope.
	// Adjacent tokens that share this enclosing scope
	// are highlighted inside a single region of it.
	// For example, string escapes sit inside the string.
	Within string
}

// Queries maps Chroma token types to the scopes they are captured as.
//
// Token types that aren't listed use the capture of their nearest parent
// (e.g. [chroma.LiteralStringDouble] falls back to [chroma.LiteralString]).
// Token types with no listed ancestor are left unhighlighted.
type Queries map[chroma.TokenType]Capture

// DefaultQueries is a query set that works for most Chroma lexers.
var DefaultQueries = Queries{
	chroma.Keyword:             {Scope: "keyword"},
	chroma.KeywordConstant:     {Scope: "constant.builtin"},
	chroma.KeywordNamespace:    {Scope: "include"},
	chroma.KeywordType:         {Scope: "type.builtin"},
	chroma.NameAttribute:       {Scope: "attribute"},
	chroma.NameBuiltin:         {Scope: "function.builtin"},
	chroma.NameBuiltinPseudo:   {Scope: "variable.builtin"},
	chroma.NameClass:           {Scope: "type"},
	chroma.NameConstant:        {Scope: "constant"},
	chroma.NameDecorator:       {Scope: "attribute"},
	chroma.NameException:       {Scope: "type"},
	chroma.NameFunction:        {Scope: "function"},
	chroma.NameFunctionMagic:   {Scope: "function.builtin"},
	chroma.NameLabel:           {Scope: "label"},
	chroma.NameNamespace:       {Scope: "namespace"},
	chroma.NameProperty:        {Scope: "property"},
	chroma.NameVariable:        {Scope: "variable"},
	chroma.NameVariableMagic:   {Scope: "variable.builtin"},
	chroma.LiteralString:       {Scope: "string"},
	chroma.LiteralStringEscape: {Scope: "escape", Within: "string"},
	chroma.LiteralStringChar:   {Scope: "constant"},
	chroma.LiteralNumber:       {Scope: "number"},
	chroma.Operator:            {Scope: "operator"},
	chroma.Punctuation:         {Scope: "punctuation"},
	chroma.Comment:             {Scope: "comment"},
	chroma.CommentPreproc:      {Scope: "keyword"},
	chroma.CommentPreprocFile:  {Scope: "string"},
}

// Config is a compiled highlighting configuration for one language.
//
// A Config must be configured with [Config.Configure]
// before it reports any scopes.
// It must not be configured concurrently with use.
type Config struct {
	// Name of the language.
	Name string

	lexer   Lexer
	queries Queries

	// Scope indexes for each token type with a capture,
	// outermost first.
	paths map[chroma.TokenType][]int
}

// NewConfig builds a highlighting configuration
// from a lexer and its query set.
func NewConfig(name string, lexer Lexer, queries Queries) (*Config, error) {
	if lexer == nil {
		return nil, errtrace.Errorf("language %q: no lexer", name)
	}
	if len(queries) == 0 {
		return nil, errtrace.Errorf("language %q: empty query set", name)
	}

	return &Config{
		Name:    name,
		lexer:   lexer,
		queries: queries,
	}, nil
}

// Configure specifies the recognized scope names.
// Scopes reported by [Highlight] are indexes into names.
// Captures whose scope isn't in names are dropped.
func (c *Config) Configure(names []string) {
	indexes := make(map[string]int, len(names))
	for i, name := range names {
		indexes[name] = i
	}

	paths := make(map[chroma.TokenType][]int, len(c.queries))
	for typ, capture := range c.queries {
		idx, ok := indexes[capture.Scope]
		if !ok {
			continue
		}

		var path []int
		if within, ok := indexes[capture.Within]; ok && capture.Within != "" {
			path = append(path, within)
		}
		paths[typ] = append(path, idx)
	}
	c.paths = paths
}

// path returns the scopes that enclose a token of the given type,
// outermost first.
func (c *Config) path(typ chroma.TokenType) []int {
	for {
		if p, ok := c.paths[typ]; ok {
			return p
		}
		if typ == 0 {
			return nil
		}
		typ = typ.Parent()
	}
}
