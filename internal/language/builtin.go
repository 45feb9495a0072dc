package language

import "go.abhg.dev/treepaint/internal/must"

// Builtin lists the languages treepaint supports out of the box.
//
// Every extension belongs to exactly one language.
var Builtin = []*Language{
	{
		Name:       "c",
		Extensions: []string{"c", "h"},
	},
	{
		Name:       "cpp",
		Lexer:      "c++",
		Extensions: []string{"cpp", "cc", "cxx", "hpp", "hh", "hxx"},
		Aliases:    []string{"c++"},
	},
	{
		Name:       "go",
		Extensions: []string{"go"},
		Aliases:    []string{"golang"},
	},
	{
		Name:       "javascript",
		Extensions: []string{"js", "mjs", "cjs"},
		Aliases:    []string{"js"},
	},
	{
		Name:       "python",
		Extensions: []string{"py", "pyi"},
		Aliases:    []string{"py"},
	},
	{
		Name:       "rust",
		Extensions: []string{"rs"},
		Aliases:    []string{"rs"},
	},
}

// Default returns a new registry holding the [Builtin] languages.
// The registry may be modified freely.
func Default() *Registry {
	r, err := NewRegistry(Builtin...)
	must.NotErrorf(err, "builtin languages are inconsistent")
	return r
}
