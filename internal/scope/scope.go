// Package scope defines the closed vocabulary of highlight scopes.
//
// Every other part of treepaint addresses scopes by their index
// into [Names]: themes resolve styles per index,
// highlighters report indices,
// and the renderer looks up CSS classes by index.
// Changing this list changes all of those contracts at once.
package scope

// Names is the ordered list of recognized scope names.
// The index of a name in this list is its scope index.
//
// Do not modify.
var Names = []string{
	"attribute",
	"comment",
	"constant",
	"constant.builtin",
	"constructor",
	"escape",
	"function",
	"function.builtin",
	"function.method",
	"function.macro",
	"include",
	"keyword",
	"label",
	"namespace",
	"number",
	"operator",
	"property",
	"punctuation",
	"punctuation.bracket",
	"punctuation.delimiter",
	"repeat",
	"string",
	"type",
	"type.builtin",
	"variable",
	"variable.builtin",
	"variable.parameter",
}

var _indexes = func() map[string]int {
	m := make(map[string]int, len(Names))
	for i, name := range Names {
		if _, ok := m[name]; ok {
			panic("duplicate scope name: " + name)
		}
		m[name] = i
	}
	return m
}()

// Len reports the number of scopes.
func Len() int { return len(Names) }

// Index returns the index of the named scope.
// It reports false if the name is not a recognized scope.
func Index(name string) (int, bool) {
	i, ok := _indexes[name]
	return i, ok
}

// Name returns the name of the scope at index i.
// It panics if i is out of range.
func Name(i int) string { return Names[i] }

// Class returns the CSS class name for scope i
// under the given prefix.
// Dots in the scope name are kept as-is.
func Class(prefix string, i int) string {
	return prefix + "-" + Names[i]
}
