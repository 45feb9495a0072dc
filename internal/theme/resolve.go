package theme

import (
	"braces.dev/errtrace"
	"go.abhg.dev/treepaint/internal/scope"
)

// Special top-level keys in a theme document.
const (
	_paletteKey    = "palette"
	_textKey       = "ui.text"
	_backgroundKey = "ui.background"
)

// resolveTree builds a Theme from a decoded document.
// tree is the output of a generic decoder:
// tables are maps, arrays are []any, and strings are strings.
func resolveTree(tree any) (*Theme, error) {
	root, ok := asTable(tree)
	if !ok {
		return nil, errtrace.Wrap(ErrInvalidShape)
	}

	rawPalette, ok := root[_paletteKey]
	if !ok {
		return nil, errtrace.Errorf("%w: no palette", ErrMalformedDocument)
	}
	paletteTable, ok := asTable(rawPalette)
	if !ok {
		return nil, errtrace.Errorf("%w: palette is not a table", ErrInvalidShape)
	}

	r := resolver{
		root:    root,
		palette: make(map[string]string, len(paletteTable)),
	}
	for name, v := range paletteTable {
		// Non-string palette entries can't be referenced.
		if color, ok := v.(string); ok {
			r.palette[name] = color
		}
	}

	styles := make(map[int]Style)
	for i, name := range scope.Names {
		style, ok, err := r.entry(name)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if ok {
			styles[i] = style
		}
	}

	foreground := Style{Color: DefaultForeground}
	if style, ok, err := r.entry(_textKey); err != nil {
		return nil, errtrace.Wrap(err)
	} else if ok {
		foreground = Style{Color: style.Color}
	}

	background, err := r.background()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &Theme{
		styles:     styles,
		Foreground: foreground,
		Background: background,
	}, nil
}

type resolver struct {
	root    map[string]any
	palette map[string]string
}

// entry resolves the top-level entry with the given name.
// It reports false if the document doesn't have a usable entry.
func (r *resolver) entry(name string) (Style, bool, error) {
	v, ok := r.root[name]
	if !ok {
		return Style{}, false, nil
	}

	if ref, ok := v.(string); ok {
		color, ok := r.palette[ref]
		if !ok {
			return Style{}, false, errtrace.Wrap(&UnresolvedColorError{
				Scope: name,
				Ref:   ref,
			})
		}
		return Style{Color: color}, true, nil
	}

	table, ok := asTable(v)
	if !ok {
		// Numbers, booleans, arrays, etc.
		// say nothing about the scope.
		return Style{}, false, nil
	}

	color, err := r.color(name, table, "fg")
	if err != nil {
		return Style{}, false, errtrace.Wrap(err)
	}

	style := Style{Color: color}
	modifiers, _ := table["modifiers"].([]any)
	for _, m := range modifiers {
		switch m {
		case "bold":
			style.Bold = true
		case "italic":
			style.Italic = true
		}
	}
	return style, true, nil
}

func (r *resolver) background() (Style, error) {
	table, ok := asTable(r.root[_backgroundKey])
	if !ok {
		return Style{Color: DefaultBackground}, nil
	}
	if _, ok := table["bg"]; !ok {
		return Style{Color: DefaultBackground}, nil
	}

	color, err := r.color(_backgroundKey, table, "bg")
	if err != nil {
		return Style{}, errtrace.Wrap(err)
	}
	return Style{Color: color}, nil
}

// color resolves table[field] as a palette reference.
func (r *resolver) color(name string, table map[string]any, field string) (string, error) {
	ref, _ := table[field].(string)
	color, ok := r.palette[ref]
	if !ok || ref == "" {
		return "", errtrace.Wrap(&UnresolvedColorError{
			Scope: name,
			Field: field,
			Ref:   ref,
		})
	}
	return color, nil
}

// asTable reports whether v is a table with string keys.
func asTable(v any) (map[string]any, bool) {
	switch v := v.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		// Some YAML documents decode into this.
		m := make(map[string]any, len(v))
		for k, item := range v {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			m[key] = item
		}
		return m, true
	default:
		return nil, false
	}
}
