// treepaint renders source code into HTML
// highlighted with the colors of a Helix editor theme.
//
// See 'treepaint -help' for usage.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"go.abhg.dev/treepaint/internal/errdefer"
	"go.abhg.dev/treepaint/internal/highlight"
	"go.abhg.dev/treepaint/internal/html"
	"go.abhg.dev/treepaint/internal/language"
	"go.abhg.dev/treepaint/internal/render"
	"go.abhg.dev/treepaint/internal/theme"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("treepaint: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Run(&err, closeDebug)
	debugLog := log.New(debugw, "", 0)

	registry := language.Default()
	for _, ea := range opts.Exts {
		if err := registry.Alias(ea.Ext, ea.Lang); err != nil {
			return errtrace.Errorf("-ext %v: %w", ea, err)
		}
	}

	lang, err := pickLanguage(registry, opts.Lang, opts.Source)
	if err != nil {
		return errtrace.Wrap(err)
	}
	debugLog.Printf("highlighting %v as %v", opts.Source, lang.Name)

	th, err := theme.Load(opts.Theme)
	if err != nil {
		return errtrace.Wrap(err)
	}

	src, err := cmd.readSource(opts.Source)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if opts.Encoding != "" {
		src, err = decodeSource(src, opts.Encoding)
		if err != nil {
			return errtrace.Wrap(err)
		}
	}

	renderer := render.New(th, render.WithLogger(debugLog))
	lines, err := renderer.RenderLines(lang, src)
	if err != nil {
		if errors.Is(err, highlight.ErrInvalidUTF8) && opts.Encoding == "" {
			return errtrace.Errorf("%w\nUse -encoding to specify the encoding of %v.", err, opts.Source)
		}
		return errtrace.Wrap(err)
	}

	if opts.CSSFile != "" {
		err := cmd.writeFile(opts.CSSFile, func(w io.Writer) error {
			_, err := io.WriteString(w, renderer.CSS())
			return errtrace.Wrap(err)
		})
		if err != nil {
			return errtrace.Wrap(err)
		}
	}

	title := opts.Title
	if title == "" {
		title = filepath.Base(opts.Source)
		if opts.Source == "-" {
			title = "stdin"
		}
	}

	page := html.Page{
		Title: title,
		CSS:   renderer.CSS(),
		Lines: lines,
	}
	pageRenderer := html.Renderer{Embedded: opts.Embed}
	return errtrace.Wrap(cmd.writeFile(opts.Output, func(w io.Writer) error {
		return errtrace.Wrap(pageRenderer.RenderPage(w, &page))
	}))
}

// pickLanguage selects the language for the source file.
// An explicitly requested language takes precedence over the file extension.
func pickLanguage(registry *language.Registry, name, source string) (*language.Language, error) {
	if name != "" {
		lang, ok := registry.Lookup(name)
		if !ok {
			return nil, errtrace.Errorf("unknown language %q: valid values are %q", name, registry.Names())
		}
		return lang, nil
	}

	if source == "-" {
		return nil, errtrace.New("-lang is required when reading from stdin")
	}

	lang, ok := registry.ForPath(source)
	if !ok {
		return nil, errtrace.Errorf("cannot determine language of %v: use -lang or -ext", source)
	}
	return lang, nil
}

func (cmd *mainCmd) readSource(path string) ([]byte, error) {
	if path == "-" {
		return errtrace.Wrap2(io.ReadAll(cmd.Stdin))
	}
	return errtrace.Wrap2(os.ReadFile(path))
}

// writeFile calls write with the file at path,
// or with stdout if path is empty or "-".
func (cmd *mainCmd) writeFile(path string, write func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return errtrace.Wrap(write(cmd.Stdout))
	}

	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(write(f))
}
