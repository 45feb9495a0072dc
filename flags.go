package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/treepaint/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that may be used in place of flags.
const _envPrefix = "TREEPAINT"

// params holds all arguments for treepaint.
type params struct {
	version bool
	help    Help

	Config string
	Debug  flagvalue.FileSwitch

	Theme    string
	Lang     string
	Exts     []extAlias
	Encoding string

	Output  string
	CSSFile string
	Embed   bool
	Title   string

	Source string
}

// cliParser parses the command line arguments for treepaint.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("treepaint", flag.ContinueOnError)
	// Errors are reported by Parse.
	flag.SetOutput(io.Discard)
	flag.Usage = func() {}

	var p params

	// Input:
	flag.StringVar(&p.Theme, "theme", "", "")
	flag.StringVar(&p.Lang, "lang", "", "")
	flag.Var(flagvalue.ListOf(&p.Exts), "ext", "")
	flag.StringVar(&p.Encoding, "encoding", "", "")

	// Output:
	flag.StringVar(&p.Output, "out", "", "")
	flag.StringVar(&p.CSSFile, "css", "", "")
	flag.BoolVar(&p.Embed, "embed", false, "")
	flag.StringVar(&p.Title, "title", "", "")

	// Program-level:
	flag.StringVar(&p.Config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	)
	if err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		UsageHelp.Write(cmd.Stderr)
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "treepaint", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h theme"
		// instead of "-h=theme".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			if _, ok := _helpTopics[h]; ok {
				p.help = h
			}
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch len(args) {
	case 0:
		fmt.Fprintln(cmd.Stderr, "Please provide a source file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	case 1:
		p.Source = args[0]
	default:
		fmt.Fprintf(cmd.Stderr, "Too many arguments: %q\n", args[1:])
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if p.Theme == "" {
		fmt.Fprintln(cmd.Stderr, "Please provide a theme with -theme.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// extAlias is the value of the -ext flag.
// It maps a file extension to a language.
type extAlias struct {
	Ext  string
	Lang string
}

var _ flag.Getter = (*extAlias)(nil)

func (ea *extAlias) Get() any { return ea }

func (ea extAlias) String() string {
	return fmt.Sprintf("%s=%s", ea.Ext, ea.Lang)
}

func (ea *extAlias) Set(s string) error {
	ext, lang, ok := strings.Cut(s, "=")
	if !ok {
		return errtrace.New("expected form 'ext=language'")
	}

	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	lang = strings.TrimSpace(lang)
	if ext == "" || lang == "" {
		return errtrace.Errorf("expected form 'ext=language', got %q", s)
	}

	ea.Ext = ext
	ea.Lang = lang
	return nil
}
