package highlight

import "fmt"

type (
	// Event is a single annotation in a highlight stream.
	Event interface{ event() }

	// EnterScope starts a region highlighted with a scope.
	// Scope is an index into the names passed to [Config.Configure].
	EnterScope struct {
		Scope int
	}

	// ExitScope ends the most recently entered scope.
	ExitScope struct{}

	// Text is the source in the byte range [Start, End).
	Text struct {
		Start, End int
	}
)

var (
	_ Event = EnterScope{}
	_ Event = ExitScope{}
	_ Event = Text{}
)

func (EnterScope) event() {}
func (ExitScope) event()  {}
func (Text) event()       {}

func (e EnterScope) String() string { return fmt.Sprintf("enter(%d)", e.Scope) }
func (ExitScope) String() string    { return "exit" }
func (e Text) String() string       { return fmt.Sprintf("text[%d:%d]", e.Start, e.End) }
