package highlight

import (
	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
)

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	Lex(src []byte) ([]chroma.Token, error)
}

// ChromaLexer builds a [Lexer] from a Chroma lexer.
// Adjacent tokens of the same type are merged.
func ChromaLexer(l chroma.Lexer) Lexer {
	return &chromaLexer{l: chroma.Coalesce(l)}
}

type chromaLexer struct{ l chroma.Lexer }

// Lex lexically analyzes the given source code using Chroma.
//
// Line endings are left alone
// so that token boundaries line up with the source.
func (cl *chromaLexer) Lex(src []byte) ([]chroma.Token, error) {
	return errtrace.Wrap2(chroma.Tokenise(cl.l, &chroma.TokeniseOptions{
		State: "root",
	}, string(src)))
}
