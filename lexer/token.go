package lexer

import "github.com/xiaozs/parser/position"

// Token is a successfully matched terminal or a coalesced run of
// unrecognized input, spanning [Start, End) in the source.
type Token struct {
	content    string
	start, end position.Position
}

// NewToken builds a Token. Exported for callers assembling tokens outside
// the lexer engine (e.g. tests).
func NewToken(content string, start, end position.Position) Token {
	return Token{content: content, start: start, end: end}
}

func (t Token) Content() string          { return t.content }
func (t Token) Start() position.Position { return t.start }
func (t Token) End() position.Position   { return t.end }
