package langdef

import "github.com/xiaozs/parser/rule"

// leaf is an unresolved grammar atom: an operator or an identifier that
// did not resolve to a symbol, carrying the source position it was
// tokenized at so a later structural error can point at it.
type leaf struct {
	text      string
	line, col int
}

func (l leaf) SourceName() string { return "grammar" }
func (l leaf) Line() int          { return l.line }
func (l leaf) Col() int           { return l.col }

// resolveNames replaces every token in toks that is a key of refs with a
// resolved rule.Ref carrying that token's source text and the caller's
// constructor/handle. Unmatched identifiers and all operator tokens pass
// through as leaf atoms, to be diagnosed (or consumed as operators)
// during lowering.
func resolveNames(toks []Token, refs map[string]any) []any {
	atoms := make([]any, len(toks))
	for i, tok := range toks {
		if !tok.IsOp {
			if symbol, ok := refs[tok.Text]; ok {
				atoms[i] = rule.Ref{Name: tok.Text, Symbol: symbol}
				continue
			}
		}
		atoms[i] = leaf{text: tok.Text, line: tok.Line, col: tok.Col}
	}
	return atoms
}

// resolveTemplate builds an atom sequence from an interleaved
// string-fragment / resolved-reference sequence, as produced by a
// grammar-template style API: each string part is tokenized in place,
// each rule.Ref part is inserted directly at its position.
func resolveTemplate(parts []any) ([]any, error) {
	var atoms []any
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			for _, tok := range tokenize(v) {
				atoms = append(atoms, leaf{text: tok.Text, line: tok.Line, col: tok.Col})
			}
		case rule.Ref:
			atoms = append(atoms, v)
		default:
			return nil, errInvalidTemplatePart()
		}
	}
	return atoms, nil
}
