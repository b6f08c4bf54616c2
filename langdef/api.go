// Package langdef compiles BNF-like grammar strings into rule.Node trees:
// tokenize, resolve identifiers against caller-supplied symbols, nest
// parenthesized groups, then lower groups into the rule tree.
package langdef

import "github.com/xiaozs/parser/rule"

// Rule compiles a single grammar string against a name-to-symbol map:
// every identifier token matching a key of refs becomes a rule.Ref
// carrying that symbol; any identifier left unresolved is a
// KindGrammarStructural error.
func Rule(grammar string, refs map[string]any) (rule.Node, error) {
	atoms := resolveNames(tokenize(grammar), refs)
	return compile(atoms)
}

// RuleTemplate compiles an interleaved sequence of string fragments and
// already-resolved references (built with RefTo) produced by a
// grammar-template style call site. Fragments are tokenized in place;
// references are spliced in at their position.
func RuleTemplate(parts ...any) (rule.Node, error) {
	atoms, err := resolveTemplate(parts)
	if err != nil {
		return nil, err
	}
	return compile(atoms)
}

// RefTo builds a resolved reference for use as a RuleTemplate part.
func RefTo(name string, symbol any) rule.Ref {
	return rule.Ref{Name: name, Symbol: symbol}
}

func compile(atoms []any) (rule.Node, error) {
	g, err := buildGroups(atoms)
	if err != nil {
		return nil, err
	}
	return lowerGroup(g)
}
