package rule

import "strings"

// Print renders n back to canonical BNF: single spaces between tokens,
// parens only where grouping changes meaning. For grammars already
// written in canonical form, Print of the tree that langdef.Rule compiles
// from src reproduces src.
func Print(n Node) string {
	if n.Kind() == KindAlt {
		alt := n.(Alt)
		parts := make([]string, len(alt.Children))
		for i, c := range alt.Children {
			parts[i] = printSequence(c)
		}
		return strings.Join(parts, " | ")
	}

	return printSequence(n)
}

func printSequence(n Node) string {
	if n.Kind() == KindEmpty {
		return ""
	}

	if n.Kind() == KindSeq {
		seq := n.(Seq)
		parts := make([]string, len(seq.Children))
		for i, c := range seq.Children {
			parts[i] = printAtomInSeq(c)
		}
		return strings.Join(parts, " ")
	}

	return printAtomInSeq(n)
}

func printAtomInSeq(n Node) string {
	switch v := n.(type) {
	case Ref:
		return v.Name
	case Empty:
		return "()"
	case More:
		return printGroupChild(v.Child) + "+"
	case Repeat:
		return printGroupChild(v.Child) + "*"
	case Opt:
		return printGroupChild(v.Child) + "?"
	case Seq:
		return "(" + printSequence(v) + ")"
	case Alt:
		return "(" + Print(v) + ")"
	default:
		return ""
	}
}

func printGroupChild(n Node) string {
	if ref, ok := n.(Ref); ok {
		return ref.Name
	}
	return "(" + Print(n) + ")"
}
