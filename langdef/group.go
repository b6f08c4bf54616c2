package langdef

import "github.com/xiaozs/parser/rule"

// group is a paren-delimited run of atoms. Atoms are one of: a leaf
// holding an operator (| + * ?) or an unresolved identifier, a rule.Ref
// for a resolved reference, or a *group for a parenthesized subsequence.
// The root group returned by buildGroups stands in for the grammar's
// implicit top-level alternation; it has no surrounding parens of its
// own and an unset open leaf.
type group struct {
	children []any
	open     leaf // position of the "(" that opened this group
}

// buildGroups walks a flat atom sequence (as produced by resolving a
// tokenized grammar string) and nests parenthesized runs into child
// groups.
func buildGroups(atoms []any) (*group, error) {
	root := &group{}
	stack := []*group{root}

	for _, a := range atoms {
		lf, isLeaf := a.(leaf)

		if isLeaf && lf.text == "(" {
			child := &group{open: lf}
			cur := stack[len(stack)-1]
			cur.children = append(cur.children, child)
			stack = append(stack, child)
			continue
		}

		if isLeaf && lf.text == ")" {
			if len(stack) == 1 {
				return nil, errUnbalancedParens(lf)
			}
			stack = stack[:len(stack)-1]
			continue
		}

		cur := stack[len(stack)-1]
		cur.children = append(cur.children, a)
	}

	if len(stack) != 1 {
		unclosed := stack[len(stack)-1]
		return nil, errUnbalancedParens(unclosed.open)
	}

	return root, nil
}

func isQuantifierOp(s string) bool {
	return s == "+" || s == "*" || s == "?"
}

// lowerGroup turns a group into a rule.Node, detecting top-level
// alternation (a "|" among g's own children, not a nested group's) and
// delegating to lowerSequence otherwise.
func lowerGroup(g *group) (rule.Node, error) {
	if len(g.children) == 0 {
		return rule.Empty{}, nil
	}

	hasPipe := false
	for _, c := range g.children {
		if lf, ok := c.(leaf); ok && lf.text == "|" {
			hasPipe = true
			break
		}
	}
	if !hasPipe {
		return lowerSequence(g.children)
	}

	segments := splitOnPipe(g.children)
	children := make([]rule.Node, len(segments))
	for i, seg := range segments {
		n, err := lowerSequence(seg)
		if err != nil {
			return nil, err
		}
		children[i] = n
	}
	return rule.Alt{Children: children}, nil
}

func splitOnPipe(children []any) [][]any {
	var segments [][]any
	var cur []any
	for _, c := range children {
		if lf, ok := c.(leaf); ok && lf.text == "|" {
			segments = append(segments, cur)
			cur = nil
			continue
		}
		cur = append(cur, c)
	}
	segments = append(segments, cur)
	return segments
}

// lowerSequence lowers a pipe-free run of atoms into a node: each atom
// becomes an operand, bound to the quantifier suffix (if any) that
// immediately follows it.
func lowerSequence(children []any) (rule.Node, error) {
	var nodes []rule.Node

	i := 0
	for i < len(children) {
		if lf, ok := children[i].(leaf); ok && isQuantifierOp(lf.text) {
			return nil, errDanglingOperator(lf, lf.text)
		}

		var node rule.Node
		switch v := children[i].(type) {
		case rule.Ref:
			node = v
		case *group:
			n, err := lowerGroup(v)
			if err != nil {
				return nil, err
			}
			node = n
		case leaf:
			return nil, errUnresolvedIdentifier(v, v.text)
		}
		i++

		if i < len(children) {
			if lf, ok := children[i].(leaf); ok && isQuantifierOp(lf.text) {
				switch lf.text {
				case "+":
					node = rule.More{Child: node}
				case "*":
					node = rule.Repeat{Child: node}
				case "?":
					node = rule.Opt{Child: node}
				}
				i++
			}
		}

		nodes = append(nodes, node)
	}

	if len(nodes) == 0 {
		return rule.Empty{}, nil
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return rule.Seq{Children: nodes}, nil
}
