package rule

// Walk visits n and its descendants in pre-order, calling fn on each node.
// If fn returns false for a node, Walk does not descend into that node's
// children, but continues with its siblings.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Children returns the immediate child nodes of n, or nil for Ref and
// Empty, which have no children.
func Children(n Node) []Node {
	switch v := n.(type) {
	case Seq:
		return v.Children
	case Alt:
		return v.Children
	case More:
		return []Node{v.Child}
	case Repeat:
		return []Node{v.Child}
	case Opt:
		return []Node{v.Child}
	default:
		return nil
	}
}
