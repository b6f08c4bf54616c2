// Package rule defines the rule tree: the tagged-variant representation of
// a grammar rule produced by lowering a parsed BNF group tree.
package rule

// Kind identifies which variant of Node a value is.
type Kind int

const (
	KindRef Kind = iota
	KindSeq
	KindAlt
	KindMore
	KindRepeat
	KindOpt
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindRef:
		return "Ref"
	case KindSeq:
		return "Seq"
	case KindAlt:
		return "Alt"
	case KindMore:
		return "More"
	case KindRepeat:
		return "Repeat"
	case KindOpt:
		return "Opt"
	case KindEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Node is a rule tree node. Concrete types are Ref, Seq, Alt, More,
// Repeat, Opt, and Empty; callers type-switch on the concrete type or
// branch on Kind().
type Node interface {
	Kind() Kind
}

// Ref is a reference to a named grammar symbol, identified by a
// constructor/handle supplied by the caller of the grammar compiler. Name
// is the identifier text as written in the grammar source, kept so the
// rule tree can be pretty-printed back to canonical BNF.
type Ref struct {
	Name   string
	Symbol any
}

func (Ref) Kind() Kind { return KindRef }

// Seq is an ordered sequence of nodes, all of which must match in order.
// Children is non-empty after lowering.
type Seq struct {
	Children []Node
}

func (Seq) Kind() Kind { return KindSeq }

// Alt is a set of alternative nodes, exactly one of which must match.
// Children is non-empty after lowering.
type Alt struct {
	Children []Node
}

func (Alt) Kind() Kind { return KindAlt }

// More wraps a node that must match one or more times.
type More struct {
	Child Node
}

func (More) Kind() Kind { return KindMore }

// Repeat wraps a node that may match zero or more times.
type Repeat struct {
	Child Node
}

func (Repeat) Kind() Kind { return KindRepeat }

// Opt wraps a node that may match zero or one times.
type Opt struct {
	Child Node
}

func (Opt) Kind() Kind { return KindOpt }

// Empty matches nothing.
type Empty struct{}

func (Empty) Kind() Kind { return KindEmpty }
