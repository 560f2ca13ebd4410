package ast

// Node is implemented by every member of the two closed sum types, Block
// and Inline. Kinship is expressed by where a variant is permitted to
// appear (see the table in spec §3), not by a type hierarchy: there is no
// separate Block or Inline Go type, only the Kind tag.
//
// Nodes are conceptually immutable once built. Transformers never mutate
// a Node in place; they build a new tree via the constructors in this
// package and the sibling block/inline files.
type Node interface {
	// Kind returns the tagged variant this node represents.
	Kind() Kind

	// Children returns this node's ordered children, or nil for leaves.
	// The returned slice must not be mutated by the caller.
	Children() []Node

	// Equal performs deep structural comparison against another node.
	Equal(other Node) bool
}

// base is embedded by every node type and carries the children common to
// most (but not all) variants. Leaf node types (Text, Code, mentions,
// Emoji, DateTimestamp, HorizontalRule) do not embed base; they report
// Children() == nil directly.
type base struct {
	kind     Kind
	children []Node
}

// Kind returns the tagged variant this node represents.
func (b *base) Kind() Kind { return b.kind }

// Children returns an immutable view of the node's children.
func (b *base) Children() []Node {
	if b.children == nil {
		return nil
	}
	out := make([]Node, len(b.children))
	copy(out, b.children)
	return out
}

func cloneChildren(children []Node) []Node {
	if children == nil {
		return nil
	}
	out := make([]Node, len(children))
	copy(out, children)
	return out
}

// equalChildren compares two child slices structurally, in order.
func equalChildren(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !nodeEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func nodeEqual(a, b Node) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Equal(b)
}
