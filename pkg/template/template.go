package template

import "github.com/quill-ui/quill/pkg/vdom"

// ID identifies a registered template. The zero ID is never assigned.
type ID uint64

// Attr is a static attribute name/value pair on a compiled element.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node is one row of a template's flattened node table.
//
// Only the fields belonging to the node's Kind are populated.
// Attribute items from the source tree do not appear as rows; they
// fold into their parent element's StaticAttrs and DynamicAttrSlots
// in source order.
type Node struct {
	Kind vdom.Kind `json:"kind"`

	// Tag is the element tag name (KindElement).
	Tag string `json:"tag,omitempty"`

	// Text is the literal content (KindText).
	Text string `json:"text,omitempty"`

	// Slot is the dynamic slot index declared on the source node
	// (KindDynamicText, KindDynamicNode).
	Slot uint `json:"slot,omitempty"`

	// StaticAttrs are the element's fixed attributes in source order.
	StaticAttrs []Attr `json:"staticAttrs,omitempty"`

	// DynamicAttrSlots are the slot indices of the element's dynamic
	// attributes in source order.
	DynamicAttrSlots []uint `json:"dynamicAttrSlots,omitempty"`

	// Children are node-table indices of the element's child nodes in
	// source order.
	Children []int `json:"children,omitempty"`
}

// Template is the compiled, read-only output of a flatten.
type Template struct {
	name  string
	nodes []Node
	roots []int
}

// Name returns the name the template was registered under.
func (t *Template) Name() string {
	return t.name
}

// NodeCount returns the number of rows in the node table. It equals
// the CountNodes total of the source trees.
func (t *Template) NodeCount() int {
	return len(t.nodes)
}

// RootCount returns the number of roots the template was compiled from.
func (t *Template) RootCount() int {
	return len(t.roots)
}

// Node returns the node-table row at index i. The row's slices are
// owned by the template and must not be mutated.
func (t *Template) Node(i int) Node {
	return t.nodes[i]
}

// Roots returns the node-table indices of the template's roots in the
// order they were supplied to Compile.
func (t *Template) Roots() []int {
	out := make([]int, len(t.roots))
	copy(out, t.roots)
	return out
}
