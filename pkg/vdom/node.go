package vdom

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement     Kind = iota // <div>, <button>, etc.
	KindText                    // Plain text node
	KindDynamicText             // Text filled from a dynamic slot
	KindDynamicNode             // Subtree filled from a dynamic slot
	KindStaticAttr              // Fixed name/value attribute
	KindDynamicAttr             // Attribute filled from a dynamic slot
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindDynamicText:
		return "DynamicText"
	case KindDynamicNode:
		return "DynamicNode"
	case KindStaticAttr:
		return "StaticAttr"
	case KindDynamicAttr:
		return "DynamicAttr"
	default:
		return "Unknown"
	}
}

// IsAttr reports whether the kind is an attribute item rather than a
// tree node.
func (k Kind) IsAttr() bool {
	return k == KindStaticAttr || k == KindDynamicAttr
}

// Node is one vertex of a quill source tree.
//
// Only the fields belonging to the node's Kind are meaningful; the
// accessor methods enforce that at the call site.
type Node struct {
	kind  Kind
	tag   string  // KindElement
	text  string  // KindText
	name  string  // KindStaticAttr
	value string  // KindStaticAttr
	slot  uint    // KindDynamicText, KindDynamicNode, KindDynamicAttr
	items []*Node // KindElement: attribute and child items, insertion order
}

// Text creates a plain text node.
func Text(content string) *Node {
	return &Node{kind: KindText, text: content}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// DynamicText creates a text node bound to the given dynamic slot.
func DynamicText(slot uint) *Node {
	return &Node{kind: KindDynamicText, slot: slot}
}

// DynamicNode creates a placeholder bound to the given dynamic slot.
func DynamicNode(slot uint) *Node {
	return &Node{kind: KindDynamicNode, slot: slot}
}

// StaticAttr creates a fixed attribute item.
func StaticAttr(name, value string) *Node {
	return &Node{kind: KindStaticAttr, name: name, value: value}
}

// DynamicAttr creates an attribute item bound to the given dynamic slot.
func DynamicAttr(slot uint) *Node {
	return &Node{kind: KindDynamicAttr, slot: slot}
}

// Element creates an element node with the given items appended in
// order. Items may mix attribute and child kinds.
func Element(tag string, items ...*Node) *Node {
	n := &Node{kind: KindElement, tag: tag}
	for _, item := range items {
		n.AddItem(item)
	}
	return n
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// AddItem transfers ownership of item into the element's item list,
// appending it after all existing items.
//
// Calling AddItem on a non-element node is a programming error and
// panics: silently ignoring the item would corrupt later compilation.
func (n *Node) AddItem(item *Node) {
	if n.kind != KindElement {
		panic(fmt.Sprintf("vdom: AddItem on %s node", n.kind))
	}
	if item == nil {
		return
	}
	n.items = append(n.items, item)
}

// Tag returns the element's tag name. Panics on non-element nodes.
func (n *Node) Tag() string {
	if n.kind != KindElement {
		panic(fmt.Sprintf("vdom: Tag on %s node", n.kind))
	}
	return n.tag
}

// Text returns the text content. Panics unless the node is KindText.
func (n *Node) Text() string {
	if n.kind != KindText {
		panic(fmt.Sprintf("vdom: Text on %s node", n.kind))
	}
	return n.text
}

// Attr returns the static attribute's name and value. Panics unless
// the node is KindStaticAttr.
func (n *Node) Attr() (name, value string) {
	if n.kind != KindStaticAttr {
		panic(fmt.Sprintf("vdom: Attr on %s node", n.kind))
	}
	return n.name, n.value
}

// Slot returns the dynamic slot index declared on the node. Panics
// unless the node is one of the dynamic kinds.
func (n *Node) Slot() uint {
	switch n.kind {
	case KindDynamicText, KindDynamicNode, KindDynamicAttr:
		return n.slot
	}
	panic(fmt.Sprintf("vdom: Slot on %s node", n.kind))
}

// Items returns the element's item list in insertion order. The
// returned slice is owned by the node and must not be mutated.
// Panics on non-element nodes.
func (n *Node) Items() []*Node {
	if n.kind != KindElement {
		panic(fmt.Sprintf("vdom: Items on %s node", n.kind))
	}
	return n.items
}

// ItemCount returns the total number of items on an element.
// Panics on non-element nodes.
func (n *Node) ItemCount() int {
	return len(n.Items())
}

// ChildCount returns the number of node-producing items on an element.
// Panics on non-element nodes.
func (n *Node) ChildCount() int {
	count := 0
	for _, item := range n.Items() {
		if !item.kind.IsAttr() {
			count++
		}
	}
	return count
}

// AttrCount returns the number of attribute items on an element.
// Panics on non-element nodes.
func (n *Node) AttrCount() int {
	count := 0
	for _, item := range n.Items() {
		if item.kind.IsAttr() {
			count++
		}
	}
	return count
}

// Release detaches the node's subtree so the handle cannot keep it
// reachable. A released element reads as empty; the node itself stays
// valid.
func (n *Node) Release() {
	if n == nil {
		return
	}
	for _, item := range n.items {
		item.Release()
	}
	n.items = nil
}
