// Package vdom provides the in-memory node tree that quill templates
// are compiled from.
//
// A Node is a closed tagged variant over six kinds: plain text, a
// dynamic-text slot, a dynamic-node slot, a static attribute, a
// dynamic-attribute slot, and an element with an ordered item list.
// Trees are built bottom-up with the constructors in this package (or
// the el DSL) and handed to pkg/template for flattening.
//
// Nodes are exclusively owned, tree-shaped, and not safe for
// concurrent mutation.
package vdom
