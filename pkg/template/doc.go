// Package template compiles vdom node trees into flattened, immutable
// templates and keeps them in a registry for fast repeated lookup.
//
// Compilation is a one-shot, consuming transform: every supplied root
// tree is flattened in pre-order into a single node table (indices
// shared across roots), attribute items fold into their parent
// element's entry, and the roots' positions are recorded in supply
// order. Dynamic slot indices pass through unrenumbered.
//
// The registry carries the one lock an owning runtime is expected to
// impose; templates themselves are immutable once registered.
package template
