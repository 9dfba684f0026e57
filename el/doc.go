// Package el provides the UI DSL for quill.
//
// It exposes HTML element constructors, attribute helpers, and
// dynamic-slot helpers over github.com/quill-ui/quill/pkg/vdom.
//
// Typical usage:
//
//	import . "github.com/quill-ui/quill/el"
//
//	tree := Div(Class("card"),
//	    H1(DynText(0)),
//	    Button(Attr("type", "submit"), Text("Save")),
//	)
//
// Trees built with this package compile identically to trees built
// directly with the vdom constructors.
package el
