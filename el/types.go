package el

import "github.com/quill-ui/quill/pkg/vdom"

// Type aliases for the vdom primitives used by the DSL.
type Node = vdom.Node
type Kind = vdom.Kind
