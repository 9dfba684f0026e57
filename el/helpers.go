package el

import "github.com/quill-ui/quill/pkg/vdom"

// Text creates a text node.
func Text(content string) *Node {
	return vdom.Text(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return vdom.Textf(format, args...)
}

// DynText creates a text node bound to the given dynamic slot.
func DynText(slot uint) *Node {
	return vdom.DynamicText(slot)
}

// DynNode creates a placeholder bound to the given dynamic slot.
func DynNode(slot uint) *Node {
	return vdom.DynamicNode(slot)
}

// El creates an element with an arbitrary tag. Arguments follow the
// same rules as the named constructors: nil is skipped, strings become
// text nodes, nodes and node slices are appended in order.
func El(tag string, args ...any) *Node {
	return createElement(tag, args)
}

// If returns the node if condition is true, nil otherwise. A nil node
// is skipped by the element constructors.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation. The function is only
// called if condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Map builds one node per input item and returns them as a slice
// suitable for passing to an element constructor.
func Map[T any](items []T, fn func(T) *Node) []*Node {
	out := make([]*Node, 0, len(items))
	for _, item := range items {
		if n := fn(item); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// createElement creates a new element node with the given tag and
// arguments. Arguments can be: nil, *Node, []*Node, string.
func createElement(tag string, args []any) *Node {
	node := vdom.Element(tag)

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional items)
			continue
		case *Node:
			if v != nil {
				node.AddItem(v)
			}
		case []*Node:
			for _, item := range v {
				if item != nil {
					node.AddItem(item)
				}
			}
		case string:
			node.AddItem(vdom.Text(v))
		default:
			panic("el: unsupported argument type in element constructor")
		}
	}

	return node
}
