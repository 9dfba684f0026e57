package template

import (
	"fmt"

	"github.com/quill-ui/quill/internal/errors"
	"github.com/quill-ui/quill/pkg/vdom"
)

// compiler accumulates the flattened node table for one Compile call.
// The index counter is the table length itself, shared across roots.
type compiler struct {
	nodes []Node
}

// flatten runs the pre-order flatten over all roots and returns the
// finished template.
func flatten(name string, roots []*vdom.Node) (*Template, error) {
	c := &compiler{}
	rootIdx := make([]int, 0, len(roots))
	for _, root := range roots {
		if root.Kind().IsAttr() {
			return nil, errors.New("Q021").
				WithDetail("root of kind " + root.Kind().String()).
				WithSuggestion("Wrap attributes in an Element before compiling")
		}
		rootIdx = append(rootIdx, c.flattenNode(root))
	}
	return &Template{name: name, nodes: c.nodes, roots: rootIdx}, nil
}

// flattenNode assigns the next sequential table index to n, records
// its fields, and recurses into an element's items in source order.
// Attribute items fold into the element's own row.
func (c *compiler) flattenNode(n *vdom.Node) int {
	idx := len(c.nodes)
	c.nodes = append(c.nodes, Node{Kind: n.Kind()})

	switch n.Kind() {
	case vdom.KindText:
		c.nodes[idx].Text = n.Text()

	case vdom.KindDynamicText, vdom.KindDynamicNode:
		c.nodes[idx].Slot = n.Slot()

	case vdom.KindElement:
		c.nodes[idx].Tag = n.Tag()
		for _, item := range n.Items() {
			switch item.Kind() {
			case vdom.KindStaticAttr:
				name, value := item.Attr()
				c.nodes[idx].StaticAttrs = append(c.nodes[idx].StaticAttrs, Attr{Name: name, Value: value})
			case vdom.KindDynamicAttr:
				c.nodes[idx].DynamicAttrSlots = append(c.nodes[idx].DynamicAttrSlots, item.Slot())
			default:
				child := c.flattenNode(item)
				c.nodes[idx].Children = append(c.nodes[idx].Children, child)
			}
		}
	}

	return idx
}

// validateSlots checks that the dynamic slot indices declared across
// all roots are dense. Node-producing slots (dynamic text and dynamic
// node) and attribute slots are separate runtime arrays, so each set
// must independently cover 0..max. Duplicate references to one slot
// are allowed.
func validateSlots(roots []*vdom.Node) error {
	nodeSlots := map[uint]struct{}{}
	attrSlots := map[uint]struct{}{}
	for _, root := range roots {
		collectSlots(root, nodeSlots, attrSlots)
	}
	if err := checkDense(nodeSlots, "dynamic node/text"); err != nil {
		return err
	}
	return checkDense(attrSlots, "dynamic attribute")
}

func collectSlots(n *vdom.Node, nodeSlots, attrSlots map[uint]struct{}) {
	switch n.Kind() {
	case vdom.KindDynamicText, vdom.KindDynamicNode:
		nodeSlots[n.Slot()] = struct{}{}
	case vdom.KindDynamicAttr:
		attrSlots[n.Slot()] = struct{}{}
	case vdom.KindElement:
		for _, item := range n.Items() {
			collectSlots(item, nodeSlots, attrSlots)
		}
	}
}

func checkDense(slots map[uint]struct{}, what string) error {
	for i := uint(0); i < uint(len(slots)); i++ {
		if _, ok := slots[i]; !ok {
			return errors.New("Q020").
				WithDetail(fmt.Sprintf("%s slots skip index %d", what, i)).
				WithSuggestion("Number dynamic slots densely starting at 0")
		}
	}
	return nil
}
