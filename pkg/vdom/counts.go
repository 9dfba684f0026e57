package vdom

// CountNodes returns the total number of tree nodes in the subtree
// rooted at n, including n itself. Attribute items are not tree nodes
// and are excluded.
func (n *Node) CountNodes() uint {
	if n == nil || n.kind.IsAttr() {
		return 0
	}
	total := uint(1)
	for _, item := range n.items {
		total += item.CountNodes()
	}
	return total
}

// CountDynamicText returns the number of dynamic-text nodes anywhere
// in the subtree rooted at n.
func (n *Node) CountDynamicText() uint {
	return n.countKind(KindDynamicText)
}

// CountDynamicAttr returns the number of dynamic-attribute items
// anywhere in the subtree rooted at n.
func (n *Node) CountDynamicAttr() uint {
	return n.countKind(KindDynamicAttr)
}

func (n *Node) countKind(k Kind) uint {
	if n == nil {
		return 0
	}
	var total uint
	if n.kind == k {
		total++
	}
	for _, item := range n.items {
		total += item.countKind(k)
	}
	return total
}
