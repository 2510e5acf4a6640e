package memory

import "frontdesk/pkg/order"

type tableNode struct {
	order order.Order
	left  *tableNode
	right *tableNode
}

// TableIndex is an unbalanced binary search tree of orders keyed by table.
// Keys are ordered by order.CompareTables; equal keys descend right so
// traversal keeps their insertion order. Adversarial key order degrades
// inserts and traversal to O(n).
type TableIndex struct {
	root *tableNode
	size int
}

// NewTableIndex returns an empty index.
func NewTableIndex() *TableIndex { return &TableIndex{} }

// Insert adds o as a new leaf.
func (t *TableIndex) Insert(o order.Order) {
	z := &tableNode{order: o}
	t.size++
	if t.root == nil {
		t.root = z
		return
	}
	n := t.root
	for {
		if order.CompareTables(o.Table, n.order.Table) < 0 {
			if n.left == nil {
				n.left = z
				return
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = z
				return
			}
			n = n.right
		}
	}
}

// InOrder returns all orders ascending by table.
func (t *TableIndex) InOrder() []order.Order {
	out := make([]order.Order, 0, t.size)
	var stack []*tableNode
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.order)
		n = n.right
	}
	return out
}

// Len returns the number of indexed orders.
func (t *TableIndex) Len() int { return t.size }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *TableIndex) Height() int {
	if t.root == nil {
		return 0
	}
	type frame struct {
		n     *tableNode
		depth int
	}
	max := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > max {
			max = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return max
}
