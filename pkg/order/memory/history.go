package memory

import "frontdesk/pkg/order"

type historyNode struct {
	order order.Order
	next  *historyNode
}

// History is an append-only singly-linked list of orders, newest at the head.
type History struct {
	head *historyNode
	size int
}

// NewHistory returns an empty history.
func NewHistory() *History { return &History{} }

// Insert links a copy of o as the new head.
func (h *History) Insert(o order.Order) {
	h.head = &historyNode{order: o, next: h.head}
	h.size++
}

// ToSequence walks the list from the head, most recent order first.
func (h *History) ToSequence() []order.Order {
	out := make([]order.Order, 0, h.size)
	for n := h.head; n != nil; n = n.next {
		out = append(out, n.order)
	}
	return out
}

// Len returns the number of recorded orders.
func (h *History) Len() int { return h.size }
