package memory

import "frontdesk/pkg/order"

// UrgentStack is an unbounded LIFO of urgent orders. Positions count from
// the bottom, so the top is at Len()-1.
type UrgentStack struct {
	items []order.Order
}

// NewUrgentStack returns an empty stack.
func NewUrgentStack() *UrgentStack { return &UrgentStack{} }

// Push places o on top and returns its position.
func (s *UrgentStack) Push(o order.Order) int {
	s.items = append(s.items, o)
	return len(s.items) - 1
}

// EditAt replaces the order at pos.
func (s *UrgentStack) EditAt(pos int, o order.Order) error {
	if err := s.check(pos); err != nil {
		return err
	}
	s.items[pos] = o
	return nil
}

// DeleteAt removes the order at pos, closing the gap.
func (s *UrgentStack) DeleteAt(pos int) (order.Order, error) {
	if err := s.check(pos); err != nil {
		return order.Order{}, err
	}
	removed := s.items[pos]
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	return removed, nil
}

// PopTop removes and returns the top order.
func (s *UrgentStack) PopTop() (order.Order, error) {
	if len(s.items) == 0 {
		return order.Order{}, order.ErrNotFound
	}
	return s.DeleteAt(len(s.items) - 1)
}

// Snapshot copies the stack bottom to top.
func (s *UrgentStack) Snapshot() []order.Order {
	out := make([]order.Order, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the stack depth.
func (s *UrgentStack) Len() int { return len(s.items) }

func (s *UrgentStack) check(pos int) error {
	if len(s.items) == 0 {
		return order.ErrNotFound
	}
	if pos < 0 || pos >= len(s.items) {
		return order.ErrIndexOutOfRange
	}
	return nil
}
