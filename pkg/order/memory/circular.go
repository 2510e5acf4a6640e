package memory

import "frontdesk/pkg/order"

// DefaultSlots is the capacity of the circular order log.
const DefaultSlots = 10

// CircularLog is a fixed array of order slots written at a wrapping cursor.
// It is not safe for concurrent use; Registry serializes access.
type CircularLog struct {
	slots  []*order.Order
	cursor int
}

// NewCircularLog returns a log with n slots. Non-positive n falls back to DefaultSlots.
func NewCircularLog(n int) *CircularLog {
	if n <= 0 {
		n = DefaultSlots
	}
	return &CircularLog{slots: make([]*order.Order, n)}
}

// Register writes o at the cursor and advances the cursor by one, wrapping
// at capacity. An occupant of the slot is overwritten and returned as replaced.
func (l *CircularLog) Register(o order.Order) (slot int, replaced *order.Order) {
	slot = l.cursor
	replaced = l.slots[slot]
	l.slots[slot] = &o
	l.cursor = (l.cursor + 1) % len(l.slots)
	return slot, replaced
}

// EditAt replaces the order held in slot i.
func (l *CircularLog) EditAt(i int, o order.Order) error {
	if err := l.occupied(i); err != nil {
		return err
	}
	*l.slots[i] = o
	return nil
}

// DeleteAt empties slot i and returns what it held.
func (l *CircularLog) DeleteAt(i int) (order.Order, error) {
	if err := l.occupied(i); err != nil {
		return order.Order{}, err
	}
	removed := *l.slots[i]
	l.slots[i] = nil
	return removed, nil
}

// DeleteLast empties the highest-indexed occupied slot. After the cursor has
// wrapped this is not necessarily the most recently written order.
func (l *CircularLog) DeleteLast() (int, order.Order, error) {
	for i := len(l.slots) - 1; i >= 0; i-- {
		if l.slots[i] != nil {
			removed := *l.slots[i]
			l.slots[i] = nil
			return i, removed, nil
		}
	}
	return -1, order.Order{}, order.ErrNotFound
}

// Snapshot copies every slot in index order, empty ones included.
func (l *CircularLog) Snapshot() []order.Slot {
	out := make([]order.Slot, len(l.slots))
	for i, o := range l.slots {
		out[i] = order.Slot{Index: i}
		if o != nil {
			cp := *o
			out[i].Order = &cp
		}
	}
	return out
}

// Cursor is the slot the next Register writes to.
func (l *CircularLog) Cursor() int { return l.cursor }

// Cap returns the number of slots.
func (l *CircularLog) Cap() int { return len(l.slots) }

// Len counts occupied slots.
func (l *CircularLog) Len() int {
	n := 0
	for _, o := range l.slots {
		if o != nil {
			n++
		}
	}
	return n
}

func (l *CircularLog) occupied(i int) error {
	if i < 0 || i >= len(l.slots) {
		return order.ErrIndexOutOfRange
	}
	if l.slots[i] == nil {
		return order.ErrNotFound
	}
	return nil
}
