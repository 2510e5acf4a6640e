package memory

import "frontdesk/pkg/order"

// DefaultReservationCapacity bounds the reservation queue.
const DefaultReservationCapacity = 5

// ReservationQueue is a bounded FIFO ring of reservations. Enqueue on a full
// queue evicts the front entry. Positions count from the front.
type ReservationQueue struct {
	items []order.Reservation
	head  int
	count int
}

// NewReservationQueue returns a queue holding at most n reservations.
// Non-positive n falls back to DefaultReservationCapacity.
func NewReservationQueue(n int) *ReservationQueue {
	if n <= 0 {
		n = DefaultReservationCapacity
	}
	return &ReservationQueue{items: make([]order.Reservation, n)}
}

// Enqueue appends r at the back and returns its position. When the queue was
// full the front reservation is dropped and returned as evicted.
func (q *ReservationQueue) Enqueue(r order.Reservation) (pos int, evicted *order.Reservation) {
	size := len(q.items)
	if q.count < size {
		q.items[(q.head+q.count)%size] = r
		q.count++
		return q.count - 1, nil
	}
	old := q.items[q.head]
	q.items[q.head] = r
	q.head = (q.head + 1) % size
	return q.count - 1, &old
}

// EditAt replaces the reservation at pos.
func (q *ReservationQueue) EditAt(pos int, r order.Reservation) error {
	if err := q.check(pos); err != nil {
		return err
	}
	q.items[q.index(pos)] = r
	return nil
}

// DeleteAt removes the reservation at pos; later entries move one step forward.
func (q *ReservationQueue) DeleteAt(pos int) (order.Reservation, error) {
	if err := q.check(pos); err != nil {
		return order.Reservation{}, err
	}
	removed := q.items[q.index(pos)]
	for i := pos; i < q.count-1; i++ {
		q.items[q.index(i)] = q.items[q.index(i+1)]
	}
	q.items[q.index(q.count-1)] = order.Reservation{}
	q.count--
	return removed, nil
}

// DequeueFront removes and returns the oldest reservation.
func (q *ReservationQueue) DequeueFront() (order.Reservation, error) {
	if q.count == 0 {
		return order.Reservation{}, order.ErrNotFound
	}
	front := q.items[q.head]
	q.items[q.head] = order.Reservation{}
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return front, nil
}

// Snapshot copies the queue front to back.
func (q *ReservationQueue) Snapshot() []order.Reservation {
	out := make([]order.Reservation, q.count)
	for i := range out {
		out[i] = q.items[q.index(i)]
	}
	return out
}

// Len returns the number of queued reservations.
func (q *ReservationQueue) Len() int { return q.count }

// Cap returns the queue bound.
func (q *ReservationQueue) Cap() int { return len(q.items) }

func (q *ReservationQueue) index(pos int) int { return (q.head + pos) % len(q.items) }

func (q *ReservationQueue) check(pos int) error {
	if q.count == 0 {
		return order.ErrNotFound
	}
	if pos < 0 || pos >= q.count {
		return order.ErrIndexOutOfRange
	}
	return nil
}
