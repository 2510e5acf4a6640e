// Package memory implements the in-memory order registry: a circular log of
// active orders, an order history, a table index, an urgent stack and a
// bounded reservation queue, all owned by a single Registry.
package memory

import (
	"sync"

	"frontdesk/pkg/order"
)

// Options sizes the registry's bounded structures.
type Options struct {
	Slots               int
	ReservationCapacity int
}

// Registry fans registered orders out to every view and serializes access
// to them. Each structure receives its own copy of an order, so editing one
// view never changes another.
type Registry struct {
	mu           sync.RWMutex
	log          *CircularLog
	history      *History
	tables       *TableIndex
	urgent       *UrgentStack
	reservations *ReservationQueue
}

// New creates a registry with default capacities.
func New() *Registry {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a registry sized by opts; zero values use defaults.
func NewWithOptions(opts Options) *Registry {
	return &Registry{
		log:          NewCircularLog(opts.Slots),
		history:      NewHistory(),
		tables:       NewTableIndex(),
		urgent:       NewUrgentStack(),
		reservations: NewReservationQueue(opts.ReservationCapacity),
	}
}

// Placement reports where a registered order landed.
type Placement struct {
	Order    order.Order  `json:"order"`
	Slot     int          `json:"slot"`
	Replaced *order.Order `json:"replaced,omitempty"`
	// UrgentPos is the stack position, or -1 when the order was not urgent.
	UrgentPos int `json:"urgent_pos"`
}

// Booking reports where a reservation landed.
type Booking struct {
	Reservation order.Reservation  `json:"reservation"`
	Position    int                `json:"position"`
	Evicted     *order.Reservation `json:"evicted,omitempty"`
}

// Stats summarizes the size of every structure.
type Stats struct {
	Slots               int `json:"slots"`
	Occupied            int `json:"occupied"`
	Cursor              int `json:"cursor"`
	History             int `json:"history"`
	Tables              int `json:"tables"`
	TableHeight         int `json:"table_height"`
	Urgent              int `json:"urgent"`
	Reservations        int `json:"reservations"`
	ReservationCapacity int `json:"reservation_capacity"`
}

// RegisterOrder records a new order and returns it.
func (r *Registry) RegisterOrder(customer, table, dish string, urgent bool) order.Order {
	return r.PlaceOrder(order.New(customer, table, dish), urgent).Order
}

// PlaceOrder writes o into the circular log, history and table index, and
// onto the urgent stack when urgent is set.
func (r *Registry) PlaceOrder(o order.Order, urgent bool) Placement {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, replaced := r.log.Register(o)
	r.history.Insert(o)
	r.tables.Insert(o)
	p := Placement{Order: o, Slot: slot, Replaced: replaced, UrgentPos: -1}
	if urgent {
		p.UrgentPos = r.urgent.Push(o)
	}
	return p
}

// RegisterReservation queues a new reservation and returns it.
func (r *Registry) RegisterReservation(customer, table string) order.Reservation {
	return r.QueueReservation(order.Reservation{Customer: customer, Table: table}).Reservation
}

// QueueReservation enqueues res, evicting the oldest reservation when full.
func (r *Registry) QueueReservation(res order.Reservation) Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, evicted := r.reservations.Enqueue(res)
	return Booking{Reservation: res, Position: pos, Evicted: evicted}
}

// EditOrder replaces the order in slot of the circular log only.
func (r *Registry) EditOrder(slot int, o order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.log.EditAt(slot, o)
}

// DeleteOrder empties slot of the circular log.
func (r *Registry) DeleteOrder(slot int) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.log.DeleteAt(slot)
}

// DeleteLastOrder empties the highest-indexed occupied slot.
func (r *Registry) DeleteLastOrder() (int, order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.log.DeleteLast()
}

// EditUrgent replaces the urgent order at pos.
func (r *Registry) EditUrgent(pos int, o order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.urgent.EditAt(pos, o)
}

// DeleteUrgent removes the urgent order at pos.
func (r *Registry) DeleteUrgent(pos int) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.urgent.DeleteAt(pos)
}

// PopUrgent removes the top urgent order and returns the position it held.
func (r *Registry) PopUrgent() (int, order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	top, err := r.urgent.PopTop()
	if err != nil {
		return -1, order.Order{}, err
	}
	return r.urgent.Len(), top, nil
}

// EditReservation replaces the reservation at pos.
func (r *Registry) EditReservation(pos int, res order.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reservations.EditAt(pos, res)
}

// DeleteReservation removes the reservation at pos.
func (r *Registry) DeleteReservation(pos int) (order.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reservations.DeleteAt(pos)
}

// DequeueReservation removes the front reservation.
func (r *Registry) DequeueReservation() (order.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reservations.DequeueFront()
}

// Orders returns every slot of the circular log.
func (r *Registry) Orders() []order.Slot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.log.Snapshot()
}

// History returns all registered orders, most recent first.
func (r *Registry) History() []order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.history.ToSequence()
}

// ByTable returns all registered orders ascending by table.
func (r *Registry) ByTable() []order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tables.InOrder()
}

// Urgent returns the urgent stack bottom to top.
func (r *Registry) Urgent() []order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.urgent.Snapshot()
}

// Reservations returns the reservation queue front to back.
func (r *Registry) Reservations() []order.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reservations.Snapshot()
}

// Stats returns structure sizes.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{
		Slots:               r.log.Cap(),
		Occupied:            r.log.Len(),
		Cursor:              r.log.Cursor(),
		History:             r.history.Len(),
		Tables:              r.tables.Len(),
		TableHeight:         r.tables.Height(),
		Urgent:              r.urgent.Len(),
		Reservations:        r.reservations.Len(),
		ReservationCapacity: r.reservations.Cap(),
	}
}
