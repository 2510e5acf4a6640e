package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Order represents a dish ordered for a table.
type Order struct {
	Customer string `json:"customer"`
	Table    string `json:"table"`
	Dish     string `json:"dish"`
}

// New builds an order from already-validated fields.
func New(customer, table, dish string) Order {
	return Order{Customer: customer, Table: table, Dish: dish}
}

// Reservation holds a table for a customer.
type Reservation struct {
	Customer string `json:"customer"`
	Table    string `json:"table"`
}

// Slot is one position of the circular order log. Order is nil when the slot is empty.
type Slot struct {
	Index int    `json:"index"`
	Order *Order `json:"order"`
}

// Empty reports whether the slot holds no order.
func (s Slot) Empty() bool { return s.Order == nil }

// Kind names a registry mutation.
type Kind string

const (
	KindOrderRegistered    Kind = "order.registered"
	KindOrderEdited        Kind = "order.edited"
	KindOrderDeleted       Kind = "order.deleted"
	KindOrderOverwritten   Kind = "order.overwritten"
	KindUrgentPushed       Kind = "urgent.pushed"
	KindUrgentEdited       Kind = "urgent.edited"
	KindUrgentDeleted      Kind = "urgent.deleted"
	KindUrgentPopped       Kind = "urgent.popped"
	KindReservationAdded   Kind = "reservation.added"
	KindReservationEdited  Kind = "reservation.edited"
	KindReservationDeleted Kind = "reservation.deleted"
	KindReservationDequeue Kind = "reservation.dequeued"
	KindReservationEvicted Kind = "reservation.evicted"
)

// Event describes one successful mutation of the registry.
type Event struct {
	ID          uuid.UUID    `json:"id"`
	Kind        Kind         `json:"kind"`
	Position    int          `json:"position"`
	Order       *Order       `json:"order,omitempty"`
	Reservation *Reservation `json:"reservation,omitempty"`
	At          time.Time    `json:"at"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(kind Kind, pos int) Event {
	return Event{ID: uuid.New(), Kind: kind, Position: pos, At: time.Now().UTC()}
}

// WithOrder attaches a copy of o to the event.
func (e Event) WithOrder(o Order) Event {
	e.Order = &o
	return e
}

// WithReservation attaches a copy of r to the event.
func (e Event) WithReservation(r Reservation) Event {
	e.Reservation = &r
	return e
}

// Publisher receives registry events. Implementations must not read state back into the registry.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Feed reads back published events for operators, newest first.
type Feed interface {
	Recent(ctx context.Context, limit int) ([]Event, error)
}

var (
	// ErrNotFound indicates the addressed slot, stack or queue position holds nothing.
	ErrNotFound = errors.New("order not found")
	// ErrIndexOutOfRange indicates a position outside the bounds of the target structure.
	ErrIndexOutOfRange = errors.New("index out of range")
)
