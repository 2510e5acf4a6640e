// Package desk is the front-desk service: every registry operation runs in
// a span, is logged and counted, and its outcome is published as events.
package desk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"frontdesk/pkg/logger"
	"frontdesk/pkg/metrics"
	"frontdesk/pkg/order"
	"frontdesk/pkg/order/memory"
	"frontdesk/pkg/otel"
)

// publishTimeout bounds event delivery for one operation.
const publishTimeout = 5 * time.Second

// NamedPublisher labels a publisher for logs and metrics.
type NamedPublisher struct {
	Name string
	order.Publisher
}

// Service coordinates the registry with its event publishers.
type Service struct {
	reg        *memory.Registry
	log        *logger.Logger
	metrics    *metrics.Metrics
	publishers []NamedPublisher
}

// New creates a service over reg. m may be nil.
func New(reg *memory.Registry, log *logger.Logger, m *metrics.Metrics, publishers ...NamedPublisher) *Service {
	s := &Service{reg: reg, log: log, metrics: m, publishers: publishers}
	s.observe()
	return s
}

// Board is every registry view at one instant.
type Board struct {
	Orders       []order.Slot        `json:"orders"`
	History      []order.Order       `json:"history"`
	ByTable      []order.Order       `json:"by_table"`
	Urgent       []order.Order       `json:"urgent"`
	Reservations []order.Reservation `json:"reservations"`
	Stats        memory.Stats        `json:"stats"`
}

// RegisterOrder records a new order; urgent orders also go onto the urgent stack.
func (s *Service) RegisterOrder(ctx context.Context, customer, table, dish string, urgent bool) memory.Placement {
	ctx, span := otel.AddSpan(ctx, "desk.RegisterOrder", trace.WithAttributes(
		attribute.String("table", table),
		attribute.Bool("urgent", urgent),
	))
	defer span.End()

	p := s.reg.PlaceOrder(order.New(customer, table, dish), urgent)
	span.SetAttributes(attribute.Int("slot", p.Slot))

	events := []order.Event{order.NewEvent(order.KindOrderRegistered, p.Slot).WithOrder(p.Order)}
	if p.Replaced != nil {
		s.log.Warn(ctx, "slot overwritten", "slot", p.Slot, "replaced_table", p.Replaced.Table)
		events = append(events, order.NewEvent(order.KindOrderOverwritten, p.Slot).WithOrder(*p.Replaced))
	}
	if p.UrgentPos >= 0 {
		events = append(events, order.NewEvent(order.KindUrgentPushed, p.UrgentPos).WithOrder(p.Order))
	}
	s.log.Info(ctx, "order registered", "slot", p.Slot, "table", table, "urgent", urgent)
	s.emit(ctx, events...)
	return p
}

// RegisterReservation queues a reservation, evicting the oldest when the queue is full.
func (s *Service) RegisterReservation(ctx context.Context, customer, table string) memory.Booking {
	ctx, span := otel.AddSpan(ctx, "desk.RegisterReservation", trace.WithAttributes(attribute.String("table", table)))
	defer span.End()

	b := s.reg.QueueReservation(order.Reservation{Customer: customer, Table: table})
	var events []order.Event
	if b.Evicted != nil {
		s.log.Warn(ctx, "reservation evicted", "customer", b.Evicted.Customer, "table", b.Evicted.Table)
		events = append(events, order.NewEvent(order.KindReservationEvicted, 0).WithReservation(*b.Evicted))
	}
	events = append(events, order.NewEvent(order.KindReservationAdded, b.Position).WithReservation(b.Reservation))
	s.log.Info(ctx, "reservation added", "position", b.Position, "table", table)
	s.emit(ctx, events...)
	return b
}

// EditOrder replaces the order in a circular-log slot. Other views keep their copies.
func (s *Service) EditOrder(ctx context.Context, slot int, o order.Order) error {
	ctx, span := otel.AddSpan(ctx, "desk.EditOrder", trace.WithAttributes(attribute.Int("slot", slot)))
	defer span.End()

	if err := s.reg.EditOrder(slot, o); err != nil {
		return s.fail(ctx, span, "edit order", slot, err)
	}
	s.emit(ctx, order.NewEvent(order.KindOrderEdited, slot).WithOrder(o))
	return nil
}

// DeleteOrder empties a circular-log slot.
func (s *Service) DeleteOrder(ctx context.Context, slot int) (order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "desk.DeleteOrder", trace.WithAttributes(attribute.Int("slot", slot)))
	defer span.End()

	removed, err := s.reg.DeleteOrder(slot)
	if err != nil {
		return order.Order{}, s.fail(ctx, span, "delete order", slot, err)
	}
	s.emit(ctx, order.NewEvent(order.KindOrderDeleted, slot).WithOrder(removed))
	return removed, nil
}

// DeleteLastOrder empties the highest-indexed occupied slot and returns its index.
func (s *Service) DeleteLastOrder(ctx context.Context) (int, order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "desk.DeleteLastOrder")
	defer span.End()

	slot, removed, err := s.reg.DeleteLastOrder()
	if err != nil {
		return -1, order.Order{}, s.fail(ctx, span, "delete last order", -1, err)
	}
	s.emit(ctx, order.NewEvent(order.KindOrderDeleted, slot).WithOrder(removed))
	return slot, removed, nil
}

// EditUrgent replaces the urgent order at pos.
func (s *Service) EditUrgent(ctx context.Context, pos int, o order.Order) error {
	ctx, span := otel.AddSpan(ctx, "desk.EditUrgent", trace.WithAttributes(attribute.Int("position", pos)))
	defer span.End()

	if err := s.reg.EditUrgent(pos, o); err != nil {
		return s.fail(ctx, span, "edit urgent", pos, err)
	}
	s.emit(ctx, order.NewEvent(order.KindUrgentEdited, pos).WithOrder(o))
	return nil
}

// DeleteUrgent removes the urgent order at pos.
func (s *Service) DeleteUrgent(ctx context.Context, pos int) (order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "desk.DeleteUrgent", trace.WithAttributes(attribute.Int("position", pos)))
	defer span.End()

	removed, err := s.reg.DeleteUrgent(pos)
	if err != nil {
		return order.Order{}, s.fail(ctx, span, "delete urgent", pos, err)
	}
	s.emit(ctx, order.NewEvent(order.KindUrgentDeleted, pos).WithOrder(removed))
	return removed, nil
}

// PopUrgent removes the top urgent order.
func (s *Service) PopUrgent(ctx context.Context) (order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "desk.PopUrgent")
	defer span.End()

	pos, top, err := s.reg.PopUrgent()
	if err != nil {
		return order.Order{}, s.fail(ctx, span, "pop urgent", -1, err)
	}
	s.emit(ctx, order.NewEvent(order.KindUrgentPopped, pos).WithOrder(top))
	return top, nil
}

// EditReservation replaces the reservation at pos.
func (s *Service) EditReservation(ctx context.Context, pos int, r order.Reservation) error {
	ctx, span := otel.AddSpan(ctx, "desk.EditReservation", trace.WithAttributes(attribute.Int("position", pos)))
	defer span.End()

	if err := s.reg.EditReservation(pos, r); err != nil {
		return s.fail(ctx, span, "edit reservation", pos, err)
	}
	s.emit(ctx, order.NewEvent(order.KindReservationEdited, pos).WithReservation(r))
	return nil
}

// DeleteReservation removes the reservation at pos.
func (s *Service) DeleteReservation(ctx context.Context, pos int) (order.Reservation, error) {
	ctx, span := otel.AddSpan(ctx, "desk.DeleteReservation", trace.WithAttributes(attribute.Int("position", pos)))
	defer span.End()

	removed, err := s.reg.DeleteReservation(pos)
	if err != nil {
		return order.Reservation{}, s.fail(ctx, span, "delete reservation", pos, err)
	}
	s.emit(ctx, order.NewEvent(order.KindReservationDeleted, pos).WithReservation(removed))
	return removed, nil
}

// DequeueReservation removes the front reservation.
func (s *Service) DequeueReservation(ctx context.Context) (order.Reservation, error) {
	ctx, span := otel.AddSpan(ctx, "desk.DequeueReservation")
	defer span.End()

	front, err := s.reg.DequeueReservation()
	if err != nil {
		return order.Reservation{}, s.fail(ctx, span, "dequeue reservation", -1, err)
	}
	s.emit(ctx, order.NewEvent(order.KindReservationDequeue, 0).WithReservation(front))
	return front, nil
}

// Orders returns every circular-log slot.
func (s *Service) Orders() []order.Slot { return s.reg.Orders() }

// History returns every registered order, most recent first.
func (s *Service) History() []order.Order { return s.reg.History() }

// ByTable returns every registered order ascending by table.
func (s *Service) ByTable() []order.Order { return s.reg.ByTable() }

// Urgent returns the urgent stack bottom to top.
func (s *Service) Urgent() []order.Order { return s.reg.Urgent() }

// Reservations returns the reservation queue front to back.
func (s *Service) Reservations() []order.Reservation { return s.reg.Reservations() }

// Stats returns registry structure sizes.
func (s *Service) Stats() memory.Stats { return s.reg.Stats() }

// Board collects every view. The views are read one after another, so a
// concurrent mutation may land between them.
func (s *Service) Board() Board {
	return Board{
		Orders:       s.reg.Orders(),
		History:      s.reg.History(),
		ByTable:      s.reg.ByTable(),
		Urgent:       s.reg.Urgent(),
		Reservations: s.reg.Reservations(),
		Stats:        s.reg.Stats(),
	}
}

// fail records a rejected operation and wraps err with its context.
func (s *Service) fail(ctx context.Context, span trace.Span, op string, pos int, err error) error {
	reason := "other"
	switch {
	case errors.Is(err, order.ErrNotFound):
		reason = "not_found"
	case errors.Is(err, order.ErrIndexOutOfRange):
		reason = "out_of_range"
	}
	if s.metrics != nil {
		s.metrics.Failures.WithLabelValues(op, reason).Inc()
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, reason)
	s.log.Debug(ctx, "operation rejected", "op", op, "position", pos, "error", err)
	if pos < 0 {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s %d: %w", op, pos, err)
}

// emit delivers events to every publisher. Publisher errors are logged and
// counted; the registry mutation has already been applied.
func (s *Service) emit(ctx context.Context, events ...order.Event) {
	// The mutation is already applied; a caller that goes away must not drop its events.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	for _, e := range events {
		if s.metrics != nil {
			s.metrics.Mutations.WithLabelValues(string(e.Kind)).Inc()
		}
		for _, p := range s.publishers {
			if err := p.Publish(ctx, e); err != nil {
				s.log.Warn(ctx, "publish failed", "publisher", p.Name, "kind", e.Kind, "error", err)
				if s.metrics != nil {
					s.metrics.PublishFailures.WithLabelValues(p.Name).Inc()
				}
			}
		}
	}
	s.observe()
}

func (s *Service) observe() {
	if s.metrics == nil {
		return
	}
	st := s.reg.Stats()
	s.metrics.Size.WithLabelValues("slots").Set(float64(st.Occupied))
	s.metrics.Size.WithLabelValues("history").Set(float64(st.History))
	s.metrics.Size.WithLabelValues("tables").Set(float64(st.Tables))
	s.metrics.Size.WithLabelValues("urgent").Set(float64(st.Urgent))
	s.metrics.Size.WithLabelValues("reservations").Set(float64(st.Reservations))
}
