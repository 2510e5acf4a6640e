package desk

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/pkg/logger"
	"frontdesk/pkg/metrics"
	"frontdesk/pkg/order"
	"frontdesk/pkg/order/memory"
)

type recorder struct {
	mu     sync.Mutex
	events []order.Event
}

func (r *recorder) Publish(_ context.Context, e order.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) kinds() []order.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]order.Kind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

type failing struct{}

func (failing) Publish(context.Context, order.Event) error { return errors.New("broker down") }

// ctxPublisher fails when the publish context is already done.
type ctxPublisher struct{ recorder }

func (p *ctxPublisher) Publish(ctx context.Context, e order.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.recorder.Publish(ctx, e)
}

func newService(t *testing.T, opts memory.Options, pubs ...NamedPublisher) (*Service, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	log := logger.New(io.Discard, logger.LevelDebug, "frontdesk-test", nil)
	return New(memory.NewWithOptions(opts), log, m, pubs...), m
}

func TestRegisterOrderPublishesEvents(t *testing.T) {
	rec := &recorder{}
	s, m := newService(t, memory.Options{Slots: 1}, NamedPublisher{"rec", rec})
	ctx := context.Background()

	p := s.RegisterOrder(ctx, "ana", "4", "paella", true)
	assert.Equal(t, 0, p.Slot)
	assert.Equal(t, 0, p.UrgentPos)
	assert.Equal(t, []order.Kind{order.KindOrderRegistered, order.KindUrgentPushed}, rec.kinds())

	s.RegisterOrder(ctx, "ben", "5", "soup", false)
	assert.Equal(t, []order.Kind{
		order.KindOrderRegistered, order.KindUrgentPushed,
		order.KindOrderRegistered, order.KindOrderOverwritten,
	}, rec.kinds())
	assert.Equal(t, "paella", rec.events[3].Order.Dish)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Mutations.WithLabelValues(string(order.KindOrderRegistered))))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Size.WithLabelValues("history")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Size.WithLabelValues("slots")))
}

func TestRegisterReservationEviction(t *testing.T) {
	rec := &recorder{}
	s, _ := newService(t, memory.Options{ReservationCapacity: 1}, NamedPublisher{"rec", rec})
	ctx := context.Background()

	s.RegisterReservation(ctx, "ana", "1")
	b := s.RegisterReservation(ctx, "ben", "2")
	require.NotNil(t, b.Evicted)
	assert.Equal(t, "ana", b.Evicted.Customer)
	assert.Equal(t, []order.Kind{
		order.KindReservationAdded, order.KindReservationEvicted, order.KindReservationAdded,
	}, rec.kinds())
	assert.Equal(t, []order.Reservation{{Customer: "ben", Table: "2"}}, s.Reservations())
}

func TestFailedOperationsPublishNothing(t *testing.T) {
	rec := &recorder{}
	s, m := newService(t, memory.Options{}, NamedPublisher{"rec", rec})
	ctx := context.Background()

	err := s.EditOrder(ctx, 3, order.New("a", "1", "x"))
	assert.ErrorIs(t, err, order.ErrNotFound)
	assert.EqualError(t, err, "edit order 3: order not found")

	_, err = s.DeleteOrder(ctx, 42)
	assert.ErrorIs(t, err, order.ErrIndexOutOfRange)
	_, _, err = s.DeleteLastOrder(ctx)
	assert.ErrorIs(t, err, order.ErrNotFound)
	_, err = s.PopUrgent(ctx)
	assert.EqualError(t, err, "pop urgent: order not found")
	assert.ErrorIs(t, s.EditUrgent(ctx, 0, order.Order{}), order.ErrNotFound)
	_, err = s.DeleteUrgent(ctx, 0)
	assert.ErrorIs(t, err, order.ErrNotFound)
	assert.ErrorIs(t, s.EditReservation(ctx, 0, order.Reservation{}), order.ErrNotFound)
	_, err = s.DeleteReservation(ctx, 0)
	assert.ErrorIs(t, err, order.ErrNotFound)
	_, err = s.DequeueReservation(ctx)
	assert.ErrorIs(t, err, order.ErrNotFound)

	assert.Empty(t, rec.kinds())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Failures.WithLabelValues("delete order", "out_of_range")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Failures.WithLabelValues("edit order", "not_found")))
}

func TestPositionalOperations(t *testing.T) {
	rec := &recorder{}
	s, _ := newService(t, memory.Options{}, NamedPublisher{"rec", rec})
	ctx := context.Background()

	s.RegisterOrder(ctx, "x", "1", "a", true)
	s.RegisterOrder(ctx, "y", "2", "b", true)
	s.RegisterOrder(ctx, "z", "3", "c", true)

	top, err := s.PopUrgent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "z", top.Customer)
	last := rec.events[len(rec.events)-1]
	assert.Equal(t, order.KindUrgentPopped, last.Kind)
	assert.Equal(t, 2, last.Position)

	require.NoError(t, s.EditUrgent(ctx, 0, order.New("w", "9", "d")))
	removed, err := s.DeleteUrgent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "y", removed.Customer)
	assert.Equal(t, []order.Order{order.New("w", "9", "d")}, s.Urgent())

	require.NoError(t, s.EditOrder(ctx, 1, order.New("q", "7", "e")))
	slot, removed, err := s.DeleteLastOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, slot)
	assert.Equal(t, "z", removed.Customer)
	removed, err = s.DeleteOrder(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "q", removed.Customer)

	// history and table index keep the original copies
	assert.Equal(t, []string{"z", "y", "x"}, customersOf(s.History()))
	assert.Equal(t, []string{"x", "y", "z"}, customersOf(s.ByTable()))

	s.RegisterReservation(ctx, "r1", "1")
	s.RegisterReservation(ctx, "r2", "2")
	require.NoError(t, s.EditReservation(ctx, 1, order.Reservation{Customer: "r3", Table: "3"}))
	front, err := s.DequeueReservation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r1", front.Customer)
	gone, err := s.DeleteReservation(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "r3", gone.Customer)
	assert.Empty(t, s.Reservations())
}

func TestPublisherFailureDoesNotFailMutation(t *testing.T) {
	buf := &bytes.Buffer{}
	rec := &recorder{}
	m := metrics.New()
	log := logger.New(buf, logger.LevelInfo, "frontdesk-test", nil)
	s := New(memory.New(), log, m, NamedPublisher{"broken", failing{}}, NamedPublisher{"rec", rec})

	p := s.RegisterOrder(context.Background(), "ana", "1", "soup", false)
	assert.Equal(t, 0, p.Slot)
	assert.Len(t, rec.kinds(), 1, "healthy publishers still receive events")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PublishFailures.WithLabelValues("broken")))
	assert.Contains(t, buf.String(), "publish failed")
}

func TestBoard(t *testing.T) {
	s, _ := newService(t, memory.Options{Slots: 3})
	ctx := context.Background()
	s.RegisterOrder(ctx, "a", "2", "x", true)
	s.RegisterOrder(ctx, "b", "1", "y", false)
	s.RegisterReservation(ctx, "c", "5")

	b := s.Board()
	assert.Len(t, b.Orders, 3)
	assert.True(t, b.Orders[2].Empty())
	assert.Equal(t, []string{"b", "a"}, customersOf(b.History))
	assert.Equal(t, []string{"b", "a"}, customersOf(b.ByTable))
	assert.Len(t, b.Urgent, 1)
	assert.Len(t, b.Reservations, 1)
	assert.Equal(t, 2, b.Stats.Cursor)
}

func customersOf(orders []order.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.Customer
	}
	return out
}

func TestCancelledCallerStillPublishes(t *testing.T) {
	pub := &ctxPublisher{}
	s, m := newService(t, memory.Options{}, NamedPublisher{"journal", pub})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.RegisterOrder(ctx, "ana", "1", "soup", true)
	_, err := s.PopUrgent(ctx)
	require.NoError(t, err)

	assert.Equal(t, []order.Kind{
		order.KindOrderRegistered, order.KindUrgentPushed, order.KindUrgentPopped,
	}, pub.kinds())
	assert.Equal(t, float64(0), testutil.ToFloat64(m.PublishFailures.WithLabelValues("journal")))
}
