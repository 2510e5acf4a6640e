package memory

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"frontdesk/pkg/order"
)

func TestRegistryFansOutIndependentCopies(t *testing.T) {
	r := New()
	o := r.RegisterOrder("ana", "7", "paella", true)
	if o != order.New("ana", "7", "paella") {
		t.Fatalf("registered %+v", o)
	}
	if got := r.Orders()[0].Order; got == nil || *got != o {
		t.Fatalf("slot 0 holds %v", got)
	}
	if got := r.History(); !reflect.DeepEqual(got, []order.Order{o}) {
		t.Fatalf("history %+v", got)
	}
	if got := r.ByTable(); !reflect.DeepEqual(got, []order.Order{o}) {
		t.Fatalf("by table %+v", got)
	}
	if got := r.Urgent(); !reflect.DeepEqual(got, []order.Order{o}) {
		t.Fatalf("urgent %+v", got)
	}

	edited := order.New("bea", "9", "gazpacho")
	if err := r.EditOrder(0, edited); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got := *r.Orders()[0].Order; got != edited {
		t.Fatalf("slot 0 holds %+v", got)
	}
	if r.History()[0] != o || r.ByTable()[0] != o || r.Urgent()[0] != o {
		t.Fatal("editing the circular log leaked into another view")
	}

	if err := r.EditUrgent(0, edited); err != nil {
		t.Fatalf("edit urgent: %v", err)
	}
	if r.History()[0] != o || r.ByTable()[0] != o {
		t.Fatal("editing the urgent stack leaked into another view")
	}
}

func TestRegistryNonUrgentSkipsStack(t *testing.T) {
	r := New()
	p := r.PlaceOrder(order.New("ana", "1", "soup"), false)
	if p.UrgentPos != -1 || p.Slot != 0 || p.Replaced != nil {
		t.Fatalf("placement %+v", p)
	}
	if len(r.Urgent()) != 0 {
		t.Fatal("non-urgent order was pushed")
	}
	if _, _, err := r.PopUrgent(); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("pop: %v", err)
	}
}

func TestRegistryReportsOverwrite(t *testing.T) {
	r := NewWithOptions(Options{Slots: 2})
	first := r.RegisterOrder("a", "1", "x", false)
	r.RegisterOrder("b", "2", "x", false)
	p := r.PlaceOrder(order.New("c", "3", "x"), false)
	if p.Slot != 0 || p.Replaced == nil || *p.Replaced != first {
		t.Fatalf("placement %+v", p)
	}
	if len(r.History()) != 3 || len(r.ByTable()) != 3 {
		t.Fatal("history and table index must keep overwritten orders")
	}
}

func TestRegistryReservations(t *testing.T) {
	r := New()
	for i := 0; i < 7; i++ {
		r.RegisterReservation(fmt.Sprintf("r%d", i), fmt.Sprint(i))
	}
	got := customers(r.Reservations())
	if !reflect.DeepEqual(got, []string{"r2", "r3", "r4", "r5", "r6"}) {
		t.Fatalf("reservations %v", got)
	}
	b := r.QueueReservation(order.Reservation{Customer: "r7", Table: "7"})
	if b.Evicted == nil || b.Evicted.Customer != "r2" || b.Position != 4 {
		t.Fatalf("booking %+v", b)
	}
	if err := r.EditReservation(0, order.Reservation{Customer: "x", Table: "1"}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if _, err := r.DeleteReservation(5); !errors.Is(err, order.ErrIndexOutOfRange) {
		t.Fatalf("delete: %v", err)
	}
	front, err := r.DequeueReservation()
	if err != nil || front.Customer != "x" {
		t.Fatalf("dequeue: %+v %v", front, err)
	}
}

func TestRegistryFailedOperationsLeaveStateUnchanged(t *testing.T) {
	r := New()
	r.RegisterOrder("a", "1", "x", true)
	r.RegisterReservation("b", "2")
	before := r.Stats()
	orders, urgent, res := r.Orders(), r.Urgent(), r.Reservations()

	o := order.New("z", "z", "z")
	errs := []error{
		r.EditOrder(10, o),
		r.EditOrder(5, o),
		r.EditUrgent(3, o),
		r.EditReservation(-1, order.Reservation{}),
	}
	_, err := r.DeleteOrder(-1)
	errs = append(errs, err)
	_, err = r.DeleteUrgent(1)
	errs = append(errs, err)
	_, err = r.DeleteReservation(1)
	errs = append(errs, err)
	for i, err := range errs {
		if err == nil {
			t.Fatalf("operation %d succeeded", i)
		}
	}

	if !reflect.DeepEqual(before, r.Stats()) ||
		!reflect.DeepEqual(orders, r.Orders()) ||
		!reflect.DeepEqual(urgent, r.Urgent()) ||
		!reflect.DeepEqual(res, r.Reservations()) {
		t.Fatal("failed operations changed the registry")
	}
}

func TestRegistryStats(t *testing.T) {
	r := NewWithOptions(Options{Slots: 3, ReservationCapacity: 2})
	for i := 0; i < 4; i++ {
		r.RegisterOrder("c", fmt.Sprint(i), "d", i%2 == 0)
	}
	r.RegisterReservation("a", "1")
	s := r.Stats()
	want := Stats{
		Slots: 3, Occupied: 3, Cursor: 1, History: 4, Tables: 4, TableHeight: 4,
		Urgent: 2, Reservations: 1, ReservationCapacity: 2,
	}
	if s != want {
		t.Fatalf("stats %+v", s)
	}
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				r.RegisterOrder("c", fmt.Sprint(w*100+i), "d", i%3 == 0)
				r.RegisterReservation("c", fmt.Sprint(i))
				_ = r.Orders()
				_ = r.ByTable()
				r.PopUrgent()
			}
		}(w)
	}
	wg.Wait()
	s := r.Stats()
	if s.History != 400 || s.Tables != 400 {
		t.Fatalf("stats %+v", s)
	}
	if s.Occupied != DefaultSlots || s.Reservations != DefaultReservationCapacity {
		t.Fatalf("bounded structures overflowed: %+v", s)
	}
}
