// Package api exposes the front desk over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"frontdesk/pkg/desk"
	"frontdesk/pkg/logger"
	"frontdesk/pkg/order"
	"frontdesk/pkg/otel"
)

// Handler serves the registry endpoints.
type Handler struct {
	svc  *desk.Service
	log  *logger.Logger
	feed order.Feed
}

// New creates a handler. feed may be nil when no event journal is configured.
func New(svc *desk.Service, log *logger.Logger, feed order.Feed) *Handler {
	return &Handler{svc: svc, log: log, feed: feed}
}

// RegisterRoutes mounts every registry endpoint on r. Fixed paths are
// registered before their {pos} siblings so "last", "top" and "front" win.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/board", h.board).Methods(http.MethodGet)
	r.HandleFunc("/stats", h.stats).Methods(http.MethodGet)
	r.HandleFunc("/events", h.events).Methods(http.MethodGet)

	orders := r.PathPrefix("/orders").Subrouter()
	orders.HandleFunc("", h.createOrder).Methods(http.MethodPost)
	orders.HandleFunc("", h.listOrders).Methods(http.MethodGet)
	orders.HandleFunc("/history", h.history).Methods(http.MethodGet)
	orders.HandleFunc("/by-table", h.byTable).Methods(http.MethodGet)
	orders.HandleFunc("/last", h.deleteLastOrder).Methods(http.MethodDelete)
	orders.HandleFunc("/{pos}", h.updateOrder).Methods(http.MethodPut)
	orders.HandleFunc("/{pos}", h.deleteOrder).Methods(http.MethodDelete)

	urgent := r.PathPrefix("/urgent").Subrouter()
	urgent.HandleFunc("", h.listUrgent).Methods(http.MethodGet)
	urgent.HandleFunc("/top", h.popUrgent).Methods(http.MethodDelete)
	urgent.HandleFunc("/{pos}", h.updateUrgent).Methods(http.MethodPut)
	urgent.HandleFunc("/{pos}", h.deleteUrgent).Methods(http.MethodDelete)

	res := r.PathPrefix("/reservations").Subrouter()
	res.HandleFunc("", h.createReservation).Methods(http.MethodPost)
	res.HandleFunc("", h.listReservations).Methods(http.MethodGet)
	res.HandleFunc("/front", h.dequeueReservation).Methods(http.MethodDelete)
	res.HandleFunc("/{pos}", h.updateReservation).Methods(http.MethodPut)
	res.HandleFunc("/{pos}", h.deleteReservation).Methods(http.MethodDelete)
}

// orderRequest carries the editable fields of an order.
type orderRequest struct {
	Customer string `json:"customer"`
	Table    string `json:"table"`
	Dish     string `json:"dish"`
	Urgent   bool   `json:"urgent"`
}

// reservationRequest carries the editable fields of a reservation.
type reservationRequest struct {
	Customer string `json:"customer"`
	Table    string `json:"table"`
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// deletedOrder reports an order removed from a position.
type deletedOrder struct {
	Position int         `json:"position"`
	Order    order.Order `json:"order"`
}

// deletedReservation reports a reservation removed from a position.
type deletedReservation struct {
	Position    int               `json:"position"`
	Reservation order.Reservation `json:"reservation"`
}

// createOrderHandler registers a new order.
// @Summary Register order
// @Description Writes the order into the next slot, the history and the table index; urgent orders are also pushed onto the urgent stack. A full log silently overwrites the slot under the cursor.
// @Accept json
// @Produce json
// @Param order body orderRequest true "Order"
// @Success 201 {object} memory.Placement
// @Router /orders [post]
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p := h.svc.RegisterOrder(ctx, req.Customer, req.Table, req.Dish, req.Urgent)
	writeJSON(w, http.StatusCreated, p)
}

// listOrders returns every slot of the order log.
// @Summary List order slots
// @Produce json
// @Success 200 {array} order.Slot
// @Router /orders [get]
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Orders())
}

// history returns every registered order, most recent first.
// @Summary Order history
// @Produce json
// @Success 200 {array} order.Order
// @Router /orders/history [get]
func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.History())
}

// byTable returns every registered order ascending by table.
// @Summary Orders by table
// @Produce json
// @Success 200 {array} order.Order
// @Router /orders/by-table [get]
func (h *Handler) byTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ByTable())
}

// updateOrder edits the order held in a slot.
// @Summary Edit order slot
// @Accept json
// @Produce json
// @Param pos path int true "Slot index"
// @Param order body orderRequest true "Order"
// @Success 200 {object} order.Order
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /orders/{pos} [put]
func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateOrderHandler")
	defer span.End()

	pos, ok := position(w, r)
	if !ok {
		return
	}
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	o := order.New(req.Customer, req.Table, req.Dish)
	if err := h.svc.EditOrder(ctx, pos, o); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// deleteOrder empties a slot.
// @Summary Delete order slot
// @Produce json
// @Param pos path int true "Slot index"
// @Success 200 {object} deletedOrder
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /orders/{pos} [delete]
func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteOrderHandler")
	defer span.End()

	pos, ok := position(w, r)
	if !ok {
		return
	}
	removed, err := h.svc.DeleteOrder(ctx, pos)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedOrder{Position: pos, Order: removed})
}

// deleteLastOrder empties the highest-indexed occupied slot.
// @Summary Delete last order slot
// @Description Scans slots from the highest index down; after wrap-around this is not necessarily the newest order.
// @Produce json
// @Success 200 {object} deletedOrder
// @Failure 404 {object} errorResponse
// @Router /orders/last [delete]
func (h *Handler) deleteLastOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteLastOrderHandler")
	defer span.End()

	slot, removed, err := h.svc.DeleteLastOrder(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedOrder{Position: slot, Order: removed})
}

// listUrgent returns the urgent stack bottom to top.
// @Summary List urgent orders
// @Produce json
// @Success 200 {array} order.Order
// @Router /urgent [get]
func (h *Handler) listUrgent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Urgent())
}

// updateUrgent edits an urgent order by position.
// @Summary Edit urgent order
// @Accept json
// @Produce json
// @Param pos path int true "Stack position"
// @Param order body orderRequest true "Order"
// @Success 200 {object} order.Order
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /urgent/{pos} [put]
func (h *Handler) updateUrgent(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateUrgentHandler")
	defer span.End()

	pos, ok := position(w, r)
	if !ok {
		return
	}
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	o := order.New(req.Customer, req.Table, req.Dish)
	if err := h.svc.EditUrgent(ctx, pos, o); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// deleteUrgent removes an urgent order by position.
// @Summary Delete urgent order
// @Produce json
// @Param pos path int true "Stack position"
// @Success 200 {object} deletedOrder
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /urgent/{pos} [delete]
func (h *Handler) deleteUrgent(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteUrgentHandler")
	defer span.End()

	pos, ok := position(w, r)
	if !ok {
		return
	}
	removed, err := h.svc.DeleteUrgent(ctx, pos)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedOrder{Position: pos, Order: removed})
}

// popUrgent removes the top urgent order.
// @Summary Pop urgent order
// @Produce json
// @Success 200 {object} order.Order
// @Failure 404 {object} errorResponse
// @Router /urgent/top [delete]
func (h *Handler) popUrgent(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "popUrgentHandler")
	defer span.End()

	top, err := h.svc.PopUrgent(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

// createReservation queues a reservation.
// @Summary Add reservation
// @Description Appends to the queue; a full queue silently drops its oldest reservation.
// @Accept json
// @Produce json
// @Param reservation body reservationRequest true "Reservation"
// @Success 201 {object} memory.Booking
// @Router /reservations [post]
func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createReservationHandler")
	defer span.End()

	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.svc.RegisterReservation(ctx, req.Customer, req.Table))
}

// listReservations returns the queue front to back.
// @Summary List reservations
// @Produce json
// @Success 200 {array} order.Reservation
// @Router /reservations [get]
func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Reservations())
}

// updateReservation edits a reservation by position.
// @Summary Edit reservation
// @Accept json
// @Produce json
// @Param pos path int true "Queue position"
// @Param reservation body reservationRequest true "Reservation"
// @Success 200 {object} order.Reservation
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /reservations/{pos} [put]
func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateReservationHandler")
	defer span.End()

	pos, ok := position(w, r)
	if !ok {
		return
	}
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res := order.Reservation{Customer: req.Customer, Table: req.Table}
	if err := h.svc.EditReservation(ctx, pos, res); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// deleteReservation removes a reservation by position.
// @Summary Delete reservation
// @Produce json
// @Param pos path int true "Queue position"
// @Success 200 {object} deletedReservation
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /reservations/{pos} [delete]
func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteReservationHandler")
	defer span.End()

	pos, ok := position(w, r)
	if !ok {
		return
	}
	removed, err := h.svc.DeleteReservation(ctx, pos)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedReservation{Position: pos, Reservation: removed})
}

// dequeueReservation removes the front reservation.
// @Summary Dequeue reservation
// @Produce json
// @Success 200 {object} order.Reservation
// @Failure 404 {object} errorResponse
// @Router /reservations/front [delete]
func (h *Handler) dequeueReservation(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "dequeueReservationHandler")
	defer span.End()

	front, err := h.svc.DequeueReservation(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, front)
}

// board returns every view in one document.
// @Summary Front desk board
// @Produce json
// @Success 200 {object} desk.Board
// @Router /board [get]
func (h *Handler) board(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Board())
}

// stats returns structure sizes.
// @Summary Registry stats
// @Produce json
// @Success 200 {object} memory.Stats
// @Router /stats [get]
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}

// events returns recently journaled events, newest first.
// @Summary Recent events
// @Produce json
// @Param limit query int false "Maximum events" default(50)
// @Success 200 {array} order.Event
// @Failure 503 {object} errorResponse
// @Router /events [get]
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "eventsHandler")
	defer span.End()

	if h.feed == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("no event journal configured"))
		return
	}
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, errors.New("invalid limit"))
			return
		}
		limit = n
	}
	events, err := h.feed.Recent(ctx, limit)
	if err != nil {
		h.log.Error(ctx, "read events", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if events == nil {
		events = []order.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// fail maps registry errors to status codes.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, order.ErrIndexOutOfRange):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		h.log.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, err)
	}
}

func position(w http.ResponseWriter, r *http.Request) (int, bool) {
	pos, err := strconv.Atoi(mux.Vars(r)["pos"])
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("position must be an integer"))
		return 0, false
	}
	return pos, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
