package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Gamertag001/eonova-backend/internal/customization"
	"github.com/Gamertag001/eonova-backend/internal/store"
	"github.com/Gamertag001/eonova-backend/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
	Now   func() time.Time
	// Created counts stored orders; nil disables it.
	Created prometheus.Counter
}

type createResp struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

type listResp struct {
	Orders []Order `json:"orders"`
}

type statusReq struct {
	Status *string `json:"status"`
}

// createReq is an Order as clients send it. created_at is decoded raw and dropped.
type createReq struct {
	Order
	Customizations []customization.Input `json:"customizations"`
	CreatedAt      json.RawMessage       `json:"created_at,omitempty"`
}

func (req createReq) order() Order {
	o := req.Order
	o.Customizations = make([]customization.Customization, 0, len(req.Customizations))
	for _, c := range req.Customizations {
		o.Customizations = append(o.Customizations, c.Snapshot())
	}
	return o
}

// NewCreatedCounter registers the orders created counter on reg.
func NewCreatedCounter(reg prometheus.Registerer) prometheus.Counter {
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "eonova",
		Name:      "orders_created_total",
		Help:      "Orders stored since process start",
	})
	reg.MustRegister(c)
	return c
}

// Routes is mounted under /orders.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/", s.create)
	r.Get("/user/{userID}", s.listByUser)
	r.Get("/{id}", s.get)
	r.Put("/{id}/status", s.updateStatus)

	return r
}

// Create stamps the order with the server clock and stores it.
func (s *Server) Create(ctx context.Context, o Order) (Order, error) {
	o.CreatedAt = s.now()
	o.Customizations = nonNil(o.Customizations)

	saved, err := s.Store.Create(ctx, o)
	if err != nil {
		return Order{}, err
	}
	if s.Created != nil {
		s.Created.Inc()
	}
	return saved, nil
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	saved, err := s.Create(r.Context(), req.order())
	if err != nil {
		s.serverError(w, r, "create order failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, createResp{Message: "order created", Order: saved})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	o, err := s.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		kit.WriteNotFound(w, r, "order", id)
		return
	}
	if err != nil {
		s.serverError(w, r, "get order failed", err, zap.String("order_id", id))
		return
	}
	kit.WriteJSON(w, http.StatusOK, o)
}

func (s *Server) listByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	orders, err := s.Store.ListByUser(r.Context(), userID)
	if err != nil {
		s.serverError(w, r, "list orders failed", err, zap.String("user_id", userID))
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	kit.WriteJSON(w, http.StatusOK, listResp{Orders: orders})
}

// updateStatus takes the new status from ?status= or a {"status": ...} body.
// Any string is stored as given, empty included; only a missing status is rejected.
func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	q := r.URL.Query()
	status, given := q.Get("status"), q.Has("status")
	if !given && r.ContentLength > 0 {
		var req statusReq
		if err := kit.DecodeJSON(w, r, &req); err != nil {
			kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
			return
		}
		if req.Status != nil {
			status, given = *req.Status, true
		}
	}
	if !given {
		kit.WriteError(w, r, http.StatusBadRequest, "status required", nil)
		return
	}

	o, err := s.Store.UpdateStatus(r.Context(), id, status)
	if errors.Is(err, store.ErrNotFound) {
		kit.WriteNotFound(w, r, "order", id)
		return
	}
	if err != nil {
		s.serverError(w, r, "update order status failed", err, zap.String("order_id", id))
		return
	}

	kit.WriteJSON(w, http.StatusOK, createResp{Message: "order status updated", Order: o})
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append(fields, zap.Error(err))...)
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
