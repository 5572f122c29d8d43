package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Gamertag001/eonova-backend/internal/store"
	"github.com/Gamertag001/eonova-backend/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

type listResp struct {
	Products []Product `json:"products"`
}

// Routes is mounted under /products.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/category/{category}", s.byCategory)
	r.Get("/{id}", s.get)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context())
	if err != nil {
		s.serverError(w, r, "list products failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, listResp{Products: nonNil(products)})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		kit.WriteNotFound(w, r, "product", id)
		return
	}
	if err != nil {
		s.serverError(w, r, "get product failed", err, zap.String("id", id))
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) byCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := s.Store.ListByCategory(r.Context(), category)
	if err != nil {
		s.serverError(w, r, "list products by category failed", err, zap.String("category", category))
		return
	}
	kit.WriteJSON(w, http.StatusOK, listResp{Products: nonNil(products)})
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append(fields, zap.Error(err))...)
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}

func nonNil(p []Product) []Product {
	if p == nil {
		return []Product{}
	}
	return p
}
