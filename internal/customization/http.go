package customization

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Gamertag001/eonova-backend/internal/catalog"
	"github.com/Gamertag001/eonova-backend/internal/store"
	"github.com/Gamertag001/eonova-backend/pkg/kit"
)

// ProductLookup is the slice of the catalog a customization needs.
type ProductLookup interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}

type Server struct {
	Store    Store
	Products ProductLookup
	Log      *zap.Logger
	Now      func() time.Time
}

type createResp struct {
	Message       string        `json:"message"`
	Customization Customization `json:"customization"`
}

// Routes is mounted under /customizations.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.create)
	r.Get("/{id}", s.get)
	return r
}

// Create stores c after checking its product exists. The creation time is
// always set here; any client supplied value is discarded. Nothing is
// written when the product is unknown.
func (s *Server) Create(ctx context.Context, c Customization) (Customization, error) {
	if _, err := s.Products.Get(ctx, c.ProductID); err != nil {
		return Customization{}, fmt.Errorf("customization product: %w", err)
	}

	c.CreatedAt = s.now()
	return s.Store.Create(ctx, c)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := kit.DecodeJSON(w, r, &in); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	c := in.Customization

	saved, err := s.Create(r.Context(), c)
	if errors.Is(err, store.ErrNotFound) {
		kit.WriteNotFound(w, r, "product", c.ProductID)
		return
	}
	if err != nil {
		s.serverError(w, r, "create customization failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, createResp{
		Message:       "customization created",
		Customization: saved,
	})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := s.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		kit.WriteNotFound(w, r, "customization", id)
		return
	}
	if err != nil {
		s.serverError(w, r, "get customization failed", err, zap.String("id", id))
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
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
