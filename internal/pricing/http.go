package pricing

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Gamertag001/eonova-backend/internal/store"
	"github.com/Gamertag001/eonova-backend/pkg/kit"
)

type Server struct {
	Engine  *Engine
	Metrics *Metrics
	Log     *zap.Logger
}

func (s *Server) QuoteHandler() http.HandlerFunc  { return s.quote }
func (s *Server) StylesHandler() http.HandlerFunc { return listHandler("styles", Styles) }
func (s *Server) PrintsHandler() http.HandlerFunc { return listHandler("prints", Prints) }
func (s *Server) ColorsHandler() http.HandlerFunc { return listHandler("colors", Colors) }

func listHandler(key string, values []string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteJSON(w, http.StatusOK, map[string][]string{key: values})
	}
}

// quote accepts either a JSON body or query parameters.
func (s *Server) quote(w http.ResponseWriter, r *http.Request) {
	var req Request
	if r.ContentLength > 0 {
		if err := kit.DecodeJSON(w, r, &req); err != nil {
			kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
			return
		}
	} else {
		req = requestFromQuery(r)
	}

	if req.ProductID == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "product_id required", nil)
		return
	}

	q, err := s.Engine.Quote(r.Context(), req)
	if errors.Is(err, store.ErrNotFound) {
		kit.WriteNotFound(w, r, "product", req.ProductID)
		return
	}
	if err != nil {
		if s.Log != nil {
			s.Log.Error("price quote failed", zap.Error(err), zap.String("product_id", req.ProductID))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.Metrics.observe(q)
	kit.WriteJSON(w, http.StatusOK, q)
}

func requestFromQuery(r *http.Request) Request {
	q := r.URL.Query()
	req := Request{
		ProductID:    q.Get("product_id"),
		PrimaryColor: q.Get("primary_color"),
		Style:        q.Get("style"),
	}
	if q.Has("secondary_color") {
		v := q.Get("secondary_color")
		req.SecondaryColor = &v
	}
	if q.Has("print") {
		v := q.Get("print")
		req.Print = &v
	}
	return req
}
