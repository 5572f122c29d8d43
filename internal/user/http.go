package user

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

type createResp struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// Routes is mounted under /users.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.create)
	r.Get("/{id}", s.get)
	return r
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var u User
	if err := kit.DecodeJSON(w, r, &u); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	saved, err := s.Store.Create(r.Context(), u)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("create user failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, createResp{Message: "user created", User: saved})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := s.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		kit.WriteNotFound(w, r, "user", id)
		return
	}
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get user failed", zap.Error(err), zap.String("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, u)
}
