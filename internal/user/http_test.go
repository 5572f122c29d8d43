package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gamertag001/eonova-backend/internal/store"
	"github.com/Gamertag001/eonova-backend/internal/user"
)

func newRouter(st user.Store) chi.Router {
	r := chi.NewRouter()
	r.Mount("/users", (&user.Server{Store: st, Log: zap.NewNop()}).Routes())
	return r
}

func TestHTTP_CreateUser_GeneratesID(t *testing.T) {
	st := user.NewMemStore()
	router := newRouter(st)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"id":"","name":"Ana","email":"ana@example.com"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created struct {
		Message string    `json:"message"`
		User    user.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.True(t, strings.HasPrefix(created.User.ID, "u_"), "id=%s", created.User.ID)
	assert.Nil(t, created.User.Phone)

	stored, err := st.Get(context.Background(), created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", stored.Email)
}

func TestHTTP_GetUser(t *testing.T) {
	st := user.NewMemStore()
	phone := "+54 11 5555 0000"
	_, err := st.Create(context.Background(), user.User{ID: "u_fixed", Name: "Leo", Email: "leo@example.com", Phone: &phone})
	require.NoError(t, err)
	router := newRouter(st)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/u_fixed", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var got user.User
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.NotNil(t, got.Phone)
	assert.Equal(t, phone, *got.Phone)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/u_missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHTTP_CreateUser_BadJSON(t *testing.T) {
	router := newRouter(user.NewMemStore())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"name":1}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMemStore_GetUnknown(t *testing.T) {
	_, err := user.NewMemStore().Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
