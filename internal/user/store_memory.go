package user

import (
	"context"
	"fmt"

	"github.com/Gamertag001/eonova-backend/internal/store"
)

const idPrefix = "u_"

type MemStore struct {
	users *store.Collection[User]
}

func NewMemStore() *MemStore {
	return &MemStore{users: store.NewCollection(idPrefix, func(u *User) *string { return &u.ID })}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, u User) (User, error) {
	return s.users.Put(u), nil
}

func (s *MemStore) Get(ctx context.Context, id string) (User, error) {
	u, err := s.users.Get(id)
	if err != nil {
		return User{}, fmt.Errorf("user %q: %w", id, err)
	}
	return u, nil
}

func (s *MemStore) Count(ctx context.Context) (int, error) {
	return s.users.Len(), nil
}
