package customization

import (
	"context"
	"fmt"

	"github.com/Gamertag001/eonova-backend/internal/store"
)

const idPrefix = "c_"

type MemStore struct {
	items *store.Collection[Customization]
}

func NewMemStore() *MemStore {
	return &MemStore{
		items: store.NewCollection(idPrefix, func(c *Customization) *string { return &c.ID }),
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, c Customization) (Customization, error) {
	return s.items.Put(c), nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Customization, error) {
	c, err := s.items.Get(id)
	if err != nil {
		return Customization{}, fmt.Errorf("customization %q: %w", id, err)
	}
	return c, nil
}

func (s *MemStore) Count(ctx context.Context) (int, error) {
	return s.items.Len(), nil
}
