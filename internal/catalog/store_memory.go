package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Gamertag001/eonova-backend/internal/store"
)

type MemStore struct {
	products *store.Collection[Product]
}

// NewMemStore returns a store holding products, or the default seed when
// none are given.
func NewMemStore(products ...Product) *MemStore {
	if len(products) == 0 {
		products = Seed()
	}
	s := &MemStore{products: store.NewCollection("p_", func(p *Product) *string { return &p.ID })}
	for _, p := range products {
		s.products.Put(p)
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	return slices.Collect(s.products.All()), nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Product, error) {
	p, err := s.products.Get(id)
	if err != nil {
		return Product{}, fmt.Errorf("product %q: %w", id, err)
	}
	return p, nil
}

func (s *MemStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	seq := s.products.Filter(func(p Product) bool {
		return strings.EqualFold(p.Category, category)
	})
	return slices.Collect(seq), nil
}

func (s *MemStore) Count(ctx context.Context) (int, error) {
	return s.products.Len(), nil
}
