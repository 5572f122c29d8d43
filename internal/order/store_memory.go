package order

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/Gamertag001/eonova-backend/internal/store"
)

const idPrefix = "o_"

type MemStore struct {
	orders *store.Collection[Order]
}

func NewMemStore() *MemStore {
	return &MemStore{
		orders: store.NewCollection(idPrefix, func(o *Order) *string { return &o.ID }),
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, o Order) (Order, error) {
	return s.orders.Put(o), nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Order, error) {
	o, err := s.orders.Get(id)
	if err != nil {
		return Order{}, fmt.Errorf("order %q: %w", id, err)
	}
	return o, nil
}

func (s *MemStore) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	seq := s.orders.Filter(func(o Order) bool { return o.UserID == userID })
	return slices.Collect(seq), nil
}

func (s *MemStore) UpdateStatus(ctx context.Context, id, status string) (Order, error) {
	o, err := s.orders.Update(id, func(o *Order) { o.Status = status })
	if err != nil {
		return Order{}, fmt.Errorf("order %q: %w", id, err)
	}
	return o, nil
}

func (s *MemStore) Count(ctx context.Context) (int, error) {
	return s.orders.Len(), nil
}

func (s *MemStore) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for o := range s.orders.All() {
		total = total.Add(o.Total)
	}
	return total, nil
}
