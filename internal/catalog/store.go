// Package catalog serves the fixed product catalog.
package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Description string          `json:"description"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	Image       string          `json:"image"`
}

// Store is read-only: the catalog is seeded at startup and never mutated.
// Get returns store.ErrNotFound for unknown ids.
type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	Count(ctx context.Context) (int, error)
}
