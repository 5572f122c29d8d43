// Package order records orders of customized products.
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Gamertag001/eonova-backend/internal/customization"
)

// Order.Status is free text stored exactly as the client sends it; no
// transitions are enforced.
type Order struct {
	ID              string                        `json:"id"`
	UserID          string                        `json:"user_id"`
	Customizations  []customization.Customization `json:"customizations"`
	Total           decimal.Decimal               `json:"total"`
	Status          string                        `json:"status"`
	CreatedAt       time.Time                     `json:"created_at"`
	ShippingAddress string                        `json:"shipping_address"`
}

// Store persists orders. UserID is never checked against the user store.
type Store interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, o Order) (Order, error)
	Get(ctx context.Context, id string) (Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	UpdateStatus(ctx context.Context, id, status string) (Order, error)
	Count(ctx context.Context) (int, error)
	// TotalSales is the unrounded sum of every order total.
	TotalSales(ctx context.Context) (decimal.Decimal, error)
}

func nonNil(cs []customization.Customization) []customization.Customization {
	if cs == nil {
		return []customization.Customization{}
	}
	return cs
}
