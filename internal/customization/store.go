// Package customization records configured product variants.
package customization

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Customization struct {
	ID             string          `json:"id" db:"id"`
	ProductID      string          `json:"product_id" db:"product_id"`
	PrimaryColor   string          `json:"primary_color" db:"primary_color"`
	SecondaryColor *string         `json:"secondary_color,omitempty" db:"secondary_color"`
	Style          string          `json:"style" db:"style"`
	Print          *string         `json:"print,omitempty" db:"print"`
	Size           string          `json:"size" db:"size"`
	FinalPrice     decimal.Decimal `json:"final_price" db:"final_price"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// Store persists customizations. Create fills in an id when c.ID is empty
// and returns the stored record.
type Store interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, c Customization) (Customization, error)
	Get(ctx context.Context, id string) (Customization, error)
	Count(ctx context.Context) (int, error)
}
