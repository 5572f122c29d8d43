package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Gamertag001/eonova-backend/internal/catalog"
	"github.com/Gamertag001/eonova-backend/internal/customization"
	"github.com/Gamertag001/eonova-backend/internal/order"
	"github.com/Gamertag001/eonova-backend/internal/user"
)

// Stores is the repository: one store per collection.
type Stores struct {
	Products       catalog.Store
	Customizations customization.Store
	Orders         order.Store
	Users          user.Store
}

// NewMemStores returns empty in-memory stores with the seed catalog loaded.
func NewMemStores() Stores {
	return Stores{
		Products:       catalog.NewMemStore(),
		Customizations: customization.NewMemStore(),
		Orders:         order.NewMemStore(),
		Users:          user.NewMemStore(),
	}
}

// NewPostgresStores expects the schema to be migrated already.
func NewPostgresStores(db *sqlx.DB) Stores {
	return Stores{
		Products:       catalog.NewPostgresStore(db),
		Customizations: customization.NewPostgresStore(db),
		Orders:         order.NewPostgresStore(db),
		Users:          user.NewPostgresStore(db),
	}
}

func (s Stores) ping(ctx context.Context) error {
	checks := []struct {
		name string
		ping func(context.Context) error
	}{
		{"products", s.Products.Ping},
		{"customizations", s.Customizations.Ping},
		{"orders", s.Orders.Ping},
		{"users", s.Users.Ping},
	}
	for _, c := range checks {
		if err := c.ping(ctx); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}
