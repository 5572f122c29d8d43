// Package stats aggregates counts across every store for the dashboard.
package stats

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Gamertag001/eonova-backend/pkg/kit"
)

type Counter interface {
	Count(ctx context.Context) (int, error)
}

type SalesLedger interface {
	Counter
	TotalSales(ctx context.Context) (decimal.Decimal, error)
}

type Sources struct {
	Products       Counter
	Customizations Counter
	Users          Counter
	Orders         SalesLedger
}

type Snapshot struct {
	TotalProducts       int             `json:"total_products"`
	TotalCustomizations int             `json:"total_customizations"`
	TotalOrders         int             `json:"total_orders"`
	TotalUsers          int             `json:"total_users"`
	TotalSales          decimal.Decimal `json:"total_sales"`
}

// Compute reads every source once. Sales are summed unrounded by the order
// store and rounded here, half to even, to two places.
func Compute(ctx context.Context, src Sources) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)

	if snap.TotalProducts, err = src.Products.Count(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("count products: %w", err)
	}
	if snap.TotalCustomizations, err = src.Customizations.Count(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("count customizations: %w", err)
	}
	if snap.TotalOrders, err = src.Orders.Count(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("count orders: %w", err)
	}
	if snap.TotalUsers, err = src.Users.Count(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("count users: %w", err)
	}

	sales, err := src.Orders.TotalSales(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("total sales: %w", err)
	}
	snap.TotalSales = sales.RoundBank(2)

	return snap, nil
}

type Server struct {
	Sources Sources
	Log     *zap.Logger
}

func (s *Server) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := Compute(r.Context(), s.Sources)
		if err != nil {
			if s.Log != nil {
				s.Log.Error("stats failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
			return
		}
		kit.WriteJSON(w, http.StatusOK, snap)
	}
}
