package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Gamertag001/eonova-backend/internal/customization"
	"github.com/Gamertag001/eonova-backend/internal/db"
	"github.com/Gamertag001/eonova-backend/internal/store"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second

	orderColumns = `id, user_id, customizations, total, status, created_at, shipping_address`
)

type orderRow struct {
	ID              string                                 `db:"id"`
	UserID          string                                 `db:"user_id"`
	Customizations  db.JSON[[]customization.Customization] `db:"customizations"`
	Total           decimal.Decimal                        `db:"total"`
	Status          string                                 `db:"status"`
	CreatedAt       time.Time                              `db:"created_at"`
	ShippingAddress string                                 `db:"shipping_address"`
}

func toRow(o Order) orderRow {
	return orderRow{
		ID:              o.ID,
		UserID:          o.UserID,
		Customizations:  db.JSON[[]customization.Customization]{V: nonNil(o.Customizations)},
		Total:           o.Total,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		ShippingAddress: o.ShippingAddress,
	}
}

func (r orderRow) order() Order {
	return Order{
		ID:              r.ID,
		UserID:          r.UserID,
		Customizations:  nonNil(r.Customizations.V),
		Total:           r.Total,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		ShippingAddress: r.ShippingAddress,
	}
}

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return db.WithTimeout(ctx, pingTimeout, s.db.PingContext)
}

func (s *PostgresStore) Create(ctx context.Context, o Order) (Order, error) {
	if o.ID == "" {
		o.ID = idPrefix + uuid.NewString()
	}

	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.NamedExecContext(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES (:id, :user_id, :customizations, :total, :status, :created_at, :shipping_address)
			ON CONFLICT (id) DO UPDATE SET
				user_id = EXCLUDED.user_id,
				customizations = EXCLUDED.customizations,
				total = EXCLUDED.total,
				status = EXCLUDED.status,
				created_at = EXCLUDED.created_at,
				shipping_address = EXCLUDED.shipping_address
		`, toRow(o))
		return err
	})
	if err != nil {
		return Order{}, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Order, error) {
	var row orderRow
	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &row, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, fmt.Errorf("order %q: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return Order{}, fmt.Errorf("get order %q: %w", id, err)
	}
	return row.order(), nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var rows []orderRow
	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.SelectContext(ctx, &rows, `
			SELECT `+orderColumns+`
			FROM orders
			WHERE user_id = $1
			ORDER BY seq ASC
		`, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("list orders for user %q: %w", userID, err)
	}

	out := make([]Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.order())
	}
	return out, nil
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id, status string) (Order, error) {
	var row orderRow
	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &row, `
			UPDATE orders SET status = $2
			WHERE id = $1
			RETURNING `+orderColumns, id, status)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, fmt.Errorf("order %q: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return Order{}, fmt.Errorf("update order %q status: %w", id, err)
	}
	return row.order(), nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &n, `SELECT count(*) FROM orders`)
	})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(total), 0) FROM orders`)
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum order totals: %w", err)
	}
	return total, nil
}
