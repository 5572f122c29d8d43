package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/Gamertag001/eonova-backend/internal/db"
	"github.com/Gamertag001/eonova-backend/internal/store"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second

	selectProducts = `
		SELECT id, name, category, base_price, description, sizes, colors, image
		FROM products`
)

type productRow struct {
	ID          string            `db:"id"`
	Name        string            `db:"name"`
	Category    string            `db:"category"`
	BasePrice   decimal.Decimal   `db:"base_price"`
	Description string            `db:"description"`
	Sizes       db.JSON[[]string] `db:"sizes"`
	Colors      db.JSON[[]string] `db:"colors"`
	Image       string            `db:"image"`
}

func (r productRow) product() Product {
	return Product{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		BasePrice:   r.BasePrice,
		Description: r.Description,
		Sizes:       r.Sizes.V,
		Colors:      r.Colors.V,
		Image:       r.Image,
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

func (s *PostgresStore) List(ctx context.Context) ([]Product, error) {
	return s.selectProducts(ctx, selectProducts+` ORDER BY seq ASC`)
}

func (s *PostgresStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.selectProducts(ctx, selectProducts+` WHERE lower(category) = lower($1) ORDER BY seq ASC`, category)
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Product, error) {
	var row productRow
	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &row, selectProducts+` WHERE id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, fmt.Errorf("product %q: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return Product{}, fmt.Errorf("get product %q: %w", id, err)
	}
	return row.product(), nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &n, `SELECT count(*) FROM products`)
	})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) selectProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	var rows []productRow
	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.product())
	}
	return out, nil
}
