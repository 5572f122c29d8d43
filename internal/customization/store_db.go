package customization

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Gamertag001/eonova-backend/internal/db"
	"github.com/Gamertag001/eonova-backend/internal/store"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return db.WithTimeout(ctx, pingTimeout, s.db.PingContext)
}

func (s *PostgresStore) Create(ctx context.Context, c Customization) (Customization, error) {
	if c.ID == "" {
		c.ID = idPrefix + uuid.NewString()
	}

	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.NamedExecContext(ctx, `
			INSERT INTO customizations
				(id, product_id, primary_color, secondary_color, style, print, size, final_price, created_at)
			VALUES
				(:id, :product_id, :primary_color, :secondary_color, :style, :print, :size, :final_price, :created_at)
			ON CONFLICT (id) DO UPDATE SET
				product_id = EXCLUDED.product_id,
				primary_color = EXCLUDED.primary_color,
				secondary_color = EXCLUDED.secondary_color,
				style = EXCLUDED.style,
				print = EXCLUDED.print,
				size = EXCLUDED.size,
				final_price = EXCLUDED.final_price,
				created_at = EXCLUDED.created_at
		`, c)
		return err
	})
	if err != nil {
		return Customization{}, fmt.Errorf("insert customization: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Customization, error) {
	var c Customization
	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &c, `
			SELECT id, product_id, primary_color, secondary_color, style, print, size, final_price, created_at
			FROM customizations
			WHERE id = $1
		`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return Customization{}, fmt.Errorf("customization %q: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return Customization{}, fmt.Errorf("get customization %q: %w", id, err)
	}
	return c, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := db.WithTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.GetContext(ctx, &n, `SELECT count(*) FROM customizations`)
	})
	if err != nil {
		return 0, fmt.Errorf("count customizations: %w", err)
	}
	return n, nil
}
