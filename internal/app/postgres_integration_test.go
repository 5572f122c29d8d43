//go:build integration

package app_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gamertag001/eonova-backend/internal/app"
	"github.com/Gamertag001/eonova-backend/internal/customization"
	"github.com/Gamertag001/eonova-backend/internal/db"
	"github.com/Gamertag001/eonova-backend/internal/order"
	"github.com/Gamertag001/eonova-backend/internal/stats"
	"github.com/Gamertag001/eonova-backend/internal/store"
	"github.com/Gamertag001/eonova-backend/internal/user"
)

func TestPostgresStores(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := db.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.Migrate(conn, zap.NewNop()))

	st := app.NewPostgresStores(conn)
	require.NoError(t, st.Products.Ping(ctx))

	p, err := st.Products.Get(ctx, "classic-hoodie")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(45).Equal(p.BasePrice))

	hoodies, err := st.Products.ListByCategory(ctx, "HOODIES")
	require.NoError(t, err)
	require.Len(t, hoodies, 1)

	_, err = st.Products.Get(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)

	logo := "logo"
	c, err := st.Customizations.Create(ctx, customization.Customization{
		ProductID:    p.ID,
		PrimaryColor: "navy",
		Style:        "vintage",
		Print:        &logo,
		Size:         "L",
		FinalPrice:   decimal.RequireFromString("56.00"),
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	gotC, err := st.Customizations.Get(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, gotC.Print)
	assert.Equal(t, logo, *gotC.Print)
	assert.Nil(t, gotC.SecondaryColor)

	u, err := st.Users.Create(ctx, user.User{Name: "PG", Email: "pg@example.com"})
	require.NoError(t, err)

	before, err := stats.Compute(ctx, stats.Sources{
		Products: st.Products, Customizations: st.Customizations, Orders: st.Orders, Users: st.Users,
	})
	require.NoError(t, err)

	o, err := st.Orders.Create(ctx, order.Order{
		UserID:         u.ID,
		Customizations: []customization.Customization{gotC},
		Total:          decimal.RequireFromString("56.00"),
		Status:         "pending",
		CreatedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	updated, err := st.Orders.UpdateStatus(ctx, o.ID, "paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", updated.Status)
	require.Len(t, updated.Customizations, 1)
	assert.Equal(t, gotC.ID, updated.Customizations[0].ID)

	mine, err := st.Orders.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	after, err := stats.Compute(ctx, stats.Sources{
		Products: st.Products, Customizations: st.Customizations, Orders: st.Orders, Users: st.Users,
	})
	require.NoError(t, err)
	assert.Equal(t, before.TotalOrders+1, after.TotalOrders)
	assert.True(t, before.TotalSales.Add(decimal.RequireFromString("56.00")).Equal(after.TotalSales))

	// Money is kept at full precision so both backends round the same way.
	salesBefore, err := st.Orders.TotalSales(ctx)
	require.NoError(t, err)
	third := decimal.RequireFromString("0.125")
	precise, err := st.Orders.Create(ctx, order.Order{
		UserID:         u.ID,
		Customizations: []customization.Customization{},
		Total:          third,
		Status:         " ",
		CreatedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)
	stored, err := st.Orders.Get(ctx, precise.ID)
	require.NoError(t, err)
	assert.True(t, third.Equal(stored.Total), "total=%s", stored.Total)
	assert.Equal(t, " ", stored.Status)
	assert.Empty(t, stored.Customizations)
	assert.NotNil(t, stored.Customizations)

	salesAfter, err := st.Orders.TotalSales(ctx)
	require.NoError(t, err)
	assert.True(t, third.Equal(salesAfter.Sub(salesBefore)), "delta=%s", salesAfter.Sub(salesBefore))

	cheap, err := st.Customizations.Create(ctx, customization.Customization{
		ProductID:  p.ID,
		FinalPrice: third,
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
	gotCheap, err := st.Customizations.Get(ctx, cheap.ID)
	require.NoError(t, err)
	assert.True(t, third.Equal(gotCheap.FinalPrice), "final_price=%s", gotCheap.FinalPrice)

	_, err = st.Orders.UpdateStatus(ctx, "o_missing", "paid")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
