package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/Gamertag001/eonova-backend/internal/app"
	"github.com/Gamertag001/eonova-backend/internal/catalog"
	"github.com/Gamertag001/eonova-backend/internal/config"
	"github.com/Gamertag001/eonova-backend/internal/db"
	"github.com/Gamertag001/eonova-backend/pkg/kit"
)

const (
	service      = "eonova"
	startTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	stores := app.NewMemStores()
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("postgres connect failed", zap.Error(err))
		}
		defer func() { _ = conn.Close() }()

		if err := db.Migrate(conn, log); err != nil {
			log.Fatal("postgres migrate failed", zap.Error(err))
		}
		stores = app.NewPostgresStores(conn)
		log.Info("using postgres stores")
	} else {
		log.Info("using in-memory stores")
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, catalog reads fall through", zap.Error(err))
		}
		stores.Products = catalog.NewCachedStore(stores.Products, rdb, cfg.CacheTTL, log)
		log.Info("catalog cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := app.NewHandler(stores, app.HTTPDeps{
		Log:              log,
		Service:          service,
		Registry:         reg,
		MetricsEnabled:   cfg.MetricsEnabled,
		MetricsToken:     cfg.MetricsToken,
		WriteLimitPerMin: cfg.WriteLimitPerMin,
	})

	if err := kit.RunHTTPServer(cfg.Addr(), h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
