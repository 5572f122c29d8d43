package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keyPrefix = "catalog:"

// CachedStore reads through Redis in front of another Store. Redis errors
// are logged and the inner store answers instead; a cache outage never fails
// a request. Misses for unknown products are not cached.
type CachedStore struct {
	Store
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewCachedStore(inner Store, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachedStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedStore{Store: inner, rdb: rdb, ttl: ttl, log: log}
}

func (s *CachedStore) List(ctx context.Context) ([]Product, error) {
	return readThrough(ctx, s, keyPrefix+"all", func() ([]Product, error) {
		return s.Store.List(ctx)
	})
}

func (s *CachedStore) Get(ctx context.Context, id string) (Product, error) {
	return readThrough(ctx, s, keyPrefix+"product:"+id, func() (Product, error) {
		return s.Store.Get(ctx, id)
	})
}

func (s *CachedStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	key := keyPrefix + "category:" + strings.ToLower(category)
	return readThrough(ctx, s, key, func() ([]Product, error) {
		return s.Store.ListByCategory(ctx, category)
	})
}

func readThrough[T any](ctx context.Context, s *CachedStore, key string, load func() (T, error)) (T, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if jerr := json.Unmarshal(raw, &v); jerr == nil {
			return v, nil
		}
		s.log.Warn("catalog cache: bad entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		s.log.Warn("catalog cache: get failed", zap.String("key", key), zap.Error(err))
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if b, jerr := json.Marshal(v); jerr == nil {
		if serr := s.rdb.Set(ctx, key, b, s.ttl).Err(); serr != nil {
			s.log.Warn("catalog cache: set failed", zap.String("key", key), zap.Error(serr))
		}
	}
	return v, nil
}
