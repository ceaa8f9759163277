// Package cache wraps the read-only reference data sources with a JSON
// key/value cache. Cache failures are logged and fall through to the source.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase/interfaces"
)

const (
	keyMaterials   = "materials:all"
	keyTechnicians = "technicians:%t"
	keyCustomers   = "customers:all"
)

// Store is satisfied by infrastructure/cache.RedisCache.
type Store interface {
	Enabled() bool
	Get(ctx context.Context, key string, value interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type CachedCatalog struct {
	next  interfaces.IMaterialCatalog
	store Store
	ttl   time.Duration
}

var _ interfaces.IMaterialCatalog = (*CachedCatalog)(nil)

func NewCachedCatalog(next interfaces.IMaterialCatalog, store Store, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{next: next, store: store, ttl: ttl}
}

func (c *CachedCatalog) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	return cached(ctx, c.store, keyMaterials, c.ttl, c.next.ListMaterials)
}

type CachedDirectory struct {
	next  interfaces.IDirectory
	store Store
	ttl   time.Duration
}

var _ interfaces.IDirectory = (*CachedDirectory)(nil)

func NewCachedDirectory(next interfaces.IDirectory, store Store, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{next: next, store: store, ttl: ttl}
}

func (c *CachedDirectory) ListTechnicians(ctx context.Context, activeOnly bool) ([]entities.Technician, error) {
	return cached(ctx, c.store, fmt.Sprintf(keyTechnicians, activeOnly), c.ttl, func(ctx context.Context) ([]entities.Technician, error) {
		return c.next.ListTechnicians(ctx, activeOnly)
	})
}

func (c *CachedDirectory) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	return cached(ctx, c.store, keyCustomers, c.ttl, c.next.ListCustomers)
}

func cached[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(context.Context) ([]T, error)) ([]T, error) {
	if store == nil || !store.Enabled() {
		return load(ctx)
	}

	var hit []T
	err := store.Get(ctx, key, &hit)
	if err == nil {
		return hit, nil
	}
	log.Debug().Err(err).Str("key", key).Msg("reference cache miss")

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, key, items, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache reference data")
	}
	return items, nil
}
