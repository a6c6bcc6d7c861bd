package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/redis"
)

const servicesKeyPrefix = "services:"

// CachedStore serves the public service views from Redis and drops them on
// every service write. Cache failures fall through to the wrapped store.
type CachedStore struct {
	Store
	cache *redis.Cache
}

func NewCachedStore(store Store, cache *redis.Cache) *CachedStore {
	return &CachedStore{Store: store, cache: cache}
}

func serviceListKey(f ServiceFilter) string {
	return servicesKeyPrefix + "list:" + strings.ToLower(f.Category) + ":" + strings.ToLower(f.Query)
}

func serviceItemKey(id string) string {
	return servicesKeyPrefix + "item:" + id
}

func (s *CachedStore) ListServiceViews(ctx context.Context, filter ServiceFilter) ([]models.ServiceView, error) {
	key := serviceListKey(filter)

	var views []models.ServiceView
	if ok, err := s.cache.Get(ctx, key, &views); err != nil {
		slog.Warn("service cache read failed", "key", key, "error", err)
	} else if ok {
		return views, nil
	}

	views, err := s.Store.ListServiceViews(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, views); err != nil {
		slog.Warn("service cache write failed", "key", key, "error", err)
	}
	return views, nil
}

func (s *CachedStore) GetServiceView(ctx context.Context, id string) (*models.ServiceView, error) {
	key := serviceItemKey(id)

	var view models.ServiceView
	if ok, err := s.cache.Get(ctx, key, &view); err != nil {
		slog.Warn("service cache read failed", "key", key, "error", err)
	} else if ok {
		return &view, nil
	}

	v, err := s.Store.GetServiceView(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, v); err != nil {
		slog.Warn("service cache write failed", "key", key, "error", err)
	}
	return v, nil
}

func (s *CachedStore) CreateService(ctx context.Context, service *models.Service) error {
	if err := s.Store.CreateService(ctx, service); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CachedStore) UpdateServiceImage(ctx context.Context, id, imageURL string) (*models.Service, error) {
	svc, err := s.Store.UpdateServiceImage(ctx, id, imageURL)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return svc, nil
}

func (s *CachedStore) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, servicesKeyPrefix); err != nil {
		slog.Warn("service cache invalidation failed", "error", err)
	}
}
