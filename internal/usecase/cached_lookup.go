package usecase

import (
	"context"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
)

// CachedRestaurantLookup - RestaurantLookup поверх кэша: при промахе читает хранилище и кладет снимок в кэш.
type CachedRestaurantLookup struct {
	next  ports.RestaurantLookup
	cache ports.RestaurantCache
	log   ports.Logger
}

var _ ports.RestaurantLookup = (*CachedRestaurantLookup)(nil)

func NewCachedRestaurantLookup(next ports.RestaurantLookup, cache ports.RestaurantCache, log ports.Logger) *CachedRestaurantLookup {
	return &CachedRestaurantLookup{next: next, cache: cache, log: log}
}

// GetByID - сначала кэш, при промахе хранилище. Ошибки кэша не прерывают чтение.
func (c *CachedRestaurantLookup) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	if r, found := c.cache.Get(ctx, id); found {
		return r, nil
	}

	r, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if r == nil {
		return nil, nil
	}
	if setErr := c.cache.Set(ctx, r); setErr != nil {
		c.log.Warnf(ctx, "cache.Set failed restaurant_id=%d err=%v", id, setErr)
	}
	return r, nil
}
