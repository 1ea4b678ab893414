// Package redis - кэш снимков ресторанов в Redis (JSON + TTL).
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
	"github.com/Gunvolt24/restaurant_svc/pkg/metrics"
	goredis "github.com/redis/go-redis/v9"
)

var _ ports.RestaurantCache = (*RestaurantCache)(nil)

const keyPrefix = "restaurant:"

// RestaurantCache - общий для реплик сервиса кэш; TTL задается при записи.
type RestaurantCache struct {
	client *goredis.Client
	ttl    time.Duration
	log    ports.Logger
}

func NewRestaurantCache(client *goredis.Client, ttl time.Duration, log ports.Logger) *RestaurantCache {
	return &RestaurantCache{client: client, ttl: ttl, log: log}
}

// NewClient - клиент go-redis с проверкой соединения.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func key(id int64) string { return keyPrefix + strconv.FormatInt(id, 10) }

// Get - ошибки Redis и битые записи считаются промахом.
func (c *RestaurantCache) Get(ctx context.Context, id int64) (*domain.Restaurant, bool) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		c.log.Warnf(ctx, "redis get failed restaurant_id=%d err=%v", id, err)
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}

	var r domain.Restaurant
	if err := json.Unmarshal(raw, &r); err != nil {
		c.log.Warnf(ctx, "redis entry corrupted restaurant_id=%d err=%v", id, err)
		_ = c.client.Del(ctx, key(id)).Err()
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return &r, true
}

func (c *RestaurantCache) Set(ctx context.Context, r *domain.Restaurant) error {
	if r == nil {
		return nil
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal restaurant: %w", err)
	}
	if err := c.client.Set(ctx, key(r.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RestaurantCache) Invalidate(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	metrics.CacheOps.WithLabelValues("invalidated").Inc()
	return nil
}
