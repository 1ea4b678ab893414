package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/restaurant_svc/config"
	cachemem "github.com/Gunvolt24/restaurant_svc/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/restaurant_svc/internal/cache/redis"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
)

// newRestaurantCache - кэш по CACHE_DRIVER; для "none" возвращает nil.
func newRestaurantCache(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.RestaurantCache, func(), error) {
	noop := func() {}

	switch strings.ToLower(strings.TrimSpace(cfg.Cache.Driver)) {
	case "", "none":
		return nil, noop, nil
	case "memory":
		log.Infof(ctx, "restaurant cache: memory capacity=%d ttl=%s", cfg.Cache.Capacity, cfg.Cache.TTL)
		return cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL), noop, nil
	case "redis":
		client, err := cacheredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, noop, err
		}
		log.Infof(ctx, "restaurant cache: redis addr=%s ttl=%s", cfg.Redis.Addr, cfg.Cache.TTL)
		closeClient := func() {
			if err := client.Close(); err != nil {
				log.Warnf(ctx, "redis close: %v", err)
			}
		}
		return cacheredis.NewRestaurantCache(client, cfg.Cache.TTL, log), closeClient, nil
	default:
		return nil, noop, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}
