package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/restaurant_svc/config"
	cachemem "github.com/Gunvolt24/restaurant_svc/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/restaurant_svc/internal/cache/redis"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestNewRestaurantCache_Drivers(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := &config.Config{}
	cfg.Cache.Capacity = 10

	cfg.Cache.Driver = "none"
	c, closeFn, err := newRestaurantCache(ctx, cfg, nopLogger{})
	require.NoError(t, err)
	require.Nil(t, c)
	closeFn()

	cfg.Cache.Driver = "Memory"
	c, closeFn, err = newRestaurantCache(ctx, cfg, nopLogger{})
	require.NoError(t, err)
	require.IsType(t, &cachemem.LRUCacheTTL{}, c)
	closeFn()

	cfg.Cache.Driver = "redis"
	cfg.Redis.Addr = mr.Addr()
	c, closeFn, err = newRestaurantCache(ctx, cfg, nopLogger{})
	require.NoError(t, err)
	require.IsType(t, &cacheredis.RestaurantCache{}, c)
	closeFn()

	cfg.Cache.Driver = "memcached"
	_, _, err = newRestaurantCache(ctx, cfg, nopLogger{})
	require.Error(t, err)
}

func TestNewRestaurantCache_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := &config.Config{}
	cfg.Cache.Driver = "redis"
	cfg.Redis.Addr = addr

	_, _, err := newRestaurantCache(context.Background(), cfg, nopLogger{})
	require.Error(t, err)
}

func TestApplyGinMode(t *testing.T) {
	applyGinMode(context.Background(), "release", nopLogger{})
	require.Equal(t, gin.ReleaseMode, gin.Mode())

	applyGinMode(context.Background(), "weird", nopLogger{})
	require.Equal(t, gin.DebugMode, gin.Mode())

	applyGinMode(context.Background(), "test", nopLogger{})
	require.Equal(t, gin.TestMode, gin.Mode())
}

func TestWithCORS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	h := withCORS(inner, []string{"https://shop.example"})
	req := httptest.NewRequest(http.MethodGet, "/v1/dishes/1", http.NoBody)
	req.Header.Set("Origin", "https://shop.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	h = withCORS(inner, nil)
	req.Header.Set("Origin", "https://shop.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
