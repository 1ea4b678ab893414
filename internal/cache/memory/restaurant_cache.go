package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
	"github.com/Gunvolt24/restaurant_svc/pkg/metrics"
	"github.com/zoobzio/clockz"
)

var _ ports.RestaurantCache = (*LRUCacheTTL)(nil)

type entry struct {
	id         int64
	restaurant *domain.Restaurant
	expiresAt  time.Time
}

// LRUCacheTTL - LRU-кэш снимков ресторанов с TTL от момента записи.
// TTL не продлевается при чтении: он ограничивает возраст снимка.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration
	clock    clockz.Clock

	ll    *list.List
	index map[int64]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL - capacity <= 0 трактуется как 1, ttl <= 0 отключает истечение.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		clock:    clockz.RealClock,
		ll:       list.New(),
		index:    make(map[int64]*list.Element),
	}
}

// WithClock - подмена часов (для тестов).
func (c *LRUCacheTTL) WithClock(clock clockz.Clock) *LRUCacheTTL {
	c.clock = clock
	return c
}

func (c *LRUCacheTTL) Get(_ context.Context, id int64) (*domain.Restaurant, bool) {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.restaurant.Clone(), true
}

func (c *LRUCacheTTL) Set(_ context.Context, r *domain.Restaurant) error {
	if r == nil {
		return nil
	}
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[r.ID]; ok {
		ent := elem.Value.(*entry)
		ent.restaurant = r.Clone()
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:         r.ID,
		restaurant: r.Clone(),
		expiresAt:  c.expiryFrom(now),
	})
	c.index[r.ID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

func (c *LRUCacheTTL) Invalidate(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[id]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("invalidated").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
	return nil
}

// Len - число записей, включая еще не вычищенные просроченные.
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
