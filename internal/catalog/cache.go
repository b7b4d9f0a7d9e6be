package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/metrics"
)

// itemCache is an in-memory LRU of catalog entries keyed by item code,
// with time-based expiration so edits made by other replicas are picked up.
type itemCache struct {
	lru *expirable.LRU[int, domain.Item]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &itemCache{lru: expirable.NewLRU[int, domain.Item](size, nil, ttl)}
}

// Get returns a copy of the cached item.
func (c *itemCache) Get(code int) (*domain.Item, bool) {
	item, ok := c.lru.Get(code)
	if !ok {
		metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}
	metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	return &item, true
}

func (c *itemCache) Set(item *domain.Item) {
	c.lru.Add(item.Code, *item)
}

func (c *itemCache) Invalidate(code int) {
	c.lru.Remove(code)
}

func (c *itemCache) Len() int {
	return c.lru.Len()
}
