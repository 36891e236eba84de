// api/cache/cache.go
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"sitelens/api/models"
)

// StatsCache is a short-lived TTL cache for computed dashboard results,
// keyed by (site, range). It is injected into the analytics engine and is
// purely best-effort; correctness never depends on a hit.
type StatsCache struct {
	lru *expirable.LRU[string, *models.DashboardStats]
}

// New creates a cache holding up to size entries for ttl each.
func New(size int, ttl time.Duration) *StatsCache {
	return &StatsCache{
		lru: expirable.NewLRU[string, *models.DashboardStats](size, nil, ttl),
	}
}

func (c *StatsCache) Get(key string) (*models.DashboardStats, bool) {
	return c.lru.Get(key)
}

func (c *StatsCache) Set(key string, stats *models.DashboardStats) {
	c.lru.Add(key, stats)
}

// Purge drops every cached result.
func (c *StatsCache) Purge() {
	c.lru.Purge()
}
