package economy

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

type cachedLeaderboard struct {
	Version  string
	Entries  []domain.LeaderboardEntry
	CachedAt time.Time
}

// leaderboardCache holds recent leaderboard reads keyed by limit
type leaderboardCache struct {
	lru *expirable.LRU[int, *cachedLeaderboard]
}

func newLeaderboardCache(size int, ttl time.Duration) *leaderboardCache {
	return &leaderboardCache{
		lru: expirable.NewLRU[int, *cachedLeaderboard](size, nil, ttl),
	}
}

// Get returns a copy of the cached entries for limit
func (c *leaderboardCache) Get(limit int) ([]domain.LeaderboardEntry, bool) {
	entry, found := c.lru.Get(limit)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(limit)
		return nil, false
	}
	return append([]domain.LeaderboardEntry(nil), entry.Entries...), true
}

func (c *leaderboardCache) Set(limit int, entries []domain.LeaderboardEntry) {
	c.lru.Add(limit, &cachedLeaderboard{
		Version:  CacheSchemaVersion,
		Entries:  append([]domain.LeaderboardEntry(nil), entries...),
		CachedAt: time.Now(),
	})
}
