// Package lru provides a capacity-bounded caching decorator for structure
// analysis, backed by hashicorp's LRU implementation.
package lru

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	scraper "github.com/jaanak9/dynamic-scraper-api"
)

// DefaultCapacity is the default number of distinct URLs retained.
const DefaultCapacity = 100

// Ensure StructureCache implements scraper.StructureAnalyzer at compile time.
var _ scraper.StructureAnalyzer = (*StructureCache)(nil)

// StructureCache wraps a StructureAnalyzer with a bounded least-recently-used
// cache keyed solely by URL. Two different queries against the same URL reuse
// one structural analysis. Entries never expire by time; only capacity
// pressure evicts. Safe for concurrent use.
type StructureCache struct {
	analyzer scraper.StructureAnalyzer
	cache    *lru.Cache[string, *scraper.PageStructure]
}

// NewStructureCache creates a StructureCache holding up to capacity entries.
// A capacity of zero or less falls back to DefaultCapacity.
func NewStructureCache(analyzer scraper.StructureAnalyzer, capacity int) (*StructureCache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, *scraper.PageStructure](capacity)
	if err != nil {
		return nil, scraper.Errorf(scraper.EINTERNAL, "failed to create cache: %v", err)
	}
	return &StructureCache{analyzer: analyzer, cache: cache}, nil
}

// Analyze returns the cached structure for url, computing and storing it via
// the wrapped analyzer on a miss. Analysis failures are not cached.
func (c *StructureCache) Analyze(ctx context.Context, url string) (*scraper.PageStructure, error) {
	if structure, ok := c.cache.Get(url); ok {
		return structure, nil
	}

	structure, err := c.analyzer.Analyze(ctx, url)
	if err != nil {
		return nil, err
	}
	c.cache.Add(url, structure)
	return structure, nil
}

// Len returns the number of cached entries.
func (c *StructureCache) Len() int {
	return c.cache.Len()
}

// Contains reports whether url is cached without updating recency.
func (c *StructureCache) Contains(url string) bool {
	return c.cache.Contains(url)
}
