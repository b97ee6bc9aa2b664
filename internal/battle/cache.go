package battle

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedReportEntry wraps a report with version metadata for cache invalidation
type cachedReportEntry struct {
	Version  string
	Report   *Report
	CachedAt time.Time
}

// reportCache keeps finished battle reports in an LRU with time-based
// expiration. The LRU locks internally, so the cache is safe for
// concurrent handlers.
type reportCache struct {
	lru *expirable.LRU[string, *cachedReportEntry]
}

// newReportCache creates a cache holding at most size reports for ttl
func newReportCache(size int, ttl time.Duration) *reportCache {
	return &reportCache{
		lru: expirable.NewLRU[string, *cachedReportEntry](size, nil, ttl),
	}
}

// Get returns a stored report. Entries written under another schema
// version are dropped.
func (c *reportCache) Get(id string) (*Report, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}

	return entry.Report, true
}

// Set stores a report under its id
func (c *reportCache) Set(report *Report) {
	c.lru.Add(report.ID, &cachedReportEntry{
		Version:  CacheSchemaVersion,
		Report:   report,
		CachedAt: time.Now(),
	})
}

// Len is the number of live entries
func (c *reportCache) Len() int {
	return c.lru.Len()
}
