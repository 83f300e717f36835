package server

import (
	"sync"
	"time"

	"github.com/mj1618/xrandroll/internal/platform"
)

// ReportCache provides a TTL-based cache for the raw display report, so a
// burst of tool calls runs xrandr once.
type ReportCache struct {
	mu        sync.Mutex
	lines     []string
	timestamp time.Time
	ttl       time.Duration
}

// NewReportCache creates a new cache. A ttl of 0 disables caching.
func NewReportCache(ttl time.Duration) *ReportCache {
	return &ReportCache{ttl: ttl}
}

// ReadLines returns the cached report if within TTL, otherwise reads fresh.
// The returned slice is a copy the caller may keep.
func (c *ReportCache) ReadLines(reader platform.Reader) ([]string, error) {
	if c.ttl == 0 {
		return reader.ReadLines()
	}

	c.mu.Lock()
	if c.lines != nil && time.Since(c.timestamp) < c.ttl {
		lines := append([]string(nil), c.lines...)
		c.mu.Unlock()
		return lines, nil
	}
	c.mu.Unlock()

	lines, err := reader.ReadLines()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.lines = lines
	c.timestamp = time.Now()
	c.mu.Unlock()

	return append([]string(nil), lines...), nil
}

// Invalidate drops the cached report. Called after every apply.
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}
