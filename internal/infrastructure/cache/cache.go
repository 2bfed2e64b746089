// Package cache memoizes read query results for a fixed time window so the
// grid-heavy pages do not hit the database on every render.
//
// Entries are keyed by query text plus parameters and grouped into named
// scopes (one per query family). Writes invalidate whole scopes; dependency
// tracking is the caller's responsibility, so a write that forgets to name an
// affected scope leaves stale data behind until the TTL expires. The cache is
// one shared instance for the whole process, not partitioned per session.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultTTL bounds how stale a cached read may get when no write invalidates
// it.
const DefaultTTL = 300 * time.Second

// Scope names shared by repositories and the reads they invalidate.
const (
	ScopeCustomers      = "customers"
	ScopeInsuranceTypes = "insurance_types"
	ScopeContracts      = "contracts"
	ScopeAssessments    = "assessments"
	ScopePayouts        = "payouts"
	ScopeReports        = "reports"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "query_cache_hits_total",
		Help: "Total number of read queries served from the cache.",
	}, []string{"scope"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "query_cache_misses_total",
		Help: "Total number of read queries that went to the database.",
	}, []string{"scope"})
)

type Store interface {
	Get(scope, query string, args ...any) (any, bool)
	Put(scope, query string, value any, args ...any)
	Invalidate(scopes ...string)
	Clear()
}

type entry struct {
	value    any
	storedAt time.Time
}

type TTLCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
	scopes  map[string]map[string]struct{}
}

var _ Store = (*TTLCache)(nil)

func New(ttl time.Duration) *TTLCache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock lets tests control time instead of sleeping through the TTL.
func NewWithClock(ttl time.Duration, now func() time.Time) *TTLCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &TTLCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
		scopes:  make(map[string]map[string]struct{}),
	}
}

func cacheKey(scope, query string, args []any) string {
	var b strings.Builder
	b.WriteString(scope)
	b.WriteByte('\x1f')
	b.WriteString(query)
	for _, arg := range args {
		b.WriteByte('\x1f')
		fmt.Fprintf(&b, "%v", arg)
	}
	return b.String()
}

func (c *TTLCache) Get(scope, query string, args ...any) (any, bool) {
	key := cacheKey(scope, query, args)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		cacheMisses.WithLabelValues(scope).Inc()
		return nil, false
	}
	cacheHits.WithLabelValues(scope).Inc()
	return e.value, true
}

func (c *TTLCache) Put(scope, query string, value any, args ...any) {
	key := cacheKey(scope, query, args)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, storedAt: c.now()}
	keys, ok := c.scopes[scope]
	if !ok {
		keys = make(map[string]struct{})
		c.scopes[scope] = keys
	}
	keys[key] = struct{}{}
}

// Invalidate drops every entry held under the named scopes. Unknown scopes
// are ignored.
func (c *TTLCache) Invalidate(scopes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, scope := range scopes {
		for key := range c.scopes[scope] {
			delete(c.entries, key)
		}
		delete(c.scopes, scope)
	}
}

func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	c.scopes = make(map[string]map[string]struct{})
}

type nopStore struct{}

// Nop returns a cache that never stores anything, for tests and for wiring
// the repositories without caching.
func Nop() Store {
	return nopStore{}
}

func (nopStore) Get(string, string, ...any) (any, bool) { return nil, false }
func (nopStore) Put(string, string, any, ...any)        {}
func (nopStore) Invalidate(...string)                   {}
func (nopStore) Clear()                                 {}
