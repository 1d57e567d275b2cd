// ABOUTME: Expiring multi-namespace cache for memoizing external lookups
// ABOUTME: Each namespace carries its own TTL and an optional entry cap with FIFO eviction

package cache

import (
	"container/list"
	"sync"
	"time"
)

// Namespace describes one logical partition of the cache keyspace.
// Each category of cached data (restaurant lists, nutrition lookups,
// search results) gets its own namespace with its own TTL.
type Namespace struct {
	// Name identifies the namespace
	Name string

	// TTL is the maximum age before an entry is treated as absent
	TTL time.Duration

	// MaxEntries bounds the namespace; zero means unbounded.
	// Beyond the cap the oldest write is evicted first.
	MaxEntries int
}

// entry is a single cached value. Entries are owned exclusively by the
// cache and destroyed on expiry or clear.
type entry struct {
	key      string
	value    interface{}
	storedAt time.Time
}

// space holds the entries of one namespace. The order list keeps the
// oldest write at the front for FIFO eviction past MaxEntries.
type space struct {
	cfg       Namespace
	entries   map[string]*list.Element
	order     *list.List
	hits      uint64
	misses    uint64
	evictions uint64
}

func (sp *space) remove(el *list.Element) {
	ent := el.Value.(*entry)
	delete(sp.entries, ent.key)
	sp.order.Remove(el)
}

func (sp *space) reset() {
	sp.entries = make(map[string]*list.Element)
	sp.order.Init()
}

// Cache stores result sets keyed by namespace and key, each namespace
// with an independent TTL. The cache never initiates fetches; callers
// check it first and populate it after a successful external fetch.
//
// A single coarse lock serializes all operations. The operation rate is
// low (one lookup per screen interaction), so contention is not a
// concern here.
type Cache struct {
	mu     sync.Mutex
	spaces map[string]*space

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a cache with the given namespaces. If sweepInterval is
// positive, a janitor goroutine removes expired entries at that interval
// until Close is called. Expired entries are also purged lazily on read,
// so the janitor is an optimization, not a correctness requirement.
func New(sweepInterval time.Duration, namespaces ...Namespace) *Cache {
	c := &Cache{
		spaces: make(map[string]*space, len(namespaces)),
	}
	for _, ns := range namespaces {
		c.spaces[ns.Name] = &space{
			cfg:     ns,
			entries: make(map[string]*list.Element),
			order:   list.New(),
		}
	}
	if sweepInterval > 0 {
		c.stop = make(chan struct{})
		go c.janitor(sweepInterval)
	}
	return c
}

// Get returns the value stored under (namespace, key) if it exists and
// is younger than the namespace TTL. A stale entry is removed on the
// spot so a later Get does not find it again. A miss is an expected
// outcome, not an error; callers treat it as "not cached, go fetch".
func (c *Cache) Get(namespace, key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sp, ok := c.spaces[namespace]
	if !ok {
		return nil, false
	}

	el, ok := sp.entries[key]
	if !ok {
		sp.misses++
		return nil, false
	}

	ent := el.Value.(*entry)
	if time.Since(ent.storedAt) >= sp.cfg.TTL {
		sp.remove(el)
		sp.misses++
		return nil, false
	}

	sp.hits++
	return ent.value, true
}

// Put stores value under (namespace, key), overwriting any existing
// entry and recording the current time as its storage timestamp. A Put
// to an unknown namespace is dropped.
func (c *Cache) Put(namespace, key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sp, ok := c.spaces[namespace]
	if !ok {
		return
	}

	now := time.Now()
	if el, ok := sp.entries[key]; ok {
		ent := el.Value.(*entry)
		ent.value = value
		ent.storedAt = now
		sp.order.MoveToBack(el)
		return
	}

	sp.entries[key] = sp.order.PushBack(&entry{key: key, value: value, storedAt: now})

	for sp.cfg.MaxEntries > 0 && len(sp.entries) > sp.cfg.MaxEntries {
		sp.remove(sp.order.Front())
		sp.evictions++
	}
}

// InvalidateExpired sweeps every namespace and drops entries older than
// their namespace TTL. Idempotent; safe to call at any time, including
// from a low-memory signal handler.
func (c *Cache) InvalidateExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, sp := range c.spaces {
		for el := sp.order.Front(); el != nil; {
			next := el.Next()
			if now.Sub(el.Value.(*entry).storedAt) >= sp.cfg.TTL {
				sp.remove(el)
			}
			el = next
		}
	}
}

// Clear removes every entry in one namespace. Hit and miss counters
// survive a clear; they describe the lifetime of the process, not the
// current contents.
func (c *Cache) Clear(namespace string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sp, ok := c.spaces[namespace]; ok {
		sp.reset()
	}
}

// ClearAll removes every entry in every namespace.
func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, sp := range c.spaces {
		sp.reset()
	}
}

// NamespaceStats reports the state of one namespace.
type NamespaceStats struct {
	Entries   int     `json:"entries"`
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	Evictions uint64  `json:"evictions"`
	HitRate   float64 `json:"hit_rate"`
}

// Stats returns per-namespace entry counts and hit/miss counters.
func (c *Cache) Stats() map[string]NamespaceStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := make(map[string]NamespaceStats, len(c.spaces))
	for name, sp := range c.spaces {
		s := NamespaceStats{
			Entries:   len(sp.entries),
			Hits:      sp.hits,
			Misses:    sp.misses,
			Evictions: sp.evictions,
		}
		if total := sp.hits + sp.misses; total > 0 {
			s.HitRate = float64(sp.hits) / float64(total)
		}
		stats[name] = s
	}
	return stats
}

// janitor periodically invalidates expired entries until Close.
func (c *Cache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.InvalidateExpired()
		case <-c.stop:
			return
		}
	}
}

// Close stops the janitor goroutine, if one was started. Safe to call
// more than once.
func (c *Cache) Close() {
	if c.stop != nil {
		c.stopOnce.Do(func() { close(c.stop) })
	}
}
