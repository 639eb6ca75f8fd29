package lsystem

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"
)

// ExpansionCache memoizes expansion results keyed by a hash of
// (axiom, rules, iterations). Re-interpreting the same system with
// different turtle parameters is common in interactive use, and the
// expansion is by far the expensive half.
type ExpansionCache struct {
	mu      sync.RWMutex
	cache   map[string][]Symbol
	order   []string
	maxSize int
	hits    int64
	misses  int64
}

// NewExpansionCache creates a cache holding at most maxSize entries.
// When full, the oldest entry is evicted (FIFO). maxSize 0 means
// unlimited.
func NewExpansionCache(maxSize int) *ExpansionCache {
	return &ExpansionCache{
		cache:   make(map[string][]Symbol),
		maxSize: maxSize,
	}
}

// hashKey builds a deterministic digest of the expansion inputs. Rule
// order matters: a shadowing rule changes the result.
func hashKey(axiom []Symbol, rules *RuleSet, iterations int) string {
	h := sha256.New()
	buf := make([]byte, 8)

	binary.BigEndian.PutUint64(buf, uint64(iterations))
	h.Write(buf)

	binary.BigEndian.PutUint64(buf, uint64(len(axiom)))
	h.Write(buf)
	for _, sym := range axiom {
		binary.BigEndian.PutUint32(buf[:4], uint32(sym))
		h.Write(buf[:4])
	}

	for _, rule := range rules.Rules() {
		binary.BigEndian.PutUint32(buf[:4], uint32(rule.Trigger))
		h.Write(buf[:4])
		binary.BigEndian.PutUint64(buf, uint64(len(rule.Replacement)))
		h.Write(buf)
		for _, sym := range rule.Replacement {
			binary.BigEndian.PutUint32(buf[:4], uint32(sym))
			h.Write(buf[:4])
		}
	}

	return string(h.Sum(nil))
}

// Expand returns the cached expansion for the inputs, computing and
// storing it on a miss.
func (c *ExpansionCache) Expand(axiom []Symbol, rules *RuleSet, iterations int) []Symbol {
	key := hashKey(axiom, rules, iterations)

	c.mu.RLock()
	seq, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return seq
	}

	seq = Expand(axiom, rules, iterations)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	if _, exists := c.cache[key]; !exists {
		if c.maxSize > 0 && len(c.cache) >= c.maxSize {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.cache, oldest)
		}
		c.cache[key] = seq
		c.order = append(c.order, key)
	}
	return seq
}

// Stats returns hit and miss counters.
func (c *ExpansionCache) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Clear drops all cached expansions.
func (c *ExpansionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string][]Symbol)
	c.order = nil
}
