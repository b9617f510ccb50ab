// Package ui provides rendering cache for glamour output.
package ui

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
)

// RenderCache provides hash-based caching for rendered content. Once full,
// the least used entry is evicted.
type RenderCache struct {
	mu      sync.Mutex
	entries map[uint64]*cacheEntry
	maxSize int
}

type cacheEntry struct {
	content string
	hits    int
}

// NewRenderCache creates a new render cache with the specified max size.
func NewRenderCache(maxSize int) *RenderCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &RenderCache{entries: make(map[uint64]*cacheEntry), maxSize: maxSize}
}

// ComputeKey generates a FNV-1a cache key from strings, ints and bools.
func ComputeKey(inputs ...interface{}) uint64 {
	h := fnv.New64a()
	var b [8]byte
	for _, input := range inputs {
		switch v := input.(type) {
		case string:
			h.Write([]byte(v))
			h.Write([]byte{0})
		case int:
			binary.LittleEndian.PutUint64(b[:], uint64(v))
			h.Write(b[:])
		case bool:
			if v {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{2})
			}
		}
	}
	return h.Sum64()
}

// Get retrieves cached content if available.
func (rc *RenderCache) Get(key uint64) (string, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if e, ok := rc.entries[key]; ok {
		e.hits++
		return e.content, true
	}
	return "", false
}

// Set stores rendered content in the cache.
func (rc *RenderCache) Set(key uint64, content string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if _, ok := rc.entries[key]; !ok && len(rc.entries) >= rc.maxSize {
		rc.evictLocked()
	}
	rc.entries[key] = &cacheEntry{content: content, hits: 1}
}

func (rc *RenderCache) evictLocked() {
	var victim uint64
	least := -1
	for k, e := range rc.entries {
		if least < 0 || e.hits < least {
			victim, least = k, e.hits
		}
	}
	delete(rc.entries, victim)
}

// Len reports how many entries are cached.
func (rc *RenderCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}

// GetOrCompute retrieves from cache or computes if missing.
func (rc *RenderCache) GetOrCompute(key uint64, compute func() string) string {
	if content, ok := rc.Get(key); ok {
		return content
	}
	content := compute()
	rc.Set(key, content)
	return content
}
