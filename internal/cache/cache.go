// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a bounded memo for compiled format layouts.
//
// Layouts are usually string constants, so a program using a handful of them
// compiles each exactly once. Programs building layouts dynamically are
// bounded by the size of the cache: once it is full, random entries are
// dropped to make room.
package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultSize is the default size of a cache.
const DefaultSize = 1 << 10

// Sizer is an optional interface for a value to report its own size. The
// reported size must be positive and never change for the same receiver.
type Sizer interface {
	Size() int64
}

// Cache memoizes the results of a pure function.
//
// Its zero value is safe to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxSize is the maximum total size of the cached values. If it is zero,
	// DefaultSize is used. Values implementing Sizer report their own size,
	// all others count as 1.
	//
	// MaxSize is not safe to mutate concurrently with calls to Get.
	MaxSize int64

	mu      sync.RWMutex
	entries map[K]V
	size    int64

	hits, misses atomic.Int64
}

// Stats reports the number of lookups answered from the cache and the number
// of lookups which had to call fill.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
	Size    int64
}

// Get returns the value for k, calling fill to compute it if it is not
// cached. fill may be called more than once for the same key by concurrent
// callers; only one result is kept.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.entries[k]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return v
	}
	c.misses.Add(1)

	v = fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.entries[k]; ok {
		return old
	}
	if c.entries == nil {
		c.entries = make(map[K]V)
	}
	c.entries[k] = v
	c.size += sizeOf(v)
	c.shrinkLocked(k)
	return v
}

// shrinkLocked drops entries other than keep until the cache fits MaxSize.
// Map iteration order is unspecified, which makes the choice of victims
// random enough. c.mu must be held for writing.
func (c *Cache[K, V]) shrinkLocked(keep K) {
	limit := c.MaxSize
	if limit == 0 {
		limit = DefaultSize
	}
	for k, v := range c.entries {
		if c.size <= limit {
			return
		}
		if k == keep {
			continue
		}
		delete(c.entries, k)
		c.size -= sizeOf(v)
	}
}

// Evict removes the entry for k. If there is none, Evict is a no-op.
func (c *Cache[K, V]) Evict(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[k]; ok {
		delete(c.entries, k)
		c.size -= sizeOf(v)
	}
}

// Flush removes all entries and resets the statistics.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.size = 0
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: len(c.entries),
		Size:    c.size,
	}
}

func sizeOf[V any](v V) int64 {
	if s, ok := any(v).(Sizer); ok {
		return s.Size()
	}
	return 1
}
