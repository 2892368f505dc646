/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cache provides an append-only memo map for metadata lookups.
//
// Entries are computed lazily, stored once and never evicted: the values it
// holds are derived from static type metadata that does not change for the
// lifetime of the process. Concurrent misses on the same key may compute the
// value more than once, but only the first stored value is ever observed.
package cache

import (
	"sync"
	"sync/atomic"
)

// Map is a concurrency-safe, append-only memo map.
// The zero value is ready to use. A Map must not be copied after first use.
type Map[K comparable, V any] struct {
	m      sync.Map // map[K]V
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats is a point-in-time view of Map counters.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// GetOrCompute returns the value stored for key, computing and storing it
// with fn on a miss. fn must be deterministic for a given key.
func (c *Map[K, V]) GetOrCompute(key K, fn func(K) V) V {
	if v, ok := c.m.Load(key); ok {
		c.hits.Add(1)
		return v.(V)
	}
	c.misses.Add(1)
	v, _ := c.m.LoadOrStore(key, fn(key))
	return v.(V)
}

// GetOrTry is GetOrCompute for fallible computations. A non-nil error from
// fn is returned to the caller and nothing is stored, so the next call
// computes again.
func (c *Map[K, V]) GetOrTry(key K, fn func(K) (V, error)) (V, error) {
	if v, ok := c.m.Load(key); ok {
		c.hits.Add(1)
		return v.(V), nil
	}
	c.misses.Add(1)
	nv, err := fn(key)
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := c.m.LoadOrStore(key, nv)
	return v.(V), nil
}

// Load returns the stored value for key without computing it.
func (c *Map[K, V]) Load(key K) (V, bool) {
	if v, ok := c.m.Load(key); ok {
		return v.(V), true
	}
	var zero V
	return zero, false
}

// Len returns the number of stored entries.
func (c *Map[K, V]) Len() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Stats returns hit/miss counters.
func (c *Map[K, V]) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
