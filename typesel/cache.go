// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typesel

import (
	"reflect"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type cacheKey struct {
	base     reflect.Type
	abstract bool
}

// Cache has the sorted candidate lists for base types, computed from a
// [Registry] on first use and kept until [Cache.Clear] is called.
type Cache struct {

	// Registry is the source of the candidates. It defaults to [Types].
	Registry *Registry

	mu    sync.Mutex
	lists map[cacheKey][]*Candidate
}

// NewCache returns a new cache for the given registry.
func NewCache(r *Registry) *Cache {
	return &Cache{Registry: r}
}

// Candidates returns the registered types assignable to base, sorted by
// display path. Abstract types are only included if includeAbstract is set.
// The returned slice must not be modified.
func (c *Cache) Candidates(base reflect.Type, includeAbstract bool) []*Candidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := cacheKey{base, includeAbstract}
	if cs, ok := c.lists[k]; ok {
		return cs
	}
	r := c.Registry
	if r == nil {
		r = Types
	}
	cs := r.Assignable(base, includeAbstract)
	col := collate.New(language.English, collate.IgnoreCase)
	slices.SortStableFunc(cs, func(a, b *Candidate) int {
		return col.CompareString(a.Path, b.Path)
	})
	if c.lists == nil {
		c.lists = map[cacheKey][]*Candidate{}
	}
	c.lists[k] = cs
	return cs
}

// Clear discards all cached lists, so that they are recomputed on next use.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists = nil
}

// Len returns the number of cached lists.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lists)
}
