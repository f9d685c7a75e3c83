// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typesel

import (
	"cmp"
	"fmt"
	"log/slog"
	"path"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/inspector/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Target is what a [Selector] adds new items to.
type Target interface {

	// ElemType returns the declared item type.
	ElemType() reflect.Type

	// CanAdd returns whether an item can be added.
	CanAdd() bool

	// AddValue adds the given value as a new item.
	AddValue(value any) bool
}

// KeyedTarget is a [Target] whose items have keys.
type KeyedTarget interface {
	Target

	// PendingKey returns the key to use for the next item,
	// or "" to let the target choose one.
	PendingKey() string

	// AddKeyValue adds the given value with the given key.
	AddKeyValue(key string, value any) bool
}

// Presenter shows the given candidates to the user, and calls choose
// with the one that the user picks, if any. It may call choose after
// returning.
type Presenter func(cands []*Candidate, choose func(c *Candidate))

// SearchThreshold is the minimum similarity for a candidate to match
// a search query that it does not contain.
var SearchThreshold = 0.75

// Selector presents the types that can be instantiated for a new item
// and adds an item of the chosen type.
type Selector struct {

	// Cache has the candidate lists. It must be set.
	Cache *Cache

	// Presenter shows the candidates. It must be set.
	Presenter Presenter

	// IncludeAbstract includes abstract types in the candidates.
	IncludeAbstract bool
}

// NewSelector returns a new selector using the given cache and presenter.
func NewSelector(c *Cache, p Presenter) *Selector {
	return &Selector{Cache: c, Presenter: p}
}

// Add presents the candidates for the item type of the target and adds
// a new default value of the chosen type to it. It returns false without
// presenting anything if the target cannot add an item or no type is
// available.
func (s *Selector) Add(t Target) bool {
	if !t.CanAdd() {
		return false
	}
	base := t.ElemType()
	cs := s.Cache.Candidates(base, s.IncludeAbstract)
	if len(cs) == 0 {
		slog.Warn("typesel.Add: no registered types are assignable", "type", base)
		return false
	}
	s.Presenter(cs, func(c *Candidate) {
		s.choose(t, c)
	})
	return true
}

// choose adds a new value of the given candidate type to the target.
func (s *Selector) choose(t Target, c *Candidate) bool {
	if c == nil || !t.CanAdd() {
		return false
	}
	v, err := Instantiate(c, t.ElemType())
	if errors.Log(err) != nil {
		return false
	}
	if kt, ok := t.(KeyedTarget); ok {
		if k := kt.PendingKey(); k != "" {
			return kt.AddKeyValue(k, v)
		}
	}
	return t.AddValue(v)
}

// Instantiate returns a new default value of the candidate type, checking
// that it is assignable to base. A panic in the constructor is returned
// as an error.
func Instantiate(c *Candidate, base reflect.Type) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = fmt.Errorf("typesel.Instantiate: constructing %s panicked: %v", c.Path, r)
		}
	}()
	v = c.New()
	if v == nil {
		return nil, fmt.Errorf("typesel.Instantiate: constructor of %s returned nil", c.Path)
	}
	if base != nil && !reflect.TypeOf(v).AssignableTo(base) {
		return nil, fmt.Errorf("typesel.Instantiate: %s makes a %T, which is not assignable to %v", c.Path, v, base)
	}
	return v, nil
}

// Search returns the candidates for base that match the given query,
// best matches first. A candidate matches if its name contains the query
// or is similar enough to it. An empty query matches everything.
func (s *Selector) Search(base reflect.Type, query string) []*Candidate {
	cs := s.Cache.Candidates(base, s.IncludeAbstract)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return slices.Clone(cs)
	}
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	type scored struct {
		c     *Candidate
		score float64
	}
	var ms []scored
	for _, c := range cs {
		name := strings.ToLower(path.Base(c.Path))
		score := strutil.Similarity(query, name, jw)
		if strings.Contains(name, query) {
			score += 1
		} else if score < SearchThreshold {
			continue
		}
		ms = append(ms, scored{c, score})
	}
	slices.SortStableFunc(ms, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
	res := make([]*Candidate, len(ms))
	for i, m := range ms {
		res[i] = m.c
	}
	return res
}
