// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides an efficient mechanism for updating a pool
// of elements (typically visual items) so that it mirrors a logical
// sequence of n items, where each element represents the item at its
// position in the pool. The update is done with minimal churn: the pool
// is shrunk from the end, stale elements are replaced in place, and
// missing elements are appended, in that order, so that no index ever
// aliases two elements and growth never copies stale content.
package plan

// Update ensures that the pool s contains exactly n elements, where the
// element at position i represents logical item i.
// Elements beyond n are removed from the end, calling destroy on each
// if it is non-nil. For each remaining element, stale reports whether
// it must be recreated for item i; if so, it is destroyed and replaced by
// new(i). Every element that is kept is passed to refresh, if non-nil,
// which is used to update cheap per-position state (tags, classes).
// Finally, new(i) is appended for every missing position.
// It returns the updated pool and whether any elements were
// removed, replaced or added.
func Update[T any](s []T, n int, stale func(e T, i int) bool, new func(i int) T, refresh func(e T, i int), destroy func(e T)) (r []T, mods bool) {
	r = s
	if n < 0 {
		n = 0
	}
	for len(r) > n {
		last := len(r) - 1
		if destroy != nil {
			destroy(r[last])
		}
		var zero T
		r[last] = zero
		r = r[:last]
		mods = true
	}
	for i, e := range r {
		if stale != nil && stale(e, i) {
			if destroy != nil {
				destroy(e)
			}
			e = new(i)
			r[i] = e
			mods = true
		}
		if refresh != nil {
			refresh(e, i)
		}
	}
	for i := len(r); i < n; i++ {
		e := new(i)
		if refresh != nil {
			refresh(e, i)
		}
		r = append(r, e)
		mods = true
	}
	return
}
