// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package members

import (
	"reflect"
	"time"

	"cogentcore.org/inspector/poll"
)

// Binding is the result of resolving a symbolic name: a typed accessor
// bound to its owner, tagged with the kind of member found.
type Binding[T any] struct {

	// Kind is the kind of member that the name resolved to.
	Kind Kind

	// Name is the symbolic name that was resolved.
	Name string

	// NeedsPolling is whether the value can change without notification,
	// so that it must be re-evaluated periodically to be tracked.
	NeedsPolling bool

	get     func() T
	sibling Sibling
}

// Found returns whether the name resolved to a member.
func (b Binding[T]) Found() bool {
	return b.Kind != NotFound && b.get != nil
}

// Value returns the current value, or the zero value if not found.
func (b Binding[T]) Value() T {
	if !b.Found() {
		var zero T
		return zero
	}
	return b.get()
}

// Or returns the current value if the name was found,
// and otherwise the given default.
func (b Binding[T]) Or(def T) T {
	if !b.Found() {
		return def
	}
	return b.get()
}

// Track calls fn with the current value now and again whenever it
// changes: on notification for sibling values, and otherwise by
// re-evaluating every [PollInterval] on the given scheduler when the
// binding needs polling. It returns a function that stops tracking,
// which must be called when the owner of fn is torn down.
func (b Binding[T]) Track(s *poll.Scheduler, fn func(T)) (cancel func()) {
	return b.TrackEvery(s, PollInterval, fn)
}

// TrackEvery is like [Binding.Track] but polls at the given interval.
func (b Binding[T]) TrackEvery(s *poll.Scheduler, interval time.Duration, fn func(T)) (cancel func()) {
	if interval <= 0 {
		interval = PollInterval
	}
	if !b.Found() {
		return func() {}
	}
	last := b.Value()
	fn(last)
	switch {
	case b.sibling != nil:
		return b.sibling.OnChange(func() {
			v := b.Value()
			last = v
			fn(v)
		})
	case b.NeedsPolling && s != nil:
		task := s.Every(interval, func() {
			v := b.Value()
			if reflect.DeepEqual(v, last) {
				return
			}
			last = v
			fn(v)
		})
		return task.Cancel
	}
	return func() {}
}
