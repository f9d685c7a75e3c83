// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"time"

	"cogentcore.org/inspector/collection"
	"cogentcore.org/inspector/members"
)

// delegates are the notification delegates resolved by [Field.Bind].
type delegates struct {
	perms     collection.Permissions
	onAdd     func(index int)
	onRemove  func(index int)
	onReorder func(from, to int)
	onChanged func()
}

// Bind resolves the names in [Options.Delegates] against the given context,
// replacing any previous binding. Names that cannot be resolved are
// reported once and leave the default behavior in place. The affordances
// follow the permission delegates: a sibling CanAdd value updates them when
// it changes, a CanAdd value that can change without notification is polled
// at [Options.PollInterval], and the CanRemove, CanReorder and CanAddKey
// predicates are re-evaluated at that interval while the field is alive.
func (f *Field) Bind(cx members.Context) {
	f.unbind()
	d := f.Options.Delegates
	interval := time.Duration(f.Options.PollInterval) * time.Millisecond
	var dl delegates
	var canAdd members.Binding[bool]
	predicates := false
	req := func(name string) members.Context {
		c := cx
		c.Requester = "field.Options.Delegates." + name
		return c
	}
	if d.CanAdd != "" {
		b := members.Resolve[bool](req("CanAdd"), d.CanAdd)
		dl.perms.CanAdd = func() bool { return b.Or(true) }
		canAdd = b
	}
	if d.CanAddKey != "" {
		b := members.Resolve[func(key string) bool](req("CanAddKey"), d.CanAddKey)
		predicates = predicates || b.Found()
		dl.perms.CanAddKey = func(key string) bool {
			if fn := b.Value(); fn != nil {
				return fn(key)
			}
			return true
		}
	}
	if d.CanRemove != "" {
		b := members.Resolve[func(index int) bool](req("CanRemove"), d.CanRemove)
		predicates = predicates || b.Found()
		dl.perms.CanRemove = func(index int) bool {
			if fn := b.Value(); fn != nil {
				return fn(index)
			}
			return true
		}
	}
	if d.CanReorder != "" {
		b := members.Resolve[func(from, to int) bool](req("CanReorder"), d.CanReorder)
		predicates = predicates || b.Found()
		dl.perms.CanReorder = func(from, to int) bool {
			if fn := b.Value(); fn != nil {
				return fn(from, to)
			}
			return true
		}
	}
	if d.OnAdd != "" {
		dl.onAdd = action(members.ResolveAction[int](req("OnAdd"), d.OnAdd))
	}
	if d.OnRemove != "" {
		dl.onRemove = action(members.ResolveAction[int](req("OnRemove"), d.OnRemove))
	}
	if d.OnReorder != "" {
		b := members.ResolveCallback(req("OnReorder"), d.OnReorder, func(fn func()) func(from, to int) {
			return func(int, int) { fn() }
		})
		if b.Found() {
			dl.onReorder = func(from, to int) {
				if fn := b.Value(); fn != nil {
					fn(from, to)
				}
			}
		}
	}
	if d.OnChanged != "" {
		b := members.Resolve[func()](req("OnChanged"), d.OnChanged)
		if b.Found() {
			dl.onChanged = func() {
				if fn := b.Value(); fn != nil {
					fn()
				}
			}
		}
	}
	f.delegates = dl
	if d.EmptyLabel != "" {
		b := members.Resolve[string](req("EmptyLabel"), d.EmptyLabel)
		if b.Found() {
			f.bindings = append(f.bindings, b.TrackEvery(f.Scheduler, interval, func(s string) {
				f.Container.EmptyLabel = s
			}))
		}
	}
	f.applyPermissions()
	if canAdd.Found() {
		f.bindings = append(f.bindings, canAdd.TrackEvery(f.Scheduler, interval, func(bool) {
			f.refresh()
		}))
	}
	if predicates {
		if interval <= 0 {
			interval = members.PollInterval
		}
		task := f.Scheduler.Every(interval, f.refresh)
		f.bindings = append(f.bindings, task.Cancel)
	}
	f.Update()
}

// refresh updates the item visuals and their affordances,
// unless a drag is in progress.
func (f *Field) refresh() {
	if f.Drag.Active() {
		return
	}
	f.Update()
}

func action(b members.Binding[func(int)]) func(int) {
	if !b.Found() {
		return nil
	}
	return func(i int) {
		if fn := b.Value(); fn != nil {
			fn(i)
		}
	}
}

// unbind cancels the tracking of bound delegates and removes them.
func (f *Field) unbind() {
	for _, cancel := range f.bindings {
		cancel()
	}
	f.bindings = nil
	f.delegates = delegates{}
	f.applyPermissions()
}

// applyPermissions sets the permissions of the proxy to its own ones
// overridden by the bound delegates.
func (f *Field) applyPermissions() {
	if f.proxy == nil {
		return
	}
	p := f.ownPerms
	dp := f.delegates.perms
	if dp.CanAdd != nil {
		p.CanAdd = dp.CanAdd
	}
	if dp.CanAddKey != nil {
		p.CanAddKey = dp.CanAddKey
	}
	if dp.CanRemove != nil {
		p.CanRemove = dp.CanRemove
	}
	if dp.CanReorder != nil {
		p.CanReorder = dp.CanReorder
	}
	f.proxy.AsBase().Permissions = p
}
