// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reconcile keeps the item visuals of a [visual.Container]
// in sync with the items of a [collection.Proxy].
package reconcile

import (
	"cogentcore.org/inspector/base/plan"
	"cogentcore.org/inspector/collection"
	"cogentcore.org/inspector/visual"
)

// Reconciler owns the item visuals of a container and brings them in
// line with its proxy on every call to [Reconciler.Reconcile].
type Reconciler struct {

	// Container holds the item visuals.
	Container *visual.Container

	// Proxy is the collection being shown. It may be nil.
	Proxy collection.Proxy

	// AllowAdd, AllowRemove and AllowReorder gate the corresponding
	// affordances in addition to the proxy permission predicates.
	AllowAdd, AllowRemove, AllowReorder bool

	// RemoveTooltip and ReorderTooltip are set on every item visual.
	RemoveTooltip, ReorderTooltip string

	// Created is the number of item visuals created so far.
	Created int

	running bool
	again   bool
}

// New returns a new reconciler for the given container with all
// affordances allowed.
func New(c *visual.Container) *Reconciler {
	return &Reconciler{Container: c, AllowAdd: true, AllowRemove: true, AllowReorder: true}
}

// Reconcile brings the container in line with the proxy: it removes
// surplus visuals from the end, recreates visuals that the proxy reports
// as stale while refreshing the index tag and row class of every visual,
// appends visuals for new items, and finally updates the add, remove and
// reorder affordances. It reads the proxy count every time and is
// idempotent. A call made while a reconciliation is running (for example
// from a factory or an updater) runs one more full pass once the current
// one completes. It returns whether any visual was removed, recreated or
// added.
func (r *Reconciler) Reconcile() bool {
	if r.running {
		r.again = true
		return false
	}
	r.running = true
	defer func() { r.running = false }()
	changed := false
	for {
		r.again = false
		if r.pass() {
			changed = true
		}
		if !r.again {
			return changed
		}
	}
}

func (r *Reconciler) pass() bool {
	c := r.Container
	n := 0
	if r.Proxy != nil {
		n = r.Proxy.Count()
	}
	var mods bool
	c.Children, mods = plan.Update(c.Children, n,
		func(v *visual.Node, i int) bool {
			return r.Proxy.NeedsUpdate(v, i)
		},
		func(i int) *visual.Node {
			r.Created++
			return r.Proxy.CreateVisual(i)
		},
		func(v *visual.Node, i int) {
			v.Index = i
			v.SetRowClass(i)
			v.Update()
		},
		func(v *visual.Node) {
			v.Destroy()
		})
	r.updateAffordances(n)
	if mods {
		c.Relayout()
	}
	return mods
}

// updateAffordances sets the enabled state of the add, remove
// and reorder affordances from the permission predicates.
func (r *Reconciler) updateAffordances(n int) {
	c := r.Container
	c.Empty = n == 0
	c.AddEnabled = r.AllowAdd && r.Proxy != nil && r.Proxy.CanAdd()
	reorder := r.AllowReorder && n > 1
	for i, v := range c.Children {
		v.RemoveEnabled = r.AllowRemove && r.Proxy.CanRemove(i)
		v.ReorderEnabled = reorder
		v.Tooltip = r.RemoveTooltip
		if reorder && r.ReorderTooltip != "" {
			v.Tooltip = r.ReorderTooltip
		}
	}
}

// Clear removes and destroys all item visuals.
func (r *Reconciler) Clear() {
	for _, v := range r.Container.Children {
		v.Destroy()
	}
	r.Container.Children = nil
	r.Container.Empty = true
	r.Container.AddEnabled = false
}
