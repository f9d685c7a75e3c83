// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field provides [Field], the editable collection field of an
// inspector. A field shows the items of a [collection.Proxy] as item
// visuals, lets the user add, remove and reorder items, and sends
// notifications about the changes.
package field

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"cogentcore.org/inspector/collection"
	"cogentcore.org/inspector/drag"
	"cogentcore.org/inspector/events"
	"cogentcore.org/inspector/poll"
	"cogentcore.org/inspector/reconcile"
	"cogentcore.org/inspector/serial"
	"cogentcore.org/inspector/typesel"
	"cogentcore.org/inspector/visual"
)

// Field is an editable view of a collection. It owns the item visuals
// in its [visual.Container], keeps them in sync with its proxy, and runs
// the drag reordering of items. Its methods must be called from the UI
// thread, with [Field.Tick] called once per frame.
type Field struct {

	// Options are the settings of the field. Call [Field.SetOptions]
	// to apply changes.
	Options Options

	// Container holds the item visuals.
	Container *visual.Container

	// Reconciler keeps the item visuals in sync with the proxy.
	Reconciler *reconcile.Reconciler

	// Drag reorders items by dragging their reorder handles.
	Drag *drag.Controller

	// Selector chooses the type of new items when the item type is
	// an interface. If it is nil, the proxy makes new items itself.
	Selector *typesel.Selector

	// Scheduler runs the polling of delegates bound with [Field.Bind].
	Scheduler *poll.Scheduler

	// Degraded is set when the field could not be bound to its data,
	// in which case it only shows a read-only message.
	Degraded bool

	// DegradedReason is the reason the field is degraded.
	DegradedReason string

	proxy      collection.Proxy
	ownPerms   collection.Permissions
	listeners  events.Listeners
	delegates  delegates
	bindings   []func()
	unresize   func()
	pendingKey string

	// mutating is set while the field mutates its proxy,
	// so that the resulting resize signal is not sent twice.
	mutating bool

	// deferred is set when a structural update was requested during a drag.
	deferred bool
}

// New returns a new field with the given options.
func New(opts Options) *Field {
	f := &Field{Options: opts, Container: &visual.Container{}, Scheduler: &poll.Scheduler{}}
	f.Reconciler = reconcile.New(f.Container)
	f.Drag = drag.New(f.Container, f.ReorderItem)
	f.Drag.Enabled = f.canDrag
	f.applyOptions()
	return f
}

// SetOptions sets the options and updates the field.
func (f *Field) SetOptions(opts Options) {
	f.Options = opts
	f.applyOptions()
	f.Update()
}

func (f *Field) applyOptions() {
	o := &f.Options
	r := f.Reconciler
	r.AllowAdd = o.AllowAdd
	r.AllowRemove = o.AllowRemove
	r.AllowReorder = o.AllowReorder
	r.RemoveTooltip = o.RemoveTooltip
	r.ReorderTooltip = o.ReorderTooltip
	if f.Options.Delegates.EmptyLabel == "" {
		f.Container.EmptyLabel = o.EmptyLabel
	}
	f.Container.EmptyTooltip = o.EmptyTooltip
}

// Proxy returns the proxy that the field shows, or nil.
func (f *Field) Proxy() collection.Proxy {
	return f.proxy
}

// SetProxy makes the field show the given proxy, replacing and
// releasing the previous one. A proxy can only be shown by one field
// at a time; it is an error to pass a proxy bound to another field.
// A nil proxy clears the field.
func (f *Field) SetProxy(p collection.Proxy) error {
	if p != nil && !p.AsBase().Claim(f) {
		return fmt.Errorf("field.SetProxy: proxy is already bound to another field")
	}
	f.Drag.Cancel()
	f.releaseProxy()
	if p != nil {
		p.AsBase().Claim(f)
	}
	f.Degraded = false
	f.DegradedReason = ""
	f.Container.ReadOnly = false
	f.Container.Message = ""
	f.pendingKey = ""
	f.proxy = p
	f.Reconciler.Proxy = p
	if p == nil {
		f.Reconciler.Clear()
		return nil
	}
	f.ownPerms = p.AsBase().Permissions
	f.applyPermissions()
	if rs, ok := p.(collection.Resizer); ok {
		f.unresize = rs.OnResize(f.NotifyResized)
	}
	f.Reconciler.Clear()
	f.Update()
	return nil
}

func (f *Field) releaseProxy() {
	if f.unresize != nil {
		f.unresize()
		f.unresize = nil
	}
	if f.proxy == nil {
		return
	}
	f.proxy.AsBase().Permissions = f.ownPerms
	f.proxy.AsBase().Release(f)
	f.proxy = nil
	f.Reconciler.Proxy = nil
}

// BindPropertyArray makes the field show the array property with the
// given name on the given object. If the property is missing or is not
// an array, the field is degraded and the error is returned.
func (f *Field) BindPropertyArray(obj *serial.Object, name string, factory collection.Factory) error {
	pa, err := collection.NewPropertyArray(obj, name, factory)
	if err != nil {
		f.SetProxy(nil)
		f.Degrade(err.Error())
		return err
	}
	return f.SetProxy(pa)
}

// Degrade turns the field into a read-only placeholder showing the given reason.
func (f *Field) Degrade(reason string) {
	slog.Error("field: showing read-only placeholder", "reason", reason)
	f.Drag.Cancel()
	f.Degraded = true
	f.DegradedReason = reason
	f.Container.ReadOnly = true
	f.Container.Message = reason
	f.Reconciler.Clear()
}

// Update brings the item visuals in line with the proxy. During a drag,
// the update is deferred until the drag ends. A panic in the item visual
// factory degrades the field.
func (f *Field) Update() {
	if f.Degraded {
		return
	}
	if f.Drag.Active() {
		f.deferred = true
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f.Degrade(fmt.Sprintf("building item visuals: %v", r))
		}
	}()
	f.Reconciler.Reconcile()
}

// Tick runs the due polling tasks of the field, and should be called
// once per frame.
func (f *Field) Tick(now time.Time) {
	f.Scheduler.Tick(now)
}

// On adds a listener for the given type of event. The event types sent by
// a field are [events.ItemAdded], [events.ItemRemoved], [events.ItemReordered]
// and [events.ItemsChanged], all as [*events.Item].
func (f *Field) On(typ events.Types, fun func(e events.Event)) {
	f.listeners.Add(typ, fun)
}

func (f *Field) send(e events.Event) {
	f.listeners.Call(e)
}

// sendChanged sends [events.ItemsChanged] and calls the OnChanged delegate.
func (f *Field) sendChanged() {
	f.send(events.NewItem(events.ItemsChanged))
	if f.delegates.onChanged != nil {
		f.delegates.onChanged()
	}
}

// NotifyResized handles a size change of the collection made outside of
// the field: it updates the item visuals and sends [events.ItemsChanged].
// It is called automatically for proxies that implement [collection.Resizer].
// During a drag, it is deferred until the drag ends.
func (f *Field) NotifyResized() {
	if f.mutating || f.Degraded {
		return
	}
	if f.Drag.Active() {
		f.deferred = true
		return
	}
	f.Update()
	f.sendChanged()
}

// Teardown cancels all polling and subscriptions and releases the proxy.
// The field must not be used afterwards.
func (f *Field) Teardown() {
	f.Drag.Cancel()
	f.unbind()
	f.releaseProxy()
	f.Scheduler.CancelAll()
	f.Reconciler.Clear()
	f.listeners = nil
}

// ElemType returns the declared item type of the proxy, or nil.
func (f *Field) ElemType() reflect.Type {
	if f.proxy == nil {
		return nil
	}
	return f.proxy.ElemType()
}

// CanAdd returns whether an item can currently be added.
func (f *Field) CanAdd() bool {
	return f.canMutate() && f.Options.AllowAdd && f.proxy.CanAdd()
}

func (f *Field) canMutate() bool {
	return !f.Degraded && f.proxy != nil
}

func (f *Field) canDrag() bool {
	return f.canMutate() && f.Options.AllowReorder && f.proxy.Count() > 1
}
