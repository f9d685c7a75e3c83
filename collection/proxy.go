// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collection provides [Proxy], a uniform interface over an
// editable ordered or keyed collection, with implementations for a
// dynamically typed slice ([Raw]), a typed slice ([Typed]), a keyed
// list ([KeyedList]) and an array property of a serialized host object
// ([PropertyArray]). A proxy counts items, builds a visual for each index,
// and adds, removes and reorders items subject to permission predicates.
package collection

import (
	"reflect"
	"strconv"

	"cogentcore.org/inspector/visual"
)

// Proxy is the interface used by collection fields to
// view and edit any kind of collection.
// Every mutation returns false without side effects when it is rejected,
// either by a permission predicate or because its arguments are invalid.
type Proxy interface {

	// AsBase returns the base for direct access to permissions and ownership.
	AsBase() *Base

	// Count returns the current number of items.
	Count() int

	// CreateVisual builds a fresh visual for the item at the given index.
	CreateVisual(index int) *visual.Node

	// NeedsUpdate returns whether the given visual must be recreated to
	// show the item at the given index.
	NeedsUpdate(n *visual.Node, index int) bool

	// Value returns the item at the given index, or nil if out of range.
	Value(index int) any

	// ElemType returns the declared type of the items.
	ElemType() reflect.Type

	// CanAdd returns whether an item can be added.
	CanAdd() bool

	// CanRemove returns whether the item at the given index can be removed.
	CanRemove(index int) bool

	// CanReorder returns whether the item at from can be moved to to.
	CanReorder(from, to int) bool

	// AddItem appends a new default item.
	AddItem() bool

	// AddValue appends the given value, which must be assignable
	// to the item type.
	AddValue(value any) bool

	// RemoveItem removes the item at the given index.
	RemoveItem(index int) bool

	// ReorderItem removes the item at from and inserts it at to,
	// with to interpreted against the sequence after the removal.
	ReorderItem(from, to int) bool
}

// Keyed is a [Proxy] over a collection whose items have unique
// string keys, displayed in insertion order.
type Keyed interface {
	Proxy

	// Key returns the key of the item at the given index.
	Key(index int) string

	// CanAddKey returns whether an item with the given key can be added.
	// It is false for empty keys and keys already present.
	CanAddKey(key string) bool

	// AddKey adds a new default value with the given key.
	AddKey(key string) bool

	// AddKeyValue adds the given value with the given key.
	AddKeyValue(key string, value any) bool
}

// Resizer is implemented by proxies whose backing store can be resized
// from outside the proxy, such as a host array property. The given
// function is called after any such size change.
type Resizer interface {
	OnResize(f func()) (cancel func())
}

// Factory fills in the content of the visual for the item at the given
// index. It must not assume that the visual will be reused.
type Factory func(n *visual.Node, index int)

// Permissions are optional predicates that can veto mutations.
// A nil predicate allows everything.
type Permissions struct {
	CanAdd     func() bool
	CanAddKey  func(key string) bool
	CanRemove  func(index int) bool
	CanReorder func(from, to int) bool
}

// Base has the state shared by all proxies.
type Base struct {

	// Factory builds item visual content. It may be nil.
	Factory Factory

	// Permissions are the permission predicates.
	Permissions Permissions

	// owner is the field that the proxy is bound to.
	owner any
}

func (b *Base) AsBase() *Base { return b }

// Claim binds the proxy to the given owner, returning false if it is
// already bound to a different one. A proxy is never shared.
func (b *Base) Claim(owner any) bool {
	if b.owner != nil && b.owner != owner {
		return false
	}
	b.owner = owner
	return true
}

// Release unbinds the proxy from the given owner.
func (b *Base) Release(owner any) {
	if b.owner == owner {
		b.owner = nil
	}
}

// Owner returns the owner that the proxy is bound to, or nil.
func (b *Base) Owner() any { return b.owner }

func (b *Base) canAdd() bool {
	return b.Permissions.CanAdd == nil || b.Permissions.CanAdd()
}

func (b *Base) canAddKey(key string) bool {
	return b.canAdd() && (b.Permissions.CanAddKey == nil || b.Permissions.CanAddKey(key))
}

func (b *Base) canRemove(index, count int) bool {
	if index < 0 || index >= count {
		return false
	}
	return b.Permissions.CanRemove == nil || b.Permissions.CanRemove(index)
}

func (b *Base) canReorder(from, to, count int) bool {
	if from < 0 || from >= count || to < 0 || to >= count {
		return false
	}
	return b.Permissions.CanReorder == nil || b.Permissions.CanReorder(from, to)
}

// newVisual returns a visual for the given index holding an item of
// the given dynamic type.
func (b *Base) newVisual(index int, kind reflect.Type) *visual.Node {
	n := visual.NewNode(index)
	n.Kind = kind
	if b.Factory != nil {
		b.Factory(n, index)
	}
	return n
}

// needsUpdate is the default identity check: the visual is stale if it
// was made for another index or for an item of another type.
func (b *Base) needsUpdate(n *visual.Node, index int, kind reflect.Type) bool {
	return n.Index != index || n.Kind != kind
}

// IsPolymorphic returns whether the items of the given proxy are of an
// interface type, so that new items need a concrete type to be chosen.
func IsPolymorphic(p Proxy) bool {
	et := p.ElemType()
	return et != nil && et.Kind() == reflect.Interface
}

// newElem returns a new default value of the given type, allocating
// a value for pointer types. It returns false for interface types,
// which have no default.
func newElem(typ reflect.Type) (reflect.Value, bool) {
	switch typ.Kind() {
	case reflect.Interface:
		return reflect.Value{}, false
	case reflect.Pointer:
		return reflect.New(typ.Elem()), true
	}
	return reflect.New(typ).Elem(), true
}

// valueFor returns value as a reflect.Value assignable to typ.
// A nil value is allowed for types that can be nil.
func valueFor(value any, typ reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch typ.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(typ), true
		}
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(typ) {
		return reflect.Value{}, false
	}
	return rv, true
}

// UniqueKey returns base if has reports it is unused, and otherwise
// the first of "base 1", "base 2", ... that is unused.
func UniqueKey(base string, has func(key string) bool) string {
	if !has(base) {
		return base
	}
	for i := 1; ; i++ {
		k := base + " " + strconv.Itoa(i)
		if !has(k) {
			return k
		}
	}
}

// DefaultKey is the base key used by keyed proxies for items added
// without a key.
var DefaultKey = "key"

// AsKeyed returns the given proxy as a [Keyed] proxy if its items have keys.
func AsKeyed(p Proxy) (Keyed, bool) {
	if pa, ok := p.(*PropertyArray); ok {
		return pa, pa.IsKeyed()
	}
	k, ok := p.(Keyed)
	return k, ok
}
