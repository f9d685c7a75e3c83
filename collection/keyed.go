// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"reflect"

	"cogentcore.org/inspector/base/keylist"
	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/base/slicesx"
	"cogentcore.org/inspector/visual"
)

// KeyedList is a [Keyed] proxy over a [keylist.List] with string keys.
// Insertion order is display order.
type KeyedList[V any] struct {
	Base

	// List is the list being edited.
	List *keylist.List[string, V]
}

// NewKeyed returns a new [KeyedList] proxy for the given list.
func NewKeyed[V any](kl *keylist.List[string, V], factory Factory) *KeyedList[V] {
	k := &KeyedList[V]{List: kl}
	k.Factory = factory
	return k
}

func (k *KeyedList[V]) Count() int { return k.List.Len() }

func (k *KeyedList[V]) ElemType() reflect.Type { return reflect.TypeFor[V]() }

func (k *KeyedList[V]) Key(i int) string {
	if !slicesx.InRange(i, k.Count()) {
		return ""
	}
	return k.List.Keys[i]
}

func (k *KeyedList[V]) Value(i int) any {
	if !slicesx.InRange(i, k.Count()) {
		return nil
	}
	return k.List.Values[i]
}

func (k *KeyedList[V]) kind(i int) reflect.Type {
	if !slicesx.InRange(i, k.Count()) {
		return nil
	}
	return reflectx.DynamicType(reflect.ValueOf(k.List.Values).Index(i))
}

func (k *KeyedList[V]) CreateVisual(i int) *visual.Node { return k.newVisual(i, k.kind(i)) }

func (k *KeyedList[V]) NeedsUpdate(n *visual.Node, i int) bool {
	return k.needsUpdate(n, i, k.kind(i))
}

func (k *KeyedList[V]) CanAdd() bool { return k.List != nil && k.canAdd() }

func (k *KeyedList[V]) CanAddKey(key string) bool {
	return key != "" && k.List != nil && !k.List.Has(key) && k.canAddKey(key)
}

func (k *KeyedList[V]) CanRemove(i int) bool { return k.canRemove(i, k.Count()) }

func (k *KeyedList[V]) CanReorder(from, to int) bool { return k.canReorder(from, to, k.Count()) }

// AddItem adds a default value with a generated unique key.
func (k *KeyedList[V]) AddItem() bool {
	if !k.CanAdd() {
		return false
	}
	nv, ok := newElem(k.ElemType())
	if !ok {
		return false
	}
	return k.AddKeyValue(UniqueKey(DefaultKey, k.List.Has), nv.Interface())
}

// AddValue adds the given value with a generated unique key.
func (k *KeyedList[V]) AddValue(value any) bool {
	if !k.CanAdd() {
		return false
	}
	return k.AddKeyValue(UniqueKey(DefaultKey, k.List.Has), value)
}

func (k *KeyedList[V]) AddKey(key string) bool {
	if !k.CanAddKey(key) {
		return false
	}
	nv, ok := newElem(k.ElemType())
	if !ok {
		return false
	}
	return k.AddKeyValue(key, nv.Interface())
}

func (k *KeyedList[V]) AddKeyValue(key string, value any) bool {
	if !k.CanAddKey(key) {
		return false
	}
	rv, ok := valueFor(value, k.ElemType())
	if !ok {
		return false
	}
	v, _ := rv.Interface().(V)
	return k.List.Add(key, v) == nil
}

func (k *KeyedList[V]) RemoveItem(i int) bool {
	if !k.CanRemove(i) {
		return false
	}
	return k.List.DeleteByIndex(i) == nil
}

func (k *KeyedList[V]) ReorderItem(from, to int) bool {
	if !k.CanReorder(from, to) {
		return false
	}
	return k.List.Move(from, to) == nil
}
