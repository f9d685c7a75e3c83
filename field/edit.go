// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"cogentcore.org/inspector/collection"
	"cogentcore.org/inspector/events"
)

// SetPendingKey sets the key typed in the add placeholder of a keyed
// collection, which is used by the next add.
func (f *Field) SetPendingKey(key string) {
	f.pendingKey = key
}

// PendingKey returns the key set by [Field.SetPendingKey].
func (f *Field) PendingKey() string {
	return f.pendingKey
}

// CanAddPendingKey returns whether an item can be added with the pending
// key, for enabling the add affordance of keyed collections.
func (f *Field) CanAddPendingKey() bool {
	if !f.CanAdd() {
		return false
	}
	k, ok := collection.AsKeyed(f.proxy)
	if !ok || f.pendingKey == "" {
		return ok
	}
	return k.CanAddKey(f.pendingKey)
}

// AddItem adds a new default item. When the item type is an interface and
// the field has a [Field.Selector], the user first chooses the type of the
// new item, so that the item may be added after AddItem returns. For keyed
// collections the pending key is used if set. It returns whether the item
// was added, or the choice of type started.
func (f *Field) AddItem() bool {
	if !f.CanAdd() {
		return false
	}
	if collection.IsPolymorphic(f.proxy) && f.Selector != nil {
		f.Selector.IncludeAbstract = f.Options.IncludeAbstract
		return f.Selector.Add(f)
	}
	if k, ok := collection.AsKeyed(f.proxy); ok && f.pendingKey != "" {
		return f.add(func() bool { return k.AddKey(f.pendingKey) })
	}
	return f.add(f.proxy.AddItem)
}

// AddValue adds the given value as a new item. For keyed collections
// the pending key is used if set.
func (f *Field) AddValue(value any) bool {
	if !f.CanAdd() {
		return false
	}
	if k, ok := collection.AsKeyed(f.proxy); ok && f.pendingKey != "" {
		return f.add(func() bool { return k.AddKeyValue(f.pendingKey, value) })
	}
	return f.add(func() bool { return f.proxy.AddValue(value) })
}

// AddKeyValue adds the given value with the given key. It returns
// false if the collection is not keyed.
func (f *Field) AddKeyValue(key string, value any) bool {
	if !f.CanAdd() {
		return false
	}
	k, ok := collection.AsKeyed(f.proxy)
	if !ok {
		return false
	}
	return f.add(func() bool { return k.AddKeyValue(key, value) })
}

// add runs the given add mutation, then updates and notifies.
func (f *Field) add(mutate func() bool) bool {
	index := f.proxy.Count()
	if !f.mutate(mutate) {
		return false
	}
	f.pendingKey = ""
	ev := events.NewItem(events.ItemAdded)
	ev.Index = index
	ev.Value = f.proxy.Value(index)
	ev.Key = f.key(index)
	f.send(ev)
	if f.delegates.onAdd != nil {
		f.delegates.onAdd(index)
	}
	f.sendChanged()
	return true
}

// RemoveItem removes the item at the given index.
func (f *Field) RemoveItem(index int) bool {
	if !f.canMutate() || !f.Options.AllowRemove {
		return false
	}
	key := f.key(index)
	if !f.mutate(func() bool { return f.proxy.RemoveItem(index) }) {
		return false
	}
	ev := events.NewItem(events.ItemRemoved)
	ev.Index = index
	ev.Key = key
	f.send(ev)
	if f.delegates.onRemove != nil {
		f.delegates.onRemove(index)
	}
	f.sendChanged()
	return true
}

// ReorderItem moves the item at from to to, with to interpreted against
// the sequence after removing the item. Moving an item to where it is
// does nothing and sends nothing.
func (f *Field) ReorderItem(from, to int) bool {
	if !f.canMutate() || !f.Options.AllowReorder || from == to {
		return false
	}
	if !f.mutate(func() bool { return f.proxy.ReorderItem(from, to) }) {
		f.Update()
		return false
	}
	ev := events.NewItem(events.ItemReordered)
	ev.From = from
	ev.To = to
	f.send(ev)
	if f.delegates.onReorder != nil {
		f.delegates.onReorder(from, to)
	}
	f.sendChanged()
	return true
}

// mutate runs the given proxy mutation and updates the item visuals
// if it succeeds.
func (f *Field) mutate(fun func() bool) bool {
	f.mutating = true
	ok := fun()
	f.mutating = false
	if ok {
		f.Update()
	}
	return ok
}

// key returns the key of the item at the given index for keyed
// collections, and "" otherwise.
func (f *Field) key(index int) string {
	if k, ok := collection.AsKeyed(f.proxy); ok {
		return k.Key(index)
	}
	return ""
}
