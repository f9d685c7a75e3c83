// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., names) to indexes,
to support fast lookup by name. Insertion order is the
order of the list, and keys are unique.
*/
package keylist

import (
	"fmt"
	"slices"

	"cogentcore.org/inspector/base/slicesx"
)

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values]
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List].  The zero value
// is usable without initialization, so this is
// just a simple standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// initIndexes ensures that the index map exists.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.UpdateIndexes()
	}
}

// UpdateIndexes rebuilds the key-to-index map from Keys.
// This must be called after setting Keys directly.
func (kl *List[K, V]) UpdateIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// Add adds an item to the end of the list with given key.
// An error is returned if the key is already on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// Has returns whether the given key is on the list.
func (kl *List[K, V]) Has(key K) bool {
	if kl == nil {
		return false
	}
	kl.initIndexes()
	_, ok := kl.indexes[key]
	return ok
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key.
func (kl *List[K, V]) At(key K) V {
	kl.initIndexes()
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx]
	}
	var zv V
	return zv
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// IndexIsValid returns an error if the given index is invalid.
func (kl *List[K, V]) IndexIsValid(idx int) error {
	if !slicesx.InRange(idx, kl.Len()) {
		return fmt.Errorf("keylist.List: index %d is out of range of a list of length %d", idx, kl.Len())
	}
	return nil
}

// DeleteByIndex deletes the item at the given index.
// This is relatively slow because it needs to regenerate the
// index map.
func (kl *List[K, V]) DeleteByIndex(idx int) error {
	if err := kl.IndexIsValid(idx); err != nil {
		return err
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	kl.UpdateIndexes()
	return nil
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx := kl.IndexByKey(key)
	if idx < 0 {
		return false
	}
	return kl.DeleteByIndex(idx) == nil
}

// Move moves the item at index from to index to, with to interpreted
// against the list after the item has been removed.
func (kl *List[K, V]) Move(from, to int) error {
	if err := kl.IndexIsValid(from); err != nil {
		return err
	}
	if err := kl.IndexIsValid(to); err != nil {
		return err
	}
	kl.Keys = slicesx.Move(kl.Keys, from, to)
	kl.Values = slicesx.Move(kl.Values, from, to)
	kl.UpdateIndexes()
	return nil
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	sv := "{"
	for i, v := range kl.Values {
		sv += fmt.Sprintf("%v", kl.Keys[i]) + ": " + fmt.Sprintf("%v", v) + ", "
	}
	sv += "}"
	return sv
}
