// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Item is a notification about a change to the items of a collection.
// Which fields are set depends on the type:
//   - [ItemAdded]: Index, Key (keyed collections only), Value
//   - [ItemRemoved]: Index, Key (keyed collections only)
//   - [ItemReordered]: From, To
//   - [ItemsChanged]: none
type Item struct {
	Base

	// Key is the key of the item, for keyed collections.
	Key string

	// Value is the value of the added item.
	Value any

	// Index is the index of the added or removed item.
	Index int

	// From is the index that a reordered item was moved from.
	From int

	// To is the index that a reordered item was moved to.
	To int
}

// NewItem returns a new item notification of the given type.
func NewItem(typ Types) *Item {
	ev := &Item{}
	ev.Init(typ)
	return ev
}

func (ev *Item) String() string {
	switch ev.Typ {
	case ItemAdded:
		return fmt.Sprintf("%v{Index: %d, Key: %q, Value: %v}", ev.Typ, ev.Index, ev.Key, ev.Value)
	case ItemRemoved:
		return fmt.Sprintf("%v{Index: %d, Key: %q}", ev.Typ, ev.Index, ev.Key)
	case ItemReordered:
		return fmt.Sprintf("%v{From: %d, To: %d}", ev.Typ, ev.From, ev.To)
	}
	return ev.Typ.String()
}
