// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListeners(t *testing.T) {
	var ls Listeners
	var order []string
	ls.Add(ItemAdded, func(ev Event) { order = append(order, "first") })
	ls.Add(ItemAdded, func(ev Event) { order = append(order, "second") })
	ls.Call(NewItem(ItemAdded))
	assert.Equal(t, []string{"second", "first"}, order)

	order = nil
	ls.Add(ItemAdded, func(ev Event) {
		order = append(order, "handler")
		ev.SetHandled()
	})
	ls.Call(NewItem(ItemAdded))
	assert.Equal(t, []string{"handler"}, order)

	order = nil
	ls.Call(NewItem(ItemRemoved))
	assert.Empty(t, order)
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "ItemReordered", ItemReordered.String())
	assert.Equal(t, "Types(unknown)", Types(99).String())
	ev := NewItem(ItemReordered)
	ev.From, ev.To = 1, 3
	assert.Equal(t, "ItemReordered{From: 1, To: 3}", ev.String())
}
