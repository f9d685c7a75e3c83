// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Pointer is a pointer event targeting an item of a collection.
// Only the vertical position matters for reordering.
type Pointer struct {
	Base

	// Button is the button that was pressed or released.
	Button Buttons

	// Y is the vertical position of the pointer in container coordinates.
	Y float32

	// Index is the index of the item whose visual is under the pointer,
	// or -1 if none.
	Index int

	// OnHandle is whether the pointer is over the reorder handle of the item.
	OnHandle bool
}

// NewPointer returns a new pointer event of the given type.
func NewPointer(typ Types, but Buttons, y float32, index int, onHandle bool) *Pointer {
	ev := &Pointer{Button: but, Y: y, Index: index, OnHandle: onHandle}
	ev.Init(typ)
	return ev
}

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{Button: %v, Y: %v, Index: %d, Time: %v}", ev.Type(), ev.Button, ev.Y, ev.Index, ev.Time().Format("04:05"))
}
