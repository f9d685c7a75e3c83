// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer events that drive item
// reordering and the notifications raised by collection fields
// after a successful mutation.
package events

// Types determines the type of event, and also the
// level at which one can select which events to listen to.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// PointerDown happens when a pointer button is pressed down.
	// See [Pointer.Button] for which.
	PointerDown

	// PointerMove is sent when the pointer moves, with or without
	// a button down.
	PointerMove

	// PointerUp happens when a pointer button is released.
	PointerUp

	// ItemAdded is sent after an item has been added to a collection.
	ItemAdded

	// ItemRemoved is sent after an item has been removed from a collection.
	ItemRemoved

	// ItemReordered is sent after an item has been moved within a collection.
	ItemReordered

	// ItemsChanged is sent after any change to the items of a collection,
	// including size changes made outside of the collection field.
	ItemsChanged
)

var typesNames = [...]string{"UnknownType", "PointerDown", "PointerMove", "PointerUp", "ItemAdded", "ItemRemoved", "ItemReordered", "ItemsChanged"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typesNames) {
		return "Types(unknown)"
	}
	return typesNames[tp]
}

// Buttons is a pointer button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Primary is the button that starts drags.
const Primary = Left

var buttonsNames = [...]string{"NoButton", "Left", "Middle", "Right"}

func (bt Buttons) String() string {
	if bt < 0 || int(bt) >= len(buttonsNames) {
		return "Buttons(unknown)"
	}
	return buttonsNames[bt]
}
