// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "time"

// Event is the interface for all events.
type Event interface {
	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as handled, so that later listeners
	// are not called.
	SetHandled()
}

// Base is the base type for events.
type Base struct {
	// Typ is the type of event
	Typ Types

	// GenTime records the time when the event was first generated
	GenTime time.Time

	// Handled is whether the event has been handled.
	Handled bool
}

func (ev *Base) Type() Types { return ev.Typ }

func (ev *Base) Time() time.Time { return ev.GenTime }

func (ev *Base) IsHandled() bool { return ev.Handled }

func (ev *Base) SetHandled() { ev.Handled = true }

// Init sets the type and generation time of the event.
func (ev *Base) Init(typ Types) {
	ev.Typ = typ
	ev.GenTime = time.Now()
}
