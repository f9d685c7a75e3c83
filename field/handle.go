// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"cogentcore.org/inspector/events"
)

// HandleEvent handles the given pointer event: a press on the reorder
// handle of an item starts dragging it, and moves and releases are
// forwarded to the drag in progress. Handled events are marked as such.
func (f *Field) HandleEvent(e events.Event) {
	pe, ok := e.(*events.Pointer)
	if !ok || e.IsHandled() {
		return
	}
	switch pe.Type() {
	case events.PointerDown:
		if f.Drag.Active() {
			pe.SetHandled()
			return
		}
		if pe.OnHandle && f.Drag.Press(pe.Index, pe.Button, pe.Y) {
			pe.SetHandled()
		}
	case events.PointerMove:
		if f.Drag.Active() {
			f.Drag.Move(pe.Y)
			pe.SetHandled()
		}
	case events.PointerUp:
		if f.Drag.Active() {
			f.release()
			pe.SetHandled()
		}
	}
}

// release ends the drag in progress, then runs any update
// that was deferred during it.
func (f *Field) release() {
	f.Drag.Release()
	f.runDeferred()
}

// CancelDrag ends the drag in progress without reordering.
func (f *Field) CancelDrag() {
	if !f.Drag.Active() {
		return
	}
	f.Drag.Cancel()
	f.runDeferred()
}

func (f *Field) runDeferred() {
	if !f.deferred {
		return
	}
	f.deferred = false
	f.Update()
	f.sendChanged()
}
