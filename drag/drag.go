// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drag implements pointer-driven reordering of the item
// visuals of a [visual.Container]: a pressed item is detached to the
// floating layer and follows the pointer while a placeholder marks
// the slot where it will be dropped.
package drag

import (
	"log/slog"
	"strconv"

	"cogentcore.org/inspector/events"
	"cogentcore.org/inspector/visual"
	"github.com/chewxy/math32"
)

// States are the states of a [Controller].
type States int32

const (
	// Idle is the state when no drag is in progress.
	Idle States = iota

	// Dragging is the state while an item is being dragged.
	Dragging
)

func (s States) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	}
	return "States(" + strconv.Itoa(int(s)) + ")"
}

// Session is the state of the drag in progress.
type Session struct {

	// From is the index the dragged item started at.
	From int

	// To is the index the dragged item will be dropped at, interpreted
	// against the sequence without the dragged item.
	To int

	// Dragged is the visual being dragged, in the floating layer.
	Dragged *visual.Node

	// Placeholder is the visual marking the drop slot.
	Placeholder *visual.Node

	// Offset is the distance from the top of the dragged visual
	// to the pointer at press time.
	Offset float32
}

// Controller runs the drag state machine over a container.
type Controller struct {

	// Container has the item visuals.
	Container *visual.Container

	// Reorder is called on release when the item was moved, and reports
	// whether the move was accepted.
	Reorder func(from, to int) bool

	// Enabled reports whether reordering is currently allowed.
	// A nil function allows it.
	Enabled func() bool

	// State is the current state.
	State States

	// Session is the drag in progress, or nil when idle.
	Session *Session
}

// New returns a new controller for the given container.
func New(c *visual.Container, reorder func(from, to int) bool) *Controller {
	return &Controller{Container: c, Reorder: reorder}
}

// Active returns whether a drag is in progress.
func (dc *Controller) Active() bool {
	return dc.State == Dragging
}

// Press starts dragging the visual at the given index for a press of the
// given button at vertical position y. Only the primary button starts a
// drag, and presses are ignored while a drag is in progress. It returns
// whether a drag was started.
func (dc *Controller) Press(index int, button events.Buttons, y float32) bool {
	if dc.Active() || button != events.Primary {
		return false
	}
	if dc.Enabled != nil && !dc.Enabled() {
		return false
	}
	c := dc.Container
	n := c.Child(index)
	if n == nil || !n.ReorderEnabled {
		return false
	}
	ph := visual.NewNode(index)
	ph.AddClass(visual.PlaceholderClass)
	ph.Y = n.Y
	ph.Height = n.Height
	c.Float(n)
	c.Insert(ph, index)
	n.AddClass(visual.DraggingClass)
	dc.Session = &Session{From: index, To: index, Dragged: n, Placeholder: ph, Offset: y - n.Y}
	dc.State = Dragging
	slog.Debug("drag.Press", "index", index)
	return true
}

// Move moves the dragged visual to follow the pointer at vertical
// position y and moves the placeholder before the first visual whose
// vertical center is below the pointer, or to the end if there is none.
// It returns whether the drop slot changed.
func (dc *Controller) Move(y float32) bool {
	if !dc.Active() || math32.IsNaN(y) {
		return false
	}
	s := dc.Session
	c := dc.Container
	top := y - s.Offset
	s.Dragged.Y = math32.Max(0, math32.Min(top, dc.extent()-s.Dragged.Height))

	cand := len(c.Children)
	for i, n := range c.Children {
		if n == s.Placeholder {
			continue
		}
		if n.Center() > y {
			cand = i
			break
		}
	}
	to := cand
	if cand > s.To {
		to = cand - 1
	}
	if to == s.To {
		return false
	}
	s.To = to
	c.Remove(s.Placeholder)
	c.Insert(s.Placeholder, to)
	c.Relayout()
	return true
}

// extent returns the bottom of the last child.
func (dc *Controller) extent() float32 {
	var b float32
	for _, n := range dc.Container.Children {
		b = math32.Max(b, n.Y+n.Height)
	}
	return b
}

// Release ends the drag, putting the dragged visual back in place of the
// placeholder, and calls [Controller.Reorder] if the item was moved.
// It returns the from and to indexes of the drag, and whether the item
// was moved and the move accepted.
func (dc *Controller) Release() (from, to int, moved bool) {
	if !dc.Active() {
		return -1, -1, false
	}
	s := dc.Session
	dc.restore(dc.Container.IndexOf(s.Placeholder))
	slog.Debug("drag.Release", "from", s.From, "to", s.To)
	if s.From == s.To {
		return s.From, s.To, false
	}
	moved = true
	if dc.Reorder != nil {
		moved = dc.Reorder(s.From, s.To)
	}
	return s.From, s.To, moved
}

// Cancel ends the drag, putting the dragged visual back where it
// started, without reordering.
func (dc *Controller) Cancel() {
	if !dc.Active() {
		return
	}
	dc.restore(dc.Session.From)
}

func (dc *Controller) restore(index int) {
	s := dc.Session
	c := dc.Container
	c.Remove(s.Placeholder)
	s.Placeholder.Destroy()
	c.Unfloat(s.Dragged, index)
	s.Dragged.RemoveClass(visual.DraggingClass)
	c.Relayout()
	dc.State = Idle
	dc.Session = nil
}
