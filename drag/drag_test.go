// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import (
	"testing"

	"cogentcore.org/inspector/base/slicesx"
	"cogentcore.org/inspector/events"
	"cogentcore.org/inspector/visual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moves struct {
	items []string
	calls [][2]int
}

func (m *moves) reorder(from, to int) bool {
	m.calls = append(m.calls, [2]int{from, to})
	m.items = slicesx.Move(m.items, from, to)
	return true
}

func newContainer(items ...string) *visual.Container {
	c := &visual.Container{}
	for i, it := range items {
		n := visual.NewNode(i)
		n.Content = it
		c.Children = append(c.Children, n)
	}
	c.Relayout()
	return c
}

func labels(c *visual.Container) []string {
	var s []string
	for _, n := range c.Children {
		s = append(s, n.Content.(string))
	}
	return s
}

func setup() (*Controller, *moves) {
	m := &moves{items: []string{"A", "B", "C", "D"}}
	return New(newContainer(m.items...), m.reorder), m
}

func TestFirstToLast(t *testing.T) {
	dc, m := setup()
	require.True(t, dc.Press(0, events.Primary, 5))
	assert.Equal(t, Dragging, dc.State)
	assert.Len(t, dc.Container.Floating, 1)
	assert.True(t, dc.Container.Children[0].HasClass(visual.PlaceholderClass))

	for y := float32(5); y <= 200; y += 7 {
		dc.Move(y)
	}
	assert.Equal(t, 3, dc.Session.To)
	assert.Equal(t, 3, dc.Container.IndexOf(dc.Session.Placeholder))

	from, to, moved := dc.Release()
	assert.Equal(t, 0, from)
	assert.Equal(t, 3, to)
	assert.True(t, moved)
	assert.Equal(t, [][2]int{{0, 3}}, m.calls)
	assert.Equal(t, []string{"B", "C", "D", "A"}, m.items)
	assert.Equal(t, m.items, labels(dc.Container))
	assert.Equal(t, Idle, dc.State)
	assert.Nil(t, dc.Session)
	assert.Empty(t, dc.Container.Floating)
}

func TestLastToFirst(t *testing.T) {
	dc, m := setup()
	require.True(t, dc.Press(3, events.Primary, 65))
	for y := float32(65); y >= -20; y -= 5 {
		dc.Move(y)
	}
	assert.Equal(t, 0, dc.Session.To)
	from, to, moved := dc.Release()
	assert.Equal(t, 3, from)
	assert.Equal(t, 0, to)
	assert.True(t, moved)
	assert.Equal(t, []string{"D", "A", "B", "C"}, m.items)
	assert.Equal(t, m.items, labels(dc.Container))
}

func TestJumpMove(t *testing.T) {
	dc, m := setup()
	require.True(t, dc.Press(1, events.Primary, 30))
	assert.True(t, dc.Move(75))
	assert.Equal(t, 3, dc.Session.To)
	assert.True(t, dc.Move(-5))
	assert.Equal(t, 0, dc.Session.To)
	dc.Release()
	assert.Equal(t, []string{"B", "A", "C", "D"}, m.items)
}

func TestNoOp(t *testing.T) {
	dc, m := setup()
	require.True(t, dc.Press(1, events.Primary, 30))
	dc.Move(33)
	dc.Move(28)
	from, to, moved := dc.Release()
	assert.Equal(t, 1, from)
	assert.Equal(t, 1, to)
	assert.False(t, moved)
	assert.Empty(t, m.calls)
	assert.Equal(t, []string{"A", "B", "C", "D"}, labels(dc.Container))
}

func TestPressIgnored(t *testing.T) {
	dc, m := setup()
	assert.False(t, dc.Press(0, events.Right, 5))
	assert.False(t, dc.Press(9, events.Primary, 5))
	assert.Equal(t, Idle, dc.State)

	require.True(t, dc.Press(0, events.Primary, 5))
	s := dc.Session
	assert.False(t, dc.Press(2, events.Primary, 45))
	assert.Same(t, s, dc.Session)
	dc.Release()
	assert.Empty(t, m.calls)

	dc.Container.Children[2].ReorderEnabled = false
	assert.False(t, dc.Press(2, events.Primary, 45))

	dc.Enabled = func() bool { return false }
	assert.False(t, dc.Press(0, events.Primary, 5))

	_, _, moved := dc.Release()
	assert.False(t, moved)
	assert.False(t, dc.Move(10))
}

func TestCancel(t *testing.T) {
	dc, m := setup()
	require.True(t, dc.Press(0, events.Primary, 5))
	dc.Move(200)
	dc.Cancel()
	assert.Equal(t, Idle, dc.State)
	assert.Empty(t, m.calls)
	assert.Equal(t, []string{"A", "B", "C", "D"}, labels(dc.Container))
	for _, n := range dc.Container.Children {
		assert.False(t, n.HasClass(visual.DraggingClass))
		assert.False(t, n.Floating)
	}
}

func TestDraggedFollowsPointer(t *testing.T) {
	dc, _ := setup()
	require.True(t, dc.Press(1, events.Primary, 25))
	assert.Equal(t, float32(5), dc.Session.Offset)
	dc.Move(45)
	assert.Equal(t, float32(40), dc.Session.Dragged.Y)
	dc.Move(-100)
	assert.Equal(t, float32(0), dc.Session.Dragged.Y)
	dc.Move(500)
	assert.Equal(t, float32(60), dc.Session.Dragged.Y)
}

func TestStatesString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Dragging", Dragging.String())
	assert.Equal(t, "States(7)", States(7).String())
}
