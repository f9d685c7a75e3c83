// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import (
	"slices"
)

// DefaultRowHeight is the height given to nodes without a height by [StackLayout].
var DefaultRowHeight float32 = 20

// Container holds the item nodes of a collection field in display order,
// plus a floating layer for a node being dragged.
type Container struct {

	// Children are the nodes in display order. During a drag this includes
	// the placeholder and excludes the dragged node.
	Children []*Node

	// Floating holds nodes detached from the normal flow, drawn on top.
	Floating []*Node

	// Layout positions the children. It defaults to [StackLayout].
	Layout func(c *Container)

	// AddEnabled is whether the add affordance is enabled.
	AddEnabled bool

	// Empty is whether the collection has no items, in which case the
	// host shows the empty label.
	Empty bool

	// EmptyLabel is the text shown when the collection is empty.
	EmptyLabel string

	// EmptyTooltip is the tooltip of the empty label.
	EmptyTooltip string

	// ReadOnly is set when the field could not be bound and shows
	// a read-only placeholder instead of items.
	ReadOnly bool

	// Message is the text of the read-only placeholder.
	Message string
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.Children)
}

// Child returns the child at the given index, or nil if out of range.
func (c *Container) Child(i int) *Node {
	if i < 0 || i >= len(c.Children) {
		return nil
	}
	return c.Children[i]
}

// IndexOf returns the index of the given node in the children, or -1.
func (c *Container) IndexOf(n *Node) int {
	return slices.Index(c.Children, n)
}

// Insert inserts the given node at the given index; out of range
// indexes insert at the end.
func (c *Container) Insert(n *Node, i int) {
	if i < 0 || i > len(c.Children) {
		i = len(c.Children)
	}
	c.Children = slices.Insert(c.Children, i, n)
}

// Remove removes the given node from the children, returning false
// if it is not a child.
func (c *Container) Remove(n *Node) bool {
	i := c.IndexOf(n)
	if i < 0 {
		return false
	}
	c.Children = slices.Delete(c.Children, i, i+1)
	return true
}

// Float detaches the given node from the children into the floating layer.
func (c *Container) Float(n *Node) {
	c.Remove(n)
	n.Floating = true
	c.Floating = append(c.Floating, n)
}

// Unfloat removes the given node from the floating layer and inserts
// it back into the children at the given index.
func (c *Container) Unfloat(n *Node, i int) {
	c.Floating = slices.DeleteFunc(c.Floating, func(f *Node) bool { return f == n })
	n.Floating = false
	c.Insert(n, i)
}

// Relayout positions the children using the container layout.
func (c *Container) Relayout() {
	if c.Layout != nil {
		c.Layout(c)
		return
	}
	StackLayout(c)
}

// StackLayout stacks the children top to bottom starting at 0.
// Floating nodes keep their position.
func StackLayout(c *Container) {
	var y float32
	for _, n := range c.Children {
		if n.Height <= 0 {
			n.Height = DefaultRowHeight
		}
		n.Y = y
		y += n.Height
	}
}
