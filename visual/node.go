// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package visual provides the headless visual placeholders that a
// collection field keeps in sync with its items: item nodes tagged
// with the index they represent, the container that holds them,
// and the geometry needed for pointer-driven reordering.
// Rendering is left to the host, which reads the node state.
package visual

import (
	"fmt"
	"reflect"
	"slices"
)

// Standard classes set on nodes.
const (
	// EvenClass is set on item nodes at even indexes.
	EvenClass = "even"

	// OddClass is set on item nodes at odd indexes.
	OddClass = "odd"

	// PlaceholderClass is set on the drop placeholder during a drag.
	PlaceholderClass = "placeholder"

	// DraggingClass is set on the node being dragged.
	DraggingClass = "dragging"
)

// Node is a visual placeholder for one item of a collection.
type Node struct {

	// Index is the index of the item that this node currently represents.
	Index int

	// Kind is the dynamic type of the item when the node content was
	// created, used to detect that a different type now occupies the slot.
	Kind reflect.Type

	// Content is the host-specific content of the node, as returned
	// by the item visual factory.
	Content any

	// Classes are the style classes of the node.
	Classes []string

	// Tooltip is the tooltip text for the node.
	Tooltip string

	// RemoveEnabled is whether the remove affordance of the item is enabled.
	RemoveEnabled bool

	// ReorderEnabled is whether the reorder handle of the item is enabled.
	ReorderEnabled bool

	// Y is the top of the node in container coordinates, set by layout.
	Y float32

	// Height is the height of the node.
	Height float32

	// Floating is whether the node has been detached to the floating layer.
	Floating bool

	// Updaters are called whenever the node is refreshed for its current
	// index, in the order they were added.
	Updaters []func(n *Node)

	// Destroyed is set when the node has been discarded.
	Destroyed bool
}

// NewNode returns a new node tagged with the given index.
func NewNode(index int) *Node {
	return &Node{Index: index, RemoveEnabled: true, ReorderEnabled: true}
}

func (n *Node) String() string {
	return fmt.Sprintf("Node{Index: %d, Classes: %v}", n.Index, n.Classes)
}

// Updater adds a function called whenever the node is refreshed.
func (n *Node) Updater(f func(n *Node)) {
	n.Updaters = append(n.Updaters, f)
}

// Update calls the node updaters.
func (n *Node) Update() {
	for _, f := range n.Updaters {
		f(n)
	}
}

// HasClass returns whether the node has the given class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.Classes, class)
}

// AddClass adds the given class if it is not already present.
func (n *Node) AddClass(class string) {
	if !n.HasClass(class) {
		n.Classes = append(n.Classes, class)
	}
}

// RemoveClass removes the given class.
func (n *Node) RemoveClass(class string) {
	n.Classes = slices.DeleteFunc(n.Classes, func(c string) bool { return c == class })
}

// SetRowClass sets the even or odd class for the given index.
func (n *Node) SetRowClass(index int) {
	if index%2 == 0 {
		n.RemoveClass(OddClass)
		n.AddClass(EvenClass)
	} else {
		n.RemoveClass(EvenClass)
		n.AddClass(OddClass)
	}
}

// Center returns the vertical center of the node.
func (n *Node) Center() float32 {
	return n.Y + n.Height/2
}

// Destroy marks the node as discarded.
func (n *Node) Destroy() {
	n.Destroyed = true
	n.Updaters = nil
}
