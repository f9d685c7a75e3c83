// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"reflect"
	"slices"

	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/base/slicesx"
	"cogentcore.org/inspector/visual"
)

// Typed is a [Proxy] over a slice with a static element type.
type Typed[T any] struct {
	Base

	// Slice is the pointer to the slice.
	Slice *[]T

	// New returns the value appended by AddItem. If it is nil, a new
	// default value is used, which fails for interface element types.
	New func() T
}

// NewTyped returns a new [Typed] proxy for the given slice.
func NewTyped[T any](s *[]T, factory Factory) *Typed[T] {
	t := &Typed[T]{Slice: s}
	t.Factory = factory
	return t
}

func (t *Typed[T]) Count() int {
	if t.Slice == nil {
		return 0
	}
	return len(*t.Slice)
}

func (t *Typed[T]) ElemType() reflect.Type { return reflect.TypeFor[T]() }

func (t *Typed[T]) Value(i int) any {
	if !slicesx.InRange(i, t.Count()) {
		return nil
	}
	return (*t.Slice)[i]
}

func (t *Typed[T]) kind(i int) reflect.Type {
	if !slicesx.InRange(i, t.Count()) {
		return nil
	}
	return reflectx.DynamicType(reflect.ValueOf(*t.Slice).Index(i))
}

func (t *Typed[T]) CreateVisual(i int) *visual.Node { return t.newVisual(i, t.kind(i)) }

func (t *Typed[T]) NeedsUpdate(n *visual.Node, i int) bool { return t.needsUpdate(n, i, t.kind(i)) }

func (t *Typed[T]) CanAdd() bool { return t.Slice != nil && t.canAdd() }

func (t *Typed[T]) CanRemove(i int) bool { return t.canRemove(i, t.Count()) }

func (t *Typed[T]) CanReorder(from, to int) bool { return t.canReorder(from, to, t.Count()) }

func (t *Typed[T]) AddItem() bool {
	if !t.CanAdd() {
		return false
	}
	if t.New != nil {
		*t.Slice = append(*t.Slice, t.New())
		return true
	}
	nv, ok := newElem(t.ElemType())
	if !ok {
		return false
	}
	*t.Slice = append(*t.Slice, nv.Interface().(T))
	return true
}

func (t *Typed[T]) AddValue(value any) bool {
	if !t.CanAdd() {
		return false
	}
	rv, ok := valueFor(value, t.ElemType())
	if !ok {
		return false
	}
	v, _ := rv.Interface().(T)
	*t.Slice = append(*t.Slice, v)
	return true
}

func (t *Typed[T]) RemoveItem(i int) bool {
	if !t.CanRemove(i) {
		return false
	}
	*t.Slice = slices.Delete(*t.Slice, i, i+1)
	return true
}

func (t *Typed[T]) ReorderItem(from, to int) bool {
	if !t.CanReorder(from, to) {
		return false
	}
	*t.Slice = slicesx.Move(*t.Slice, from, to)
	return true
}
