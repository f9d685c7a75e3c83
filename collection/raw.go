// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/visual"
)

// Raw is a [Proxy] over a slice of any type, edited through reflection.
// Its items can be of an interface type.
type Raw struct {
	Base

	// slice is the pointer to the slice.
	slice any

	elemType reflect.Type
}

// NewRaw returns a new [Raw] proxy for the given pointer to a slice.
func NewRaw(slicePtr any, factory Factory) (*Raw, error) {
	et, err := reflectx.SliceElementType(slicePtr)
	if err != nil {
		return nil, fmt.Errorf("collection.NewRaw: %w", err)
	}
	r := &Raw{slice: slicePtr, elemType: et}
	r.Factory = factory
	return r, nil
}

// Slice returns the pointer to the slice.
func (r *Raw) Slice() any { return r.slice }

func (r *Raw) Count() int { return reflectx.SliceLen(r.slice) }

func (r *Raw) ElemType() reflect.Type { return r.elemType }

func (r *Raw) index(i int) reflect.Value {
	return reflectx.NonPointerValue(reflect.ValueOf(r.slice)).Index(i)
}

func (r *Raw) kind(i int) reflect.Type {
	if i < 0 || i >= r.Count() {
		return nil
	}
	return reflectx.DynamicType(r.index(i))
}

func (r *Raw) Value(i int) any {
	if i < 0 || i >= r.Count() {
		return nil
	}
	return r.index(i).Interface()
}

func (r *Raw) CreateVisual(i int) *visual.Node { return r.newVisual(i, r.kind(i)) }

func (r *Raw) NeedsUpdate(n *visual.Node, i int) bool { return r.needsUpdate(n, i, r.kind(i)) }

func (r *Raw) CanAdd() bool { return r.canAdd() }

func (r *Raw) CanRemove(i int) bool { return r.canRemove(i, r.Count()) }

func (r *Raw) CanReorder(from, to int) bool { return r.canReorder(from, to, r.Count()) }

func (r *Raw) AddItem() bool {
	if !r.CanAdd() {
		return false
	}
	nv, ok := newElem(r.elemType)
	if !ok {
		return false
	}
	return reflectx.SliceInsertAt(r.slice, -1, nv) == nil
}

func (r *Raw) AddValue(value any) bool {
	if !r.CanAdd() {
		return false
	}
	rv, ok := valueFor(value, r.elemType)
	if !ok {
		return false
	}
	return reflectx.SliceInsertAt(r.slice, -1, rv) == nil
}

func (r *Raw) RemoveItem(i int) bool {
	if !r.CanRemove(i) {
		return false
	}
	return reflectx.SliceDeleteAt(r.slice, i) == nil
}

func (r *Raw) ReorderItem(from, to int) bool {
	if !r.CanReorder(from, to) {
		return false
	}
	return reflectx.SliceMove(r.slice, from, to) == nil
}
