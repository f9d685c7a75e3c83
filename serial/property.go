// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/slicesx"
)

// Property is a named value of an [Object]. Array properties hold an
// ordered list of elements instead of a single value. All setters edit
// the working copy; call [Object.ApplyModified] to commit.
type Property struct {

	// Name is the name of the property.
	Name string

	// IsArray is whether this is an array property.
	IsArray bool

	// ElemType is the element type of an array property.
	ElemType reflect.Type

	obj   *Object
	typ   reflect.Type
	value any
	elems []any
	dirty bool

	// committedLen is the array length as of the last commit.
	committedLen int

	change signal
	resize signal
}

// Object returns the object that owns the property.
func (pr *Property) Object() *Object { return pr.obj }

// Type returns the storage type of the property.
func (pr *Property) Type() reflect.Type { return pr.typ }

// Value returns the working value of a scalar property,
// or a copy of the elements of an array property.
func (pr *Property) Value() any {
	if pr.IsArray {
		return append([]any(nil), pr.elems...)
	}
	return pr.value
}

// SetValue sets the working value of a scalar property.
func (pr *Property) SetValue(v any) error {
	if pr.IsArray {
		return fmt.Errorf("serial.Property %q: SetValue on an array property", pr.Name)
	}
	if v != nil && pr.typ != nil && !reflect.TypeOf(v).AssignableTo(pr.typ) {
		return fmt.Errorf("serial.Property %q: value of type %T is not assignable to %v", pr.Name, v, pr.typ)
	}
	pr.value = v
	pr.dirty = true
	return nil
}

// OnChange adds a function called after the property is committed.
// It returns a function that removes it.
func (pr *Property) OnChange(f func()) (cancel func()) {
	return pr.change.add(f)
}

// OnResize adds a function called after a commit that changed the
// length of the array. This is the resize signal that reaches any
// field showing the array, whatever made the change.
func (pr *Property) OnResize(f func()) (cancel func()) {
	return pr.resize.add(f)
}

// Len returns the number of elements of an array property.
func (pr *Property) Len() int {
	return len(pr.elems)
}

// Elem returns the element at the given index.
func (pr *Property) Elem(i int) (any, error) {
	if !slicesx.InRange(i, len(pr.elems)) {
		return nil, pr.indexError(i)
	}
	return pr.elems[i], nil
}

// SetElem sets the element at the given index.
func (pr *Property) SetElem(i int, v any) error {
	if !slicesx.InRange(i, len(pr.elems)) {
		return pr.indexError(i)
	}
	if v != nil && !reflect.TypeOf(v).AssignableTo(pr.ElemType) {
		return fmt.Errorf("serial.Property %q: element of type %T is not assignable to %v", pr.Name, v, pr.ElemType)
	}
	pr.elems[i] = v
	pr.dirty = true
	return nil
}

// SetLen resizes the array. Like the array resize of most serialized
// formats, growing copies the last element into every new slot (or uses
// the zero value when the array is empty), so callers that need a fresh
// default must set it explicitly.
func (pr *Property) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n < len(pr.elems):
		clear(pr.elems[n:])
		pr.elems = pr.elems[:n]
	case n > len(pr.elems):
		var fill any
		if len(pr.elems) > 0 {
			fill = pr.elems[len(pr.elems)-1]
		} else if pr.ElemType != nil {
			fill = reflect.Zero(pr.ElemType).Interface()
		}
		for len(pr.elems) < n {
			pr.elems = append(pr.elems, fill)
		}
	default:
		return
	}
	pr.dirty = true
}

// DeleteElem removes the element at the given index.
func (pr *Property) DeleteElem(i int) error {
	if !slicesx.InRange(i, len(pr.elems)) {
		return pr.indexError(i)
	}
	copy(pr.elems[i:], pr.elems[i+1:])
	pr.elems[len(pr.elems)-1] = nil
	pr.elems = pr.elems[:len(pr.elems)-1]
	pr.dirty = true
	return nil
}

// MoveElem moves the element at from to to, with to interpreted
// against the array after the removal.
func (pr *Property) MoveElem(from, to int) error {
	if !slicesx.InRange(from, len(pr.elems)) {
		return pr.indexError(from)
	}
	if !slicesx.InRange(to, len(pr.elems)) {
		return pr.indexError(to)
	}
	pr.elems = slicesx.Move(pr.elems, from, to)
	pr.dirty = true
	return nil
}

func (pr *Property) indexError(i int) error {
	return fmt.Errorf("serial.Property %q: index %d is out of range of an array of length %d", pr.Name, i, len(pr.elems))
}

// signal is a list of listener functions.
type signal struct {
	fns []*func()
}

func (s *signal) add(f func()) func() {
	p := &f
	s.fns = append(s.fns, p)
	return func() {
		for i, fp := range s.fns {
			if fp == p {
				s.fns = append(s.fns[:i], s.fns[i+1:]...)
				return
			}
		}
	}
}

func (s *signal) emit() {
	for _, f := range append([]*func(){}, s.fns...) {
		(*f)()
	}
}
