// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
)

// This file contains helpful functions for editing slices
// through a pointer, in the reflect system.

// sliceValue returns the settable slice value that the given
// pointer to a slice points to.
func sliceValue(sl any) (reflect.Value, error) {
	v := reflect.ValueOf(sl)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("reflectx: expected a non-nil pointer to a slice, not %T", sl)
	}
	v = NonPointerValue(v)
	if v.Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("reflectx: expected a pointer to a slice, not %T", sl)
	}
	return v, nil
}

// SliceElementType returns the type of the elements of the given
// pointer to a slice.
func SliceElementType(sl any) (reflect.Type, error) {
	v, err := sliceValue(sl)
	if err != nil {
		return nil, err
	}
	return v.Type().Elem(), nil
}

// SliceLen returns the length of the slice the given pointer points to,
// or 0 if it is not a pointer to a slice.
func SliceLen(sl any) int {
	v, err := sliceValue(sl)
	if err != nil {
		return 0
	}
	return v.Len()
}

// SliceInsertAt inserts the given value at the given index in the slice
// that sl points to. -1 means the end. The value must be assignable to
// the element type.
func SliceInsertAt(sl any, idx int, val reflect.Value) error {
	sv, err := sliceValue(sl)
	if err != nil {
		return err
	}
	et := sv.Type().Elem()
	if !val.IsValid() {
		val = reflect.Zero(et)
	}
	if !val.Type().AssignableTo(et) {
		return fmt.Errorf("reflectx.SliceInsertAt: value of type %v is not assignable to %v", val.Type(), et)
	}
	sz := sv.Len()
	if idx < 0 || idx > sz {
		idx = sz
	}
	nv := reflect.Append(sv, reflect.Zero(et))
	if idx < sz {
		reflect.Copy(nv.Slice(idx+1, sz+1), nv.Slice(idx, sz))
	}
	// the appended slot may share storage with a previous element
	// after the copy, so it is always explicitly set
	nv.Index(idx).Set(val)
	sv.Set(nv)
	return nil
}

// SliceDeleteAt deletes the element at the given index from the slice
// that sl points to, zeroing the vacated tail slot.
func SliceDeleteAt(sl any, idx int) error {
	sv, err := sliceValue(sl)
	if err != nil {
		return err
	}
	sz := sv.Len()
	if idx < 0 || idx >= sz {
		return fmt.Errorf("reflectx.SliceDeleteAt: index %d out of range of a slice of length %d", idx, sz)
	}
	reflect.Copy(sv.Slice(idx, sz-1), sv.Slice(idx+1, sz))
	sv.Index(sz - 1).Set(reflect.Zero(sv.Type().Elem()))
	sv.Set(sv.Slice(0, sz-1))
	return nil
}

// SliceMove removes the element at from and inserts it at to,
// with to interpreted against the slice after the removal.
func SliceMove(sl any, from, to int) error {
	sv, err := sliceValue(sl)
	if err != nil {
		return err
	}
	sz := sv.Len()
	if from < 0 || from >= sz || to < 0 || to >= sz {
		return fmt.Errorf("reflectx.SliceMove: move %d -> %d out of range of a slice of length %d", from, to, sz)
	}
	if from == to {
		return nil
	}
	e := reflect.New(sv.Type().Elem()).Elem()
	e.Set(sv.Index(from))
	if from < to {
		reflect.Copy(sv.Slice(from, to), sv.Slice(from+1, to+1))
	} else {
		reflect.Copy(sv.Slice(to+1, from+1), sv.Slice(to, from))
	}
	sv.Index(to).Set(e)
	return nil
}
