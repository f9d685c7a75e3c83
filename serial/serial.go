// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package serial provides a model of a host's serialized object:
// a record of named properties, some of which are arrays, that are
// edited in a working copy and committed to a persisted snapshot with
// [Object.ApplyModified]. Committing fires change notifications for
// modified values and a resize signal for arrays whose size changed.
package serial

import (
	"fmt"
	"reflect"
	"slices"

	"cogentcore.org/inspector/base/keylist"
	"cogentcore.org/inspector/members"
)

// Pair is an element of a keyed property array.
type Pair struct {
	Key   string
	Value any
}

// Object is a serialized record with named properties.
type Object struct {

	// Name is the name of the object, used in diagnostics.
	Name string

	props keylist.List[string, *Property]

	persisted map[string]any
}

// NewObject returns a new empty object with the given name.
func NewObject(name string) *Object {
	return &Object{Name: name, persisted: map[string]any{}}
}

// AddValue adds a scalar property with the given initial value,
// which also determines its type.
func (ob *Object) AddValue(name string, value any) (*Property, error) {
	pr := &Property{Name: name, obj: ob, value: value, typ: reflect.TypeOf(value)}
	if err := ob.props.Add(name, pr); err != nil {
		return nil, fmt.Errorf("serial.Object %q: %w", ob.Name, err)
	}
	ob.persisted[name] = value
	return pr, nil
}

// AddArray adds an array property with the given element type and elements.
func (ob *Object) AddArray(name string, elemType reflect.Type, elems ...any) (*Property, error) {
	pr := &Property{Name: name, obj: ob, IsArray: true, ElemType: elemType, elems: slices.Clone(elems)}
	pr.typ = reflect.SliceOf(elemType)
	if err := ob.props.Add(name, pr); err != nil {
		return nil, fmt.Errorf("serial.Object %q: %w", ob.Name, err)
	}
	ob.persisted[name] = slices.Clone(elems)
	pr.committedLen = len(elems)
	return pr, nil
}

// Property returns the property with the given name.
func (ob *Object) Property(name string) (*Property, bool) {
	if !ob.props.Has(name) {
		return nil, false
	}
	return ob.props.At(name), true
}

// Properties returns the names of all properties in declaration order.
func (ob *Object) Properties() []string {
	return slices.Clone(ob.props.Keys)
}

// Persisted returns the committed value of the given property:
// the value for scalars and a []any for arrays.
func (ob *Object) Persisted(name string) any {
	return ob.persisted[name]
}

// ApplyModified commits all modified properties to the persisted
// representation. Value change listeners are called for every committed
// property, and resize listeners for every array whose length differs
// from its last committed length. It returns whether anything was committed.
func (ob *Object) ApplyModified() bool {
	var changed, resized []*Property
	for _, pr := range ob.props.Values {
		if !pr.dirty {
			continue
		}
		pr.dirty = false
		changed = append(changed, pr)
		if pr.IsArray {
			ob.persisted[pr.Name] = slices.Clone(pr.elems)
			if len(pr.elems) != pr.committedLen {
				pr.committedLen = len(pr.elems)
				resized = append(resized, pr)
			}
			continue
		}
		ob.persisted[pr.Name] = pr.value
	}
	// notify after all properties are committed, as listeners may read siblings
	for _, pr := range resized {
		pr.resize.emit()
	}
	for _, pr := range changed {
		pr.change.emit()
	}
	return len(changed) > 0
}

// Sibling returns the named property as a [members.Sibling], so that
// symbolic names on a field of this object can bind to sibling values.
func (ob *Object) Sibling(name string) (members.Sibling, bool) {
	pr, ok := ob.Property(name)
	if !ok {
		return nil, false
	}
	return pr, true
}
