// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package members resolves symbolic names configured on a field into
// typed accessors and callbacks on a host object, without any static
// binding. A name is looked up in a fixed order: a sibling data value
// of the host record, a method, a property (a function-valued field),
// and finally a plain field or registered constant. The result is a
// [Binding] tagged with the [Kind] of member that was found, so callers
// branch on the tag instead of handling errors.
package members

import (
	"reflect"
	"time"

	"cogentcore.org/inspector/base/reflectx"
)

// PollInterval is the interval at which bindings that do not send
// change notifications are re-evaluated by [Binding.Track].
var PollInterval = 100 * time.Millisecond

// Kind is the kind of member that a name resolved to.
type Kind int32

const (
	// NotFound means that no matching member was found.
	NotFound Kind = iota

	// SiblingValue is a data value stored next to the field on the host record.
	SiblingValue

	// Method is a method on the declaring type, or a registered static function.
	Method

	// Property is a function-valued field returning the requested type.
	Property

	// Field is a field of the requested type, or a registered constant.
	Field
)

var kindNames = [...]string{"NotFound", "SiblingValue", "Method", "Property", "Field"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(unknown)"
	}
	return kindNames[k]
}

// Sibling is a data value stored on the same host record as the field
// that refers to it. It notifies when its value changes.
type Sibling interface {
	// Value returns the current value.
	Value() any

	// Type returns the storage type of the value.
	Type() reflect.Type

	// OnChange adds a function called when the value changes,
	// returning a function that removes it.
	OnChange(f func()) (cancel func())
}

// SiblingSource looks up sibling values by name.
type SiblingSource interface {
	Sibling(name string) (Sibling, bool)
}

// Context is what symbolic names are resolved against.
type Context struct {

	// Owner is the instance that methods and fields are bound to.
	// It is nil when only static members are available.
	Owner any

	// Type is the declaring type. It defaults to the type of Owner.
	Type reflect.Type

	// Siblings are the data values of the host record, if any.
	Siblings SiblingSource

	// Statics holds static functions and constants of the declaring type.
	Statics *Statics

	// Requester names what asked for the member (for example the option
	// that holds the name), for diagnostics.
	Requester string
}

// declaringType returns the declaring type of the context.
func (cx *Context) declaringType() reflect.Type {
	if cx.Type != nil {
		return cx.Type
	}
	if cx.Owner != nil {
		return reflect.TypeOf(cx.Owner)
	}
	return nil
}

type staticKey struct {
	typ  reflect.Type
	name string
}

// Statics is a registry of static members: package-level functions and
// constants that belong to a type. Go reflection cannot enumerate these,
// so they are registered explicitly.
type Statics struct {
	funcs  map[staticKey]reflect.Value
	consts map[staticKey]reflect.Value
}

// NewStatics returns a new empty registry.
func NewStatics() *Statics {
	return &Statics{funcs: map[staticKey]reflect.Value{}, consts: map[staticKey]reflect.Value{}}
}

// Func registers a static function with the given name on the given type.
func (st *Statics) Func(typ reflect.Type, name string, fn any) *Statics {
	st.funcs[staticKey{reflectx.NonPointerType(typ), name}] = reflect.ValueOf(fn)
	return st
}

// Const registers a constant with the given name on the given type.
// Constants never change, so their bindings are never polled.
func (st *Statics) Const(typ reflect.Type, name string, v any) *Statics {
	st.consts[staticKey{reflectx.NonPointerType(typ), name}] = reflect.ValueOf(v)
	return st
}

func (st *Statics) fn(typ reflect.Type, name string) (reflect.Value, bool) {
	if st == nil || typ == nil {
		return reflect.Value{}, false
	}
	v, ok := st.funcs[staticKey{reflectx.NonPointerType(typ), name}]
	return v, ok
}

func (st *Statics) constant(typ reflect.Type, name string) (reflect.Value, bool) {
	if st == nil || typ == nil {
		return reflect.Value{}, false
	}
	v, ok := st.consts[staticKey{reflectx.NonPointerType(typ), name}]
	return v, ok
}
