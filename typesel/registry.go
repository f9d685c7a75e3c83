// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package typesel lists the concrete types that can be instantiated
// for an item of a polymorphic collection, and lets the user choose
// one of them to add a new item.
package typesel

import (
	"fmt"
	"reflect"
	"sync"

	"cogentcore.org/inspector/base/keylist"
	"cogentcore.org/inspector/base/reflectx"
	"github.com/jinzhu/copier"
)

// Candidate is a type that can be instantiated for a new item.
type Candidate struct {

	// Type is the type of the values made by New.
	Type reflect.Type

	// Path is the display path of the type, such as "Shapes/Circle".
	Path string

	// Icon is the name of the icon shown for the type.
	Icon string

	// Abstract types are only listed when asked for.
	Abstract bool

	// New returns a new default value of Type.
	New func() any
}

func (c *Candidate) String() string {
	return c.Path
}

// Options are the optional settings for [Registry.Register].
type Options struct {

	// Path is the display path. It defaults to the type name.
	Path string

	// Icon is the icon name.
	Icon string

	// Abstract marks the type as abstract.
	Abstract bool

	// New makes a new value. It defaults to a deep copy of the prototype.
	New func() any
}

// Registry has the types that can be instantiated, in registration order.
type Registry struct {
	mu    sync.Mutex
	types keylist.List[reflect.Type, *Candidate]
}

// Types is the default registry.
var Types = &Registry{}

// Register adds the type of the given prototype value to the registry.
// New values are deep copies of the prototype unless opts.New is set.
// It returns an error if the type is already registered or proto is nil.
func (r *Registry) Register(proto any, opts Options) (*Candidate, error) {
	if reflectx.AnyIsNil(proto) {
		return nil, fmt.Errorf("typesel.Register: nil prototype")
	}
	typ := reflect.TypeOf(proto)
	c := &Candidate{Type: typ, Path: opts.Path, Icon: opts.Icon, Abstract: opts.Abstract, New: opts.New}
	if c.Path == "" {
		c.Path = reflectx.NonPointerType(typ).Name()
	}
	if c.New == nil {
		c.New = func() any { return clone(proto) }
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.types.Add(typ, c); err != nil {
		return nil, fmt.Errorf("typesel.Register: type %v already registered", typ)
	}
	return c, nil
}

// Register adds the type of the given prototype value to [Types].
func Register(proto any, opts Options) (*Candidate, error) {
	return Types.Register(proto, opts)
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.types.Len()
}

// Assignable returns the registered types that are assignable to base,
// in registration order. Abstract types are only included if asked for.
func (r *Registry) Assignable(base reflect.Type, includeAbstract bool) []*Candidate {
	r.mu.Lock()
	defer r.mu.Unlock()
	var cs []*Candidate
	for _, c := range r.types.Values {
		if c.Abstract && !includeAbstract {
			continue
		}
		if base != nil && !c.Type.AssignableTo(base) {
			continue
		}
		cs = append(cs, c)
	}
	return cs
}

// clone returns a deep copy of the given prototype, of the same type.
func clone(proto any) any {
	typ := reflect.TypeOf(proto)
	nt := reflectx.NonPointerType(typ)
	nv := reflect.New(nt)
	src := reflectx.OnePointerValue(reflect.ValueOf(proto))
	if nt.Kind() == reflect.Struct || nt.Kind() == reflect.Map || nt.Kind() == reflect.Slice {
		if err := copier.CopyWithOption(nv.Interface(), src.Interface(), copier.Option{DeepCopy: true}); err != nil {
			panic(err)
		}
	} else {
		nv.Elem().Set(src.Elem())
	}
	if typ.Kind() == reflect.Pointer {
		return nv.Interface()
	}
	return nv.Elem().Interface()
}
