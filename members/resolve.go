// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package members

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/reflectx"
)

// Resolve resolves the given name against the context as an accessor
// of type T. When T is a function type, methods and fields of exactly
// that type match and the binding value is the bound function itself.
// Otherwise methods of type func() T, function-valued fields of type
// func() T and fields of type T match, and the binding value is the
// current value of the member. Resolution is attempted in the order
// sibling value, method, property, field, stopping at the first match.
// If nothing matches, a diagnostic is logged once and the binding has
// kind [NotFound]; use [Binding.Or] to fall back to a default.
func Resolve[T any](cx Context, name string) Binding[T] {
	b, mismatch := resolve[T](cx, name)
	if b.Kind == NotFound {
		logNotFound(cx, name, reflect.TypeFor[T](), mismatch)
	}
	return b
}

// ResolveCallback resolves the given name as a callback of function
// type F, also accepting a method or field of type func(), which is
// adapted to F by the given function (typically ignoring arguments).
func ResolveCallback[F any](cx Context, name string, adapt func(f func()) F) Binding[F] {
	b, mismatch := resolve[F](cx, name)
	if b.Kind != NotFound {
		return b
	}
	b0, mismatch0 := resolve[func()](cx, name)
	if b0.Kind == NotFound {
		logNotFound(cx, name, reflect.TypeFor[F](), mismatch || mismatch0)
		return b
	}
	return Binding[F]{
		Kind:         b0.Kind,
		Name:         name,
		NeedsPolling: b0.NeedsPolling,
		get: func() F {
			f := b0.Value()
			if f == nil {
				var zero F
				return zero
			}
			return adapt(f)
		},
	}
}

// ResolveAction resolves the given name as a callback taking one
// argument, accepting both func(A) and func() members.
func ResolveAction[A any](cx Context, name string) Binding[func(A)] {
	return ResolveCallback(cx, name, func(f func()) func(A) {
		return func(A) { f() }
	})
}

func logNotFound(cx Context, name string, want reflect.Type, mismatch bool) {
	typ := cx.declaringType()
	msg := "members: could not resolve name"
	if mismatch {
		msg = "members: name resolved to a member of the wrong type"
	}
	key := fmt.Sprintf("%v.%s:%v:%s", typ, name, want, cx.Requester)
	errors.LogOnce(key, msg, "name", name, "requester", cx.Requester, "type", typ, "want", want)
}

// resolve does the lookup; mismatch reports whether a member with the
// name exists but has an incompatible type.
func resolve[T any](cx Context, name string) (b Binding[T], mismatch bool) {
	b.Name = name
	if name == "" {
		return
	}
	want := reflect.TypeFor[T]()
	isFunc := want.Kind() == reflect.Func

	// 1. sibling value
	if cx.Siblings != nil {
		if sib, ok := cx.Siblings.Sibling(name); ok {
			if st := sib.Type(); st != nil && st.AssignableTo(want) {
				b.Kind = SiblingValue
				b.sibling = sib
				b.get = func() T { return as[T](sib.Value()) }
				return
			}
			mismatch = true
		}
	}

	typ := cx.declaringType()
	var owner reflect.Value
	if !reflectx.AnyIsNil(cx.Owner) {
		owner = reflectx.OnePointerValue(reflect.ValueOf(cx.Owner))
	}

	// 2. method
	var methods []reflect.Value
	if owner.IsValid() {
		if m := owner.MethodByName(name); m.IsValid() {
			methods = append(methods, m)
		}
	}
	if fn, ok := cx.Statics.fn(typ, name); ok {
		methods = append(methods, fn)
	}
	for _, m := range methods {
		mt := m.Type()
		if mt.Kind() != reflect.Func {
			mismatch = true
			continue
		}
		switch {
		case isFunc && mt.AssignableTo(want):
			b.Kind = Method
			f := as[T](m.Interface())
			b.get = func() T { return f }
			return b, false
		case !isFunc && mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0).AssignableTo(want):
			b.Kind = Method
			b.NeedsPolling = true
			b.get = func() T { return as[T](m.Call(nil)[0].Interface()) }
			return b, false
		}
		mismatch = true
	}

	// 3. property and 4. field on the owner
	if owner.IsValid() {
		sv := owner.Elem()
		if sv.Kind() == reflect.Struct {
			sf, ok := sv.Type().FieldByName(name)
			var fv reflect.Value
			var err error
			if ok && sf.IsExported() {
				// a nil embedded pointer makes the field unreachable
				fv, err = sv.FieldByIndexErr(sf.Index)
			}
			if ok && sf.IsExported() && err == nil {
				ft := sf.Type
				switch {
				case !isFunc && ft.Kind() == reflect.Func && ft.NumIn() == 0 && ft.NumOut() == 1 && ft.Out(0).AssignableTo(want):
					b.Kind = Property
					b.NeedsPolling = true
					b.get = func() T {
						if fv.IsNil() {
							var zero T
							return zero
						}
						return as[T](fv.Call(nil)[0].Interface())
					}
					return b, false
				case ft.AssignableTo(want):
					b.Kind = Field
					b.NeedsPolling = true
					b.get = func() T { return as[T](fv.Interface()) }
					return b, false
				}
				mismatch = true
			}
		}
	}

	// 4. registered constant
	if cv, ok := cx.Statics.constant(typ, name); ok {
		if cv.IsValid() && cv.Type().AssignableTo(want) {
			b.Kind = Field
			v := as[T](cv.Interface())
			b.get = func() T { return v }
			return b, false
		}
		mismatch = true
	}
	return
}

// as converts v to T, returning the zero value if it is not a T
// (including a nil v for an interface T).
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}
