// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collection

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/base/slicesx"
	"cogentcore.org/inspector/serial"
	"cogentcore.org/inspector/visual"
	"github.com/jinzhu/copier"
)

// PropertyArray is a [Proxy] over an array property of a serialized
// host object. Every mutation is committed with [serial.Object.ApplyModified]
// as its last step, which also fires the resize signal of the array.
// Arrays of [serial.Pair] are keyed, and PropertyArray then also
// implements [Keyed].
type PropertyArray struct {
	Base

	// Default is the value that new slots are reset to by AddItem.
	// It is deep copied for each new item. If it is nil, a new default
	// value of the element type is used.
	Default any

	obj   *serial.Object
	prop  *serial.Property
	keyed bool
}

// NewPropertyArray returns a new [PropertyArray] for the array property
// with the given name on the given object. It is an error for the
// property to be missing or not to be an array.
func NewPropertyArray(obj *serial.Object, name string, factory Factory) (*PropertyArray, error) {
	if obj == nil {
		return nil, fmt.Errorf("collection.NewPropertyArray: nil object for property %q", name)
	}
	prop, ok := obj.Property(name)
	if !ok {
		return nil, fmt.Errorf("collection.NewPropertyArray: object %q has no property %q", obj.Name, name)
	}
	if !prop.IsArray {
		return nil, fmt.Errorf("collection.NewPropertyArray: property %q of object %q is not an array", name, obj.Name)
	}
	pa := &PropertyArray{obj: obj, prop: prop, keyed: prop.ElemType == reflect.TypeFor[serial.Pair]()}
	pa.Factory = factory
	return pa, nil
}

// Property returns the array property.
func (pa *PropertyArray) Property() *serial.Property { return pa.prop }

// IsKeyed returns whether the array holds keyed [serial.Pair] elements.
func (pa *PropertyArray) IsKeyed() bool { return pa.keyed }

func (pa *PropertyArray) OnResize(f func()) func() { return pa.prop.OnResize(f) }

func (pa *PropertyArray) Count() int { return pa.prop.Len() }

// ElemType returns the element type, which is any for keyed arrays.
func (pa *PropertyArray) ElemType() reflect.Type {
	if pa.keyed {
		return reflect.TypeFor[any]()
	}
	return pa.prop.ElemType
}

func (pa *PropertyArray) elem(i int) any {
	e, err := pa.prop.Elem(i)
	if err != nil {
		return nil
	}
	return e
}

func (pa *PropertyArray) Value(i int) any {
	e := pa.elem(i)
	if p, ok := e.(serial.Pair); ok && pa.keyed {
		return p.Value
	}
	return e
}

func (pa *PropertyArray) Key(i int) string {
	if p, ok := pa.elem(i).(serial.Pair); ok {
		return p.Key
	}
	return ""
}

func (pa *PropertyArray) hasKey(key string) bool {
	for i := range pa.Count() {
		if pa.Key(i) == key {
			return true
		}
	}
	return false
}

func (pa *PropertyArray) kind(i int) reflect.Type {
	v := pa.Value(i)
	if v == nil {
		return nil
	}
	return reflect.TypeOf(v)
}

func (pa *PropertyArray) CreateVisual(i int) *visual.Node { return pa.newVisual(i, pa.kind(i)) }

func (pa *PropertyArray) NeedsUpdate(n *visual.Node, i int) bool {
	return pa.needsUpdate(n, i, pa.kind(i))
}

func (pa *PropertyArray) CanAdd() bool { return pa.canAdd() }

func (pa *PropertyArray) CanAddKey(key string) bool {
	return pa.keyed && key != "" && !pa.hasKey(key) && pa.canAddKey(key)
}

func (pa *PropertyArray) CanRemove(i int) bool { return pa.canRemove(i, pa.Count()) }

func (pa *PropertyArray) CanReorder(from, to int) bool {
	return pa.canReorder(from, to, pa.Count())
}

// defaultValue returns a fresh default value for a new slot.
func (pa *PropertyArray) defaultValue() (any, bool) {
	if pa.Default != nil {
		dt := reflect.TypeOf(pa.Default)
		dst := reflect.New(reflectx.NonPointerType(dt))
		err := copier.CopyWithOption(dst.Interface(), pa.Default, copier.Option{DeepCopy: true})
		if err != nil {
			return nil, false
		}
		if dt.Kind() == reflect.Pointer {
			return dst.Interface(), true
		}
		return dst.Elem().Interface(), true
	}
	if pa.keyed {
		return nil, true
	}
	nv, ok := newElem(pa.prop.ElemType)
	if !ok {
		return nil, true
	}
	return nv.Interface(), true
}

// append grows the array by one and sets the new slot, then commits.
// A value of the wrong type is rejected before the array is touched.
// The resize copies the previous last element into the new slot,
// so it is always overwritten.
func (pa *PropertyArray) append(v any) bool {
	if v != nil && !reflect.TypeOf(v).AssignableTo(pa.prop.ElemType) {
		return false
	}
	n := pa.prop.Len()
	pa.prop.SetLen(n + 1)
	if err := pa.prop.SetElem(n, v); err != nil {
		pa.prop.SetLen(n)
		return false
	}
	pa.obj.ApplyModified()
	return true
}

// AddItem appends a slot reset to the default value. For keyed arrays
// the item gets a generated unique key.
func (pa *PropertyArray) AddItem() bool {
	if !pa.CanAdd() {
		return false
	}
	v, ok := pa.defaultValue()
	if !ok {
		return false
	}
	if pa.keyed {
		return pa.AddKeyValue(UniqueKey(DefaultKey, pa.hasKey), v)
	}
	return pa.append(v)
}

func (pa *PropertyArray) AddValue(value any) bool {
	if !pa.CanAdd() {
		return false
	}
	if pa.keyed {
		return pa.AddKeyValue(UniqueKey(DefaultKey, pa.hasKey), value)
	}
	if _, ok := valueFor(value, pa.prop.ElemType); !ok {
		return false
	}
	return pa.append(value)
}

// AddKey adds a slot reset to the default value with the given key.
func (pa *PropertyArray) AddKey(key string) bool {
	if !pa.CanAddKey(key) {
		return false
	}
	v, ok := pa.defaultValue()
	if !ok {
		return false
	}
	return pa.AddKeyValue(key, v)
}

func (pa *PropertyArray) AddKeyValue(key string, value any) bool {
	if !pa.CanAddKey(key) {
		return false
	}
	return pa.append(serial.Pair{Key: key, Value: value})
}

func (pa *PropertyArray) RemoveItem(i int) bool {
	if !pa.CanRemove(i) {
		return false
	}
	if pa.prop.DeleteElem(i) != nil {
		return false
	}
	pa.obj.ApplyModified()
	return true
}

func (pa *PropertyArray) ReorderItem(from, to int) bool {
	if !pa.CanReorder(from, to) || !slicesx.InRange(to, pa.Count()) {
		return false
	}
	if pa.prop.MoveElem(from, to) != nil {
		return false
	}
	pa.obj.ApplyModified()
	return true
}
