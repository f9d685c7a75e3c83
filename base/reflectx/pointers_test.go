// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[*int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[**int]()))
	assert.Equal(t, reflect.TypeFor[any](), NonPointerType(reflect.TypeFor[*any]()))
	assert.Equal(t, nil, NonPointerType(reflect.TypeOf(nil)))
}

func TestNonPointerValue(t *testing.T) {
	v := 1
	rv := reflect.ValueOf(v)
	assert.True(t, NonPointerValue(reflect.ValueOf(&v)).Equal(rv))
	p := &v
	assert.True(t, NonPointerValue(reflect.ValueOf(&p)).Equal(rv))

	n := (*int)(nil)
	assert.False(t, NonPointerValue(reflect.ValueOf(n)).IsValid())
}

func TestOnePointerValue(t *testing.T) {
	v := 1
	assert.Equal(t, reflect.TypeFor[*int](), OnePointerValue(reflect.ValueOf(v)).Type())
	p := &v
	assert.Equal(t, reflect.TypeFor[*int](), OnePointerValue(reflect.ValueOf(&p)).Type())
}

func TestAnyIsNil(t *testing.T) {
	assert.True(t, AnyIsNil(nil))
	assert.True(t, AnyIsNil((*int)(nil)))
	assert.True(t, AnyIsNil([]int(nil)))
	assert.False(t, AnyIsNil(0))
	assert.False(t, AnyIsNil(&struct{}{}))
}

type shape interface{ Area() float32 }

type square struct{ Side float32 }

func (s *square) Area() float32 { return s.Side * s.Side }

func TestDynamicType(t *testing.T) {
	s := []shape{&square{Side: 2}, nil}
	rv := reflect.ValueOf(s)
	assert.Equal(t, reflect.TypeFor[*square](), DynamicType(rv.Index(0)))
	assert.Nil(t, DynamicType(rv.Index(1)))
	assert.Equal(t, reflect.TypeFor[int](), DynamicType(reflect.ValueOf(3)))
}
