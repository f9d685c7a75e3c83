// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceInsertAt(t *testing.T) {
	s := []string{"a", "b"}
	require.NoError(t, SliceInsertAt(&s, -1, reflect.ValueOf("c")))
	assert.Equal(t, []string{"a", "b", "c"}, s)
	require.NoError(t, SliceInsertAt(&s, 0, reflect.Value{}))
	assert.Equal(t, []string{"", "a", "b", "c"}, s)
	assert.Error(t, SliceInsertAt(&s, 0, reflect.ValueOf(3)))
	assert.Error(t, SliceInsertAt(s, 0, reflect.ValueOf("x")))
}

func TestSliceDeleteAt(t *testing.T) {
	s := []int{1, 2, 3}
	require.NoError(t, SliceDeleteAt(&s, 1))
	assert.Equal(t, []int{1, 3}, s)
	assert.Equal(t, 0, s[:3][2])
	assert.Error(t, SliceDeleteAt(&s, 2))
}

func TestSliceMove(t *testing.T) {
	s := []string{"A", "B", "C", "D"}
	require.NoError(t, SliceMove(&s, 0, 2))
	assert.Equal(t, []string{"B", "C", "A", "D"}, s)

	s = []string{"A", "B", "C", "D"}
	require.NoError(t, SliceMove(&s, 3, 0))
	assert.Equal(t, []string{"D", "A", "B", "C"}, s)

	assert.Error(t, SliceMove(&s, 0, 4))
}

func TestSliceElementType(t *testing.T) {
	var s []any
	et, err := SliceElementType(&s)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[any](), et)
	assert.Equal(t, 0, SliceLen(&s))
	assert.Equal(t, 0, SliceLen(3))
}
