// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	kl := New[string, int]()
	assert.NoError(t, kl.Add("key0", 0))
	assert.NoError(t, kl.Add("key1", 1))
	assert.NoError(t, kl.Add("key2", 2))

	assert.Equal(t, 3, kl.Len())
	assert.Equal(t, 1, kl.At("key1"))
	assert.Equal(t, 2, kl.IndexByKey("key2"))
	assert.Equal(t, -1, kl.IndexByKey("nope"))

	assert.Error(t, kl.Add("key1", 5))
	assert.Equal(t, 3, kl.Len())

	assert.NoError(t, kl.DeleteByIndex(1))
	assert.Equal(t, []string{"key0", "key2"}, kl.Keys)
	assert.Equal(t, 1, kl.IndexByKey("key2"))
	assert.False(t, kl.Has("key1"))
	assert.True(t, kl.DeleteByKey("key0"))
	assert.False(t, kl.DeleteByKey("key0"))
	assert.Error(t, kl.DeleteByIndex(4))
}

func TestMove(t *testing.T) {
	kl := &List[string, string]{}
	for _, k := range []string{"A", "B", "C", "D"} {
		assert.NoError(t, kl.Add(k, k+"v"))
	}
	assert.NoError(t, kl.Move(0, 2))
	assert.Equal(t, []string{"B", "C", "A", "D"}, kl.Keys)
	assert.Equal(t, []string{"Bv", "Cv", "Av", "Dv"}, kl.Values)
	assert.Equal(t, 2, kl.IndexByKey("A"))
	assert.Error(t, kl.Move(0, 4))
}

func TestZeroValue(t *testing.T) {
	var kl List[string, int]
	assert.Equal(t, 0, kl.Len())
	assert.False(t, kl.Has("x"))
	assert.NoError(t, kl.Add("x", 1))
	assert.True(t, kl.Has("x"))
}
