// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	s := []string{"A", "B", "C", "D"}
	assert.Equal(t, []string{"B", "C", "A", "D"}, Move(slices.Clone(s), 0, 2))
	assert.Equal(t, []string{"D", "A", "B", "C"}, Move(slices.Clone(s), 3, 0))
	assert.Equal(t, []string{"B", "C", "D", "A"}, Move(slices.Clone(s), 0, 3))
	assert.Equal(t, s, Move(slices.Clone(s), 2, 2))
}

func TestMovedIndex(t *testing.T) {
	s := []int{0, 1, 2, 3, 4}
	for from := range s {
		for to := range s {
			m := Move(slices.Clone(s), from, to)
			for i := range s {
				assert.Equal(t, i, m[MovedIndex(i, from, to)], "from %d to %d index %d", from, to, i)
			}
		}
	}
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(0, 1))
	assert.False(t, InRange(1, 1))
	assert.False(t, InRange(-1, 3))
}
