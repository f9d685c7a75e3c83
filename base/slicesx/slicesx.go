// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import "slices"

// Move moves the element in the given slice at the given
// old position to the given new position and returns the
// resulting slice. The element is removed first, so to is
// interpreted against the slice without it:
// [A B C D] moved (0, 2) is [B C A D].
func Move[E any](s []E, from, to int) []E {
	temp := s[from]
	s = slices.Delete(s, from, from+1)
	s = slices.Insert(s, to, temp)
	return s
}

// InRange returns whether i is a valid index into a
// sequence of length n.
func InRange(i, n int) bool {
	return i >= 0 && i < n
}

// MovedIndex returns the index that the element at index i has
// after a [Move] from from to to in a slice of any length.
func MovedIndex(i, from, to int) int {
	switch {
	case i == from:
		return to
	case from < to && i > from && i <= to:
		return i - 1
	case to < from && i >= to && i < from:
		return i + 1
	}
	return i
}
