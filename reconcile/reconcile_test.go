// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reconcile

import (
	"fmt"
	"testing"

	"cogentcore.org/inspector/collection"
	"cogentcore.org/inspector/visual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(c *visual.Container) []string {
	var s []string
	for _, n := range c.Children {
		s = append(s, n.Content.(string))
	}
	return s
}

func newTyped(sl *[]string) *collection.Typed[string] {
	return collection.NewTyped(sl, func(n *visual.Node, i int) {
		n.Updater(func(n *visual.Node) {
			n.Content = (*sl)[n.Index]
		})
	})
}

func assertTags(t *testing.T, c *visual.Container) {
	t.Helper()
	for i, n := range c.Children {
		assert.Equal(t, i, n.Index)
		if i%2 == 0 {
			assert.True(t, n.HasClass(visual.EvenClass), "child %d", i)
			assert.False(t, n.HasClass(visual.OddClass), "child %d", i)
		} else {
			assert.True(t, n.HasClass(visual.OddClass), "child %d", i)
			assert.False(t, n.HasClass(visual.EvenClass), "child %d", i)
		}
	}
}

func TestReconcile(t *testing.T) {
	sl := []string{"a", "b", "c"}
	r := New(&visual.Container{})
	r.Proxy = newTyped(&sl)

	assert.True(t, r.Reconcile())
	assert.Equal(t, []string{"a", "b", "c"}, labels(r.Container))
	assertTags(t, r.Container)
	assert.Equal(t, 3, r.Created)

	assert.False(t, r.Reconcile())
	assert.Equal(t, 3, r.Created)

	sl = sl[:1]
	assert.True(t, r.Reconcile())
	assert.Equal(t, []string{"a"}, labels(r.Container))

	sl = append(sl, "x", "y", "z")
	assert.True(t, r.Reconcile())
	assert.Equal(t, []string{"a", "x", "y", "z"}, labels(r.Container))
	assertTags(t, r.Container)
	assert.Equal(t, 6, r.Created)
}

func TestReconcileCountInvariant(t *testing.T) {
	var sl []int
	r := New(&visual.Container{})
	r.Proxy = collection.NewTyped(&sl, nil)
	for _, n := range []int{0, 5, 2, 8, 0, 1} {
		sl = make([]int, n)
		r.Reconcile()
		assert.Equal(t, n, r.Container.Len())
		assert.Equal(t, n == 0, r.Container.Empty)
		assertTags(t, r.Container)
	}
}

func TestReconcileRefreshesContent(t *testing.T) {
	sl := []string{"a", "b", "c"}
	r := New(&visual.Container{})
	r.Proxy = newTyped(&sl)
	r.Reconcile()
	first := r.Container.Children[0]

	require.True(t, r.Proxy.ReorderItem(0, 2))
	r.Reconcile()
	assert.Equal(t, []string{"b", "c", "a"}, labels(r.Container))
	assert.Same(t, first, r.Container.Children[0])
	assert.Equal(t, 3, r.Created)

	require.True(t, r.Proxy.RemoveItem(0))
	r.Reconcile()
	assert.Equal(t, []string{"c", "a"}, labels(r.Container))
	assert.True(t, r.Container.Children[0].HasClass(visual.EvenClass))
}

type shape interface{ Area() float32 }

type square struct{ Side float32 }

func (s *square) Area() float32 { return s.Side * s.Side }

type circle struct{ Radius float32 }

func (c *circle) Area() float32 { return 3 * c.Radius * c.Radius }

func TestReconcilePolymorphicSlot(t *testing.T) {
	sl := []shape{&square{2}, &circle{1}}
	r := New(&visual.Container{})
	r.Proxy = collection.NewTyped(&sl, nil)
	r.Reconcile()
	first := r.Container.Children[0]
	second := r.Container.Children[1]

	sl[0] = &circle{3}
	assert.True(t, r.Reconcile())
	assert.NotSame(t, first, r.Container.Children[0])
	assert.True(t, first.Destroyed)
	assert.Same(t, second, r.Container.Children[1])
	assert.Equal(t, 3, r.Created)
}

func TestReconcileAffordances(t *testing.T) {
	sl := []string{"a"}
	r := New(&visual.Container{})
	p := newTyped(&sl)
	r.Proxy = p
	r.Reconcile()
	assert.True(t, r.Container.AddEnabled)
	assert.True(t, r.Container.Children[0].RemoveEnabled)
	assert.False(t, r.Container.Children[0].ReorderEnabled)

	sl = append(sl, "b")
	r.Reconcile()
	for _, n := range r.Container.Children {
		assert.True(t, n.ReorderEnabled)
	}

	p.Permissions.CanAdd = func() bool { return false }
	p.Permissions.CanRemove = func(i int) bool { return i != 1 }
	r.Reconcile()
	assert.False(t, r.Container.AddEnabled)
	assert.True(t, r.Container.Children[0].RemoveEnabled)
	assert.False(t, r.Container.Children[1].RemoveEnabled)

	p.Permissions = collection.Permissions{}
	r.AllowAdd = false
	r.AllowRemove = false
	r.AllowReorder = false
	r.Reconcile()
	assert.False(t, r.Container.AddEnabled)
	for _, n := range r.Container.Children {
		assert.False(t, n.RemoveEnabled)
		assert.False(t, n.ReorderEnabled)
	}
}

func TestReconcileReentrant(t *testing.T) {
	sl := []string{"a", "b"}
	r := New(&visual.Container{})
	grown := false
	r.Proxy = collection.NewTyped(&sl, func(n *visual.Node, i int) {
		n.Content = fmt.Sprint(i)
		if !grown {
			grown = true
			sl = append(sl, "c")
			assert.False(t, r.Reconcile())
		}
	})
	assert.True(t, r.Reconcile())
	assert.Equal(t, 3, r.Container.Len())
	assertTags(t, r.Container)
}

func TestReconcileNilProxy(t *testing.T) {
	r := New(&visual.Container{})
	assert.False(t, r.Reconcile())
	assert.True(t, r.Container.Empty)
	assert.False(t, r.Container.AddEnabled)
}

func TestClear(t *testing.T) {
	sl := []string{"a", "b"}
	r := New(&visual.Container{})
	r.Proxy = newTyped(&sl)
	r.Reconcile()
	nodes := r.Container.Children
	r.Clear()
	assert.Equal(t, 0, r.Container.Len())
	for _, n := range nodes {
		assert.True(t, n.Destroyed)
	}
}
