// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typesel

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape interface{ Area() float32 }

type square struct {
	Side float32
	Tags []string
}

func (s *square) Area() float32 { return s.Side * s.Side }

type circle struct{ Radius float32 }

func (c *circle) Area() float32 { return 3 * c.Radius * c.Radius }

type polygon struct{ Sides int }

func (p *polygon) Area() float32 { return 0 }

type label struct{ Text string }

var shapeType = reflect.TypeFor[shape]()

func newRegistry(t *testing.T) *Registry {
	r := &Registry{}
	_, err := r.Register(&square{Side: 2, Tags: []string{"a"}}, Options{Path: "Shapes/square", Icon: "square"})
	require.NoError(t, err)
	_, err = r.Register(&circle{Radius: 1}, Options{Path: "Shapes/Circle"})
	require.NoError(t, err)
	_, err = r.Register(&polygon{}, Options{Path: "Shapes/Polygon", Abstract: true})
	require.NoError(t, err)
	_, err = r.Register(label{Text: "hi"}, Options{})
	require.NoError(t, err)
	return r
}

func paths(cs []*Candidate) []string {
	var s []string
	for _, c := range cs {
		s = append(s, c.Path)
	}
	return s
}

func TestRegister(t *testing.T) {
	r := newRegistry(t)
	assert.Equal(t, 4, r.Len())
	_, err := r.Register(&circle{}, Options{})
	assert.Error(t, err)
	_, err = r.Register(nil, Options{})
	assert.Error(t, err)
	var sq *square
	_, err = r.Register(sq, Options{})
	assert.Error(t, err)

	lb := r.Assignable(reflect.TypeFor[label](), false)
	require.Len(t, lb, 1)
	assert.Equal(t, "label", lb[0].Path)
	assert.Len(t, r.Assignable(nil, true), 4)
}

func TestClone(t *testing.T) {
	r := newRegistry(t)
	cs := r.Assignable(shapeType, false)
	require.Equal(t, "Shapes/square", cs[0].Path)
	a := cs[0].New().(*square)
	b := cs[0].New().(*square)
	assert.Equal(t, float32(2), a.Side)
	assert.Equal(t, []string{"a"}, a.Tags)
	assert.NotSame(t, a, b)
	a.Tags[0] = "changed"
	assert.Equal(t, "a", b.Tags[0])

	lb := r.Assignable(reflect.TypeFor[label](), false)[0].New()
	assert.Equal(t, label{Text: "hi"}, lb)
}

func TestCandidates(t *testing.T) {
	r := newRegistry(t)
	c := NewCache(r)
	cs := c.Candidates(shapeType, false)
	assert.Equal(t, []string{"Shapes/Circle", "Shapes/square"}, paths(cs))
	assert.Equal(t, []string{"Shapes/Circle", "Shapes/Polygon", "Shapes/square"}, paths(c.Candidates(shapeType, true)))
	assert.Equal(t, 2, c.Len())

	_, err := r.Register(&struct{ shape }{}, Options{Path: "Shapes/Anon"})
	require.NoError(t, err)
	assert.Len(t, c.Candidates(shapeType, false), 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []string{"Shapes/Anon", "Shapes/Circle", "Shapes/square"}, paths(c.Candidates(shapeType, false)))
}

func TestInstantiate(t *testing.T) {
	v, err := Instantiate(&Candidate{Path: "bad", New: func() any { panic("boom") }}, shapeType)
	assert.Nil(t, v)
	assert.ErrorContains(t, err, "panicked")

	_, err = Instantiate(&Candidate{Path: "label", New: func() any { return label{} }}, shapeType)
	assert.ErrorContains(t, err, "not assignable")

	_, err = Instantiate(&Candidate{Path: "nil", New: func() any { return nil }}, shapeType)
	assert.Error(t, err)

	v, err = Instantiate(&Candidate{Path: "circle", New: func() any { return &circle{} }}, shapeType)
	assert.NoError(t, err)
	assert.IsType(t, &circle{}, v)
}

type target struct {
	items  []shape
	keys   []string
	canAdd bool
	key    string
}

func (t *target) ElemType() reflect.Type { return shapeType }
func (t *target) CanAdd() bool           { return t.canAdd }

func (t *target) AddValue(v any) bool {
	t.items = append(t.items, v.(shape))
	t.keys = append(t.keys, "")
	return true
}

type keyedTarget struct{ target }

func (t *keyedTarget) PendingKey() string { return t.key }

func (t *keyedTarget) AddKeyValue(k string, v any) bool {
	t.items = append(t.items, v.(shape))
	t.keys = append(t.keys, k)
	return true
}

func TestSelectorAdd(t *testing.T) {
	var shown []*Candidate
	var choose func(c *Candidate)
	s := NewSelector(NewCache(newRegistry(t)), func(cs []*Candidate, ch func(c *Candidate)) {
		shown = cs
		choose = ch
	})
	tg := &target{}
	assert.False(t, s.Add(tg))
	assert.Nil(t, shown)

	tg.canAdd = true
	require.True(t, s.Add(tg))
	assert.Equal(t, []string{"Shapes/Circle", "Shapes/square"}, paths(shown))
	choose(shown[0])
	require.Len(t, tg.items, 1)
	assert.IsType(t, &circle{}, tg.items[0])

	choose(nil)
	assert.Len(t, tg.items, 1)
	tg.canAdd = false
	choose(shown[1])
	assert.Len(t, tg.items, 1)

	kt := &keyedTarget{target{canAdd: true, key: "first"}}
	require.True(t, s.Add(kt))
	choose(shown[1])
	kt.key = ""
	choose(shown[1])
	assert.Equal(t, []string{"first", ""}, kt.keys)
	assert.IsType(t, &square{}, kt.items[1])
}

func TestSelectorAddNoTypes(t *testing.T) {
	called := false
	s := NewSelector(NewCache(&Registry{}), func([]*Candidate, func(*Candidate)) { called = true })
	assert.False(t, s.Add(&target{canAdd: true}))
	assert.False(t, called)
}

func TestSearch(t *testing.T) {
	s := NewSelector(NewCache(newRegistry(t)), nil)
	s.IncludeAbstract = true
	assert.Equal(t, []string{"Shapes/Circle", "Shapes/Polygon", "Shapes/square"}, paths(s.Search(shapeType, " ")))
	assert.Equal(t, []string{"Shapes/square"}, paths(s.Search(shapeType, "SQU")))
	res := s.Search(shapeType, "cirle")
	require.NotEmpty(t, res)
	assert.Equal(t, "Shapes/Circle", res[0].Path)
	assert.Empty(t, s.Search(shapeType, "xyzzy"))
}

func TestWatchAssets(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(newRegistry(t))
	w, err := WatchAssets(c, dir)
	require.NoError(t, err)

	c.Candidates(shapeType, false)
	require.Equal(t, 1, c.Len())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shape.asset"), []byte("x"), 0666))
	assert.Eventually(t, func() bool { return c.Len() == 0 }, 5*time.Second, 10*time.Millisecond)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, err = WatchAssets(c, filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
