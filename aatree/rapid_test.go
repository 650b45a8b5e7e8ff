// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aatree

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTreeSims(t *testing.T) {
	rapid.Check(t, testTreeSims)
}

func FuzzTree(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testTreeSims))
}

func testTreeSims(t *rapid.T) {
	m := &simMachine{
		tree: New[int, int](cmp.Compare[int]),
		ref:  map[int]int{},
	}
	t.Repeat(map[string]func(*rapid.T){
		"":       m.check,
		"insert": m.insert,
		"delete": m.delete,
		"find":   m.find,
		"bounds": m.bounds,
		"clear":  m.clear,
	})
}

// simMachine mirrors a Tree with a Go map.
type simMachine struct {
	tree *Tree[int, int]
	ref  map[int]int
}

func (s *simMachine) check(t *rapid.T) {
	require.NoError(t, s.tree.Check())
	require.Equal(t, len(s.ref), s.tree.Len())

	want := s.sortedKeys()
	got := keys(s.tree)
	require.Equal(t, len(want), len(got))
	if len(want) > 0 {
		require.Equal(t, want, got)
	}
}

func (s *simMachine) sortedKeys() []int {
	ks := make([]int, 0, len(s.ref))
	for k := range s.ref {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}

func (s *simMachine) key(t *rapid.T) int {
	if len(s.ref) > 0 && rapid.Bool().Draw(t, "existing") {
		return rapid.SampledFrom(s.sortedKeys()).Draw(t, "key")
	}
	return rapid.IntRange(-100, 100).Draw(t, "key")
}

func (s *simMachine) insert(t *rapid.T) {
	k := s.key(t)
	v := rapid.Int().Draw(t, "value")
	_, existed := s.ref[k]
	n, added := s.tree.Insert(k, v)
	require.Equal(t, !existed, added)
	require.Equal(t, k, n.Key())
	require.Equal(t, v, n.Value())
	s.ref[k] = v
}

func (s *simMachine) delete(t *rapid.T) {
	k := s.key(t)
	_, existed := s.ref[k]
	require.Equal(t, existed, s.tree.Delete(k))
	delete(s.ref, k)
	require.Nil(t, s.tree.Find(k))
}

func (s *simMachine) find(t *rapid.T) {
	k := s.key(t)
	v, ok := s.ref[k]
	n := s.tree.Find(k)
	if !ok {
		require.Nil(t, n)
		return
	}
	require.NotNil(t, n)
	require.Equal(t, v, n.Value())
}

func (s *simMachine) bounds(t *rapid.T) {
	k := s.key(t)
	var ge, gt *int
	for _, x := range s.sortedKeys() {
		if ge == nil && x >= k {
			ge = &x
		}
		if gt == nil && x > k {
			gt = &x
		}
	}
	check := func(n *Node[int, int], want *int) {
		if want == nil {
			require.Nil(t, n)
		} else {
			require.NotNil(t, n)
			require.Equal(t, *want, n.Key())
		}
	}
	check(s.tree.LowerBound(k), ge)
	check(s.tree.UpperBound(k), gt)
}

func (s *simMachine) clear(t *rapid.T) {
	// Keep clears rare so trees grow.
	if rapid.IntRange(0, 9).Draw(t, "clear") != 0 {
		return
	}
	s.tree.Clear()
	s.ref = map[int]int{}
}
