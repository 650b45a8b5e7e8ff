// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aamap

import (
	"iter"

	"github.com/jba/aamap/aatree"
	"github.com/jba/aamap/rng"
)

// scan returns an iterator over the entries of m within r.
func scan[K, V any](m omap[K, V], r rng.Range[K]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t := m.tree()
		cmp := t.Compare()
		back := r.IsBackwards()
		in := r.BelowHigh
		x := first(t, r)
		if back {
			in = r.AboveLow
			x = last(t, r)
		}
		for x != nil && in(cmp, x.Key()) {
			k := x.Key()
			if !yield(k, x.Value()) {
				return
			}
			x = advance(t, x, k, back)
		}
	}
}

// first returns the smallest node satisfying r's low bound.
func first[K, V any](t *aatree.Tree[K, V], r rng.Range[K]) *aatree.Node[K, V] {
	lo, inf, incl := r.Low()
	switch {
	case inf:
		return t.First()
	case incl:
		return t.LowerBound(lo)
	default:
		return t.UpperBound(lo)
	}
}

// last returns the largest node satisfying r's high bound.
func last[K, V any](t *aatree.Tree[K, V], r rng.Range[K]) *aatree.Node[K, V] {
	hi, inf, incl := r.High()
	if inf {
		return t.Last()
	}
	// Step back from the first node past the bound. From the end marker
	// that lands on the largest node.
	var it Iterator[K, V]
	if incl {
		it = newIterator(t, t.UpperBound(hi))
	} else {
		it = newIterator(t, t.LowerBound(hi))
	}
	it.Prev()
	return it.x
}

// advance returns the neighbour of x, which held key k when it was
// yielded. If the map was modified in the meantime, x may have been freed
// or given another key by a deletion; then the neighbour is found by
// searching for k instead.
func advance[K, V any](t *aatree.Tree[K, V], x *aatree.Node[K, V], k K, back bool) *aatree.Node[K, V] {
	if x.Level() == 0 || t.Compare()(x.Key(), k) != 0 {
		if !back {
			return t.UpperBound(k)
		}
		ge := t.LowerBound(k)
		if ge == nil {
			return t.Last()
		}
		return t.Prev(ge)
	}
	if back {
		return t.Prev(x)
	}
	return t.Next(x)
}
