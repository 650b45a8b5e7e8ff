// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aamap

import "github.com/jba/aamap/aatree"

// An Iterator is a position in a map: either an entry or the end marker.
//
// Iterators are bidirectional and cyclic. Next moves to the following entry,
// from the last entry to the end marker, and from the end marker to the
// first entry. Prev is the mirror image. That is why Begin is simply End
// followed by Next, and why a reverse walk can start at End.
//
// Insertions never invalidate an Iterator. A deletion moves keys between
// nodes, so afterwards only iterators at keys less than the deleted key
// are guaranteed to still refer to their entry. Using an invalidated
// Iterator is undefined. So is calling Key, Value or ValuePtr at the end
// marker, which panics.
//
// Two Iterators are the same position if [Iterator.Equal] reports true;
// do not compare Iterators with ==.
type Iterator[K, V any] struct {
	t    *aatree.Tree[K, V]
	root *aatree.Node[K, V] // last root seen; refreshed before each step
	x    *aatree.Node[K, V] // nil at the end marker
}

func newIterator[K, V any](t *aatree.Tree[K, V], x *aatree.Node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{t: t, root: t.Root(), x: x}
}

// AtEnd reports whether it is at the end marker.
func (it Iterator[K, V]) AtEnd() bool { return it.x == nil }

// Key returns the key of the entry at it.
func (it Iterator[K, V]) Key() K { return it.x.Key() }

// Value returns the value of the entry at it.
func (it Iterator[K, V]) Value() V { return it.x.Value() }

// ValuePtr returns a pointer to the value of the entry at it.
func (it Iterator[K, V]) ValuePtr() *V { return it.x.ValuePtr() }

// Equal reports whether it and other are at the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool { return it.x == other.x }

// Next advances it to the next entry in key order.
// From the last entry it moves to the end marker, and from the end marker
// to the first entry.
func (it *Iterator[K, V]) Next() {
	it.root = it.t.RootOf(it.root)
	switch {
	case it.root == nil:
		it.x = nil
	case it.x == nil:
		it.x = it.t.Leftmost(it.root)
	default:
		it.x = it.t.Next(it.x)
	}
}

// Prev moves it to the previous entry in key order.
// From the first entry it moves to the end marker, and from the end marker
// to the last entry.
func (it *Iterator[K, V]) Prev() {
	it.root = it.t.RootOf(it.root)
	switch {
	case it.root == nil:
		it.x = nil
	case it.x == nil:
		it.x = it.t.Rightmost(it.root)
	default:
		it.x = it.t.Prev(it.x)
	}
}
