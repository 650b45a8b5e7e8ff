// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aamap implements in-memory ordered maps.
// [Map][K, V] is suitable for ordered types K,
// while [MapFunc][K, V] supports arbitrary keys and comparison functions.
//
// Besides Go-style accessors and range functions, maps offer positional
// operations through [Iterator]: Find, LowerBound, UpperBound, Begin and
// End return positions that can be moved in either direction.
//
// Maps are not safe for concurrent use.
package aamap

// The implementation is an AA tree. See package aatree and
// https://en.wikipedia.org/wiki/AA_tree.

import (
	"cmp"
	"iter"

	"github.com/jba/aamap/aatree"
	"github.com/jba/aamap/rng"
)

// A Map is a map[K]V ordered according to K's standard Go ordering.
// The zero value of a Map is an empty Map ready to use.
type Map[K cmp.Ordered, V any] struct {
	t *aatree.Tree[K, V]
}

// A MapFunc is a map[K]V ordered according to an arbitrary comparison function.
// The zero value of a MapFunc is not meaningful since it has no comparison function.
// Use [NewMapFunc] or [NewMapLess] to create a [MapFunc].
type MapFunc[K, V any] struct {
	t   *aatree.Tree[K, V]
	cmp func(K, K) int
}

// NewMapFunc returns a new MapFunc[K, V] ordered according to cmp.
// Two keys are the same key when cmp reports zero.
func NewMapFunc[K, V any](cmp func(K, K) int) *MapFunc[K, V] {
	return &MapFunc[K, V]{cmp: cmp}
}

// NewMapLess returns a new MapFunc[K, V] ordered according to less,
// which must be a strict weak order. Two keys are the same key when
// neither is less than the other.
func NewMapLess[K, V any](less func(a, b K) bool) *MapFunc[K, V] {
	return NewMapFunc[K, V](func(a, b K) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return +1
		}
		return 0
	})
}

// omap is the interface implemented by both Map[K, V] and MapFunc[K, V]
// that enables a common implementation of the map operations.
type omap[K, V any] interface {
	// tree returns the map's tree, creating it on first use.
	tree() *aatree.Tree[K, V]
}

func (m *Map[K, V]) tree() *aatree.Tree[K, V] {
	if m.t == nil {
		m.t = aatree.New[K, V](cmp.Compare[K])
	}
	return m.t
}

func (m *MapFunc[K, V]) tree() *aatree.Tree[K, V] {
	if m.t == nil {
		m.t = aatree.New[K, V](m.cmp)
	}
	return m.t
}

// KeyCompare returns the comparison function that orders m.
func (m *MapFunc[K, V]) KeyCompare() func(K, K) int { return m.cmp }

// Get returns the value of m[key] and reports whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return get(m, key)
}

// Get returns the value of m[key] and reports whether it exists.
func (m *MapFunc[K, V]) Get(key K) (V, bool) {
	return get(m, key)
}

func get[K, V any](m omap[K, V], key K) (V, bool) {
	if x := m.tree().Find(key); x != nil {
		return x.Value(), true
	}
	var zero V
	return zero, false
}

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *Map[K, V]) Set(key K, val V) (old V, added bool) {
	return set(m, key, val)
}

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *MapFunc[K, V]) Set(key K, val V) (old V, added bool) {
	return set(m, key, val)
}

func set[K, V any](m omap[K, V], key K, val V) (V, bool) {
	t := m.tree()
	if x := t.Find(key); x != nil {
		p := x.ValuePtr()
		old := *p
		*p = val
		return old, false
	}
	t.Insert(key, val)
	var zero V
	return zero, true
}

// Insert sets m[key] = val and returns an Iterator at key.
// The boolean reports whether key was newly added; if it was already
// present, its value is overwritten.
func (m *Map[K, V]) Insert(key K, val V) (Iterator[K, V], bool) {
	return insert(m, key, val)
}

// Insert sets m[key] = val and returns an Iterator at key.
// The boolean reports whether key was newly added; if it was already
// present, its value is overwritten.
func (m *MapFunc[K, V]) Insert(key K, val V) (Iterator[K, V], bool) {
	return insert(m, key, val)
}

func insert[K, V any](m omap[K, V], key K, val V) (Iterator[K, V], bool) {
	t := m.tree()
	x, added := t.Insert(key, val)
	return newIterator(t, x), added
}

// InsertAll inserts every pair of seq into m, in order.
func (m *Map[K, V]) InsertAll(seq iter.Seq2[K, V]) {
	insertAll(m, seq)
}

// InsertAll inserts every pair of seq into m, in order.
func (m *MapFunc[K, V]) InsertAll(seq iter.Seq2[K, V]) {
	insertAll(m, seq)
}

func insertAll[K, V any](m omap[K, V], seq iter.Seq2[K, V]) {
	t := m.tree()
	for k, v := range seq {
		t.Insert(k, v)
	}
}

// Index returns a pointer to the value of m[key].
// If key is absent, it is first inserted with the zero value.
func (m *Map[K, V]) Index(key K) *V {
	return index(m, key)
}

// Index returns a pointer to the value of m[key].
// If key is absent, it is first inserted with the zero value.
func (m *MapFunc[K, V]) Index(key K) *V {
	return index(m, key)
}

func index[K, V any](m omap[K, V], key K) *V {
	t := m.tree()
	x := t.Find(key)
	if x == nil {
		var zero V
		x, _ = t.Insert(key, zero)
	}
	return x.ValuePtr()
}

// Delete deletes m[key] if it exists, reporting whether it did.
func (m *Map[K, V]) Delete(key K) bool {
	return m.tree().Delete(key)
}

// Delete deletes m[key] if it exists, reporting whether it did.
func (m *MapFunc[K, V]) Delete(key K) bool {
	return m.tree().Delete(key)
}

// Erase deletes m[key] and returns the number of entries removed, 0 or 1.
func (m *Map[K, V]) Erase(key K) int {
	return erase(m, key)
}

// Erase deletes m[key] and returns the number of entries removed, 0 or 1.
func (m *MapFunc[K, V]) Erase(key K) int {
	return erase(m, key)
}

func erase[K, V any](m omap[K, V], key K) int {
	if m.tree().Delete(key) {
		return 1
	}
	return 0
}

// EraseAt deletes the entry at it, which must not be at the end marker.
// it and any iterator at a larger key are invalid afterwards.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) {
	m.tree().Delete(it.Key())
}

// EraseAt deletes the entry at it, which must not be at the end marker.
// it and any iterator at a larger key are invalid afterwards.
func (m *MapFunc[K, V]) EraseAt(it Iterator[K, V]) {
	m.tree().Delete(it.Key())
}

// EraseRange deletes the entries from first up to but not including last,
// and returns the number deleted.
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) int {
	return eraseRange(m, first, last)
}

// EraseRange deletes the entries from first up to but not including last,
// and returns the number deleted.
func (m *MapFunc[K, V]) EraseRange(first, last Iterator[K, V]) int {
	return eraseRange(m, first, last)
}

func eraseRange[K, V any](m omap[K, V], first, last Iterator[K, V]) int {
	// Deleting moves keys between nodes, so collect the keys first.
	var keys []K
	for it := first; !it.Equal(last) && !it.AtEnd(); it.Next() {
		keys = append(keys, it.Key())
	}
	t := m.tree()
	n := 0
	for _, k := range keys {
		if t.Delete(k) {
			n++
		}
	}
	return n
}

// Find returns an Iterator at key, or at the end marker if key is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	t := m.tree()
	return newIterator(t, t.Find(key))
}

// Find returns an Iterator at key, or at the end marker if key is absent.
func (m *MapFunc[K, V]) Find(key K) Iterator[K, V] {
	t := m.tree()
	return newIterator(t, t.Find(key))
}

// Count returns the number of entries with the given key, 0 or 1.
func (m *Map[K, V]) Count(key K) int {
	return count(m, key)
}

// Count returns the number of entries with the given key, 0 or 1.
func (m *MapFunc[K, V]) Count(key K) int {
	return count(m, key)
}

func count[K, V any](m omap[K, V], key K) int {
	if m.tree().Find(key) != nil {
		return 1
	}
	return 0
}

// LowerBound returns an Iterator at the first key not less than key,
// or at the end marker if there is none.
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	t := m.tree()
	return newIterator(t, t.LowerBound(key))
}

// LowerBound returns an Iterator at the first key not less than key,
// or at the end marker if there is none.
func (m *MapFunc[K, V]) LowerBound(key K) Iterator[K, V] {
	t := m.tree()
	return newIterator(t, t.LowerBound(key))
}

// UpperBound returns an Iterator at the first key greater than key,
// or at the end marker if there is none.
func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] {
	t := m.tree()
	return newIterator(t, t.UpperBound(key))
}

// UpperBound returns an Iterator at the first key greater than key,
// or at the end marker if there is none.
func (m *MapFunc[K, V]) UpperBound(key K) Iterator[K, V] {
	t := m.tree()
	return newIterator(t, t.UpperBound(key))
}

// EqualRange returns LowerBound(key) and UpperBound(key).
// They are equal when key is absent.
func (m *Map[K, V]) EqualRange(key K) (lo, hi Iterator[K, V]) {
	return m.LowerBound(key), m.UpperBound(key)
}

// EqualRange returns LowerBound(key) and UpperBound(key).
// They are equal when key is absent.
func (m *MapFunc[K, V]) EqualRange(key K) (lo, hi Iterator[K, V]) {
	return m.LowerBound(key), m.UpperBound(key)
}

// Begin returns an Iterator at the smallest key,
// or at the end marker if m is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return begin(m)
}

// Begin returns an Iterator at the smallest key,
// or at the end marker if m is empty.
func (m *MapFunc[K, V]) Begin() Iterator[K, V] {
	return begin(m)
}

func begin[K, V any](m omap[K, V]) Iterator[K, V] {
	it := newIterator(m.tree(), nil)
	it.Next()
	return it
}

// End returns an Iterator at the end marker.
// Calling Prev on it moves to the largest key.
func (m *Map[K, V]) End() Iterator[K, V] {
	return newIterator(m.tree(), nil)
}

// End returns an Iterator at the end marker.
// Calling Prev on it moves to the largest key.
func (m *MapFunc[K, V]) End() Iterator[K, V] {
	return newIterator(m.tree(), nil)
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int { return m.tree().Len() }

// Len returns the number of entries in m.
func (m *MapFunc[K, V]) Len() int { return m.tree().Len() }

// Empty reports whether m has no entries.
func (m *Map[K, V]) Empty() bool { return m.Len() == 0 }

// Empty reports whether m has no entries.
func (m *MapFunc[K, V]) Empty() bool { return m.Len() == 0 }

// Clear deletes m[k] for all keys in m.
func (m *Map[K, V]) Clear() {
	m.tree().Clear()
}

// Clear deletes m[k] for all keys in m.
func (m *MapFunc[K, V]) Clear() {
	m.tree().Clear()
}

// Swap exchanges the contents of m and other.
// Iterators keep referring to the same entries, which now belong to the
// other map.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.t, other.t = other.tree(), m.tree()
}

// Swap exchanges the contents, including the comparison functions,
// of m and other.
// Iterators keep referring to the same entries, which now belong to the
// other map.
func (m *MapFunc[K, V]) Swap(other *MapFunc[K, V]) {
	m.t, other.t = other.tree(), m.tree()
	m.cmp, other.cmp = other.cmp, m.cmp
}

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V]) Min() (K, bool) {
	return nodeKey(m.tree().First())
}

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V]) Min() (K, bool) {
	return nodeKey(m.tree().First())
}

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V]) Max() (K, bool) {
	return nodeKey(m.tree().Last())
}

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V]) Max() (K, bool) {
	return nodeKey(m.tree().Last())
}

func nodeKey[K, V any](x *aatree.Node[K, V]) (K, bool) {
	if x == nil {
		var z K
		return z, false
	}
	return x.Key(), true
}

// Clone returns a copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: m.tree().Clone()}
}

// Clone returns a copy of m.
func (m *MapFunc[K, V]) Clone() *MapFunc[K, V] {
	return &MapFunc[K, V]{t: m.tree().Clone(), cmp: m.cmp}
}

// All returns an iterator over the map m from smallest to largest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return scan(m, rng.All[K]())
}

// All returns an iterator over the map m from smallest to largest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *MapFunc[K, V]) All() iter.Seq2[K, V] {
	return scan(m, rng.All[K]())
}

// Backward returns an iterator over the map m from largest to smallest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return scan(m, rng.All[K]().Backwards())
}

// Backward returns an iterator over the map m from largest to smallest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *MapFunc[K, V]) Backward() iter.Seq2[K, V] {
	return scan(m, rng.All[K]().Backwards())
}

// Scan returns an iterator over the entries of m whose keys lie in r,
// from smallest to largest key, or from largest to smallest if
// r.IsBackwards().
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) Scan(r rng.Range[K]) iter.Seq2[K, V] {
	return scan(m, r)
}

// Scan returns an iterator over the entries of m whose keys lie in r,
// from smallest to largest key, or from largest to smallest if
// r.IsBackwards().
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *MapFunc[K, V]) Scan(r rng.Range[K]) iter.Seq2[K, V] {
	return scan(m, r)
}
