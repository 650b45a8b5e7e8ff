// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aamap

import "iter"

// EqualFunc reports whether m1 and m2 have the same keys, under m1's
// ordering, with values that are equal according to eq.
// m1 and m2 may be any combination of *Map and *MapFunc.
func EqualFunc[K, V1, V2 any](m1 omap[K, V1], m2 omap[K, V2], eq func(V1, V2) bool) bool {
	t1, t2 := m1.tree(), m2.tree()
	if t1.Len() != t2.Len() {
		return false
	}
	cmp := t1.Compare()
	x2 := t2.First()
	for x1 := t1.First(); x1 != nil; x1 = t1.Next(x1) {
		if cmp(x1.Key(), x2.Key()) != 0 || !eq(x1.Value(), x2.Value()) {
			return false
		}
		x2 = t2.Next(x2)
	}
	return true
}

// CompareFunc compares the entries of m1 and m2 lexicographically, in key
// order. Keys are compared with m1's ordering and values with cmpV.
// The result is negative if m1 sorts before m2, positive if after, and zero
// if the maps are equal. A map that is a prefix of the other sorts first.
func CompareFunc[K, V1, V2 any](m1 omap[K, V1], m2 omap[K, V2], cmpV func(V1, V2) int) int {
	cmpK := m1.tree().Compare()
	next1, stop1 := iter.Pull2(all(m1))
	defer stop1()
	next2, stop2 := iter.Pull2(all(m2))
	defer stop2()
	for {
		k1, v1, ok1 := next1()
		k2, v2, ok2 := next2()
		switch {
		case !ok1 && !ok2:
			return 0
		case !ok1:
			return -1
		case !ok2:
			return +1
		}
		if c := cmpK(k1, k2); c != 0 {
			return c
		}
		if c := cmpV(v1, v2); c != 0 {
			return c
		}
	}
}

func all[K, V any](m omap[K, V]) iter.Seq2[K, V] {
	t := m.tree()
	return func(yield func(K, V) bool) {
		for x := t.First(); x != nil && yield(x.Key(), x.Value()); x = t.Next(x) {
		}
	}
}
