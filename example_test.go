// Copyright 2024 The Go Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aamap_test

import (
	"fmt"

	"github.com/jba/aamap"
	"github.com/jba/aamap/rng"
)

func ExampleMap_All() {
	var m aamap.Map[int, string]
	m.Set(1, "one")
	m.Set(2, "two")
	m.Set(3, "three")

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// 1 one
	// 2 two
	// 3 three
}

func ExampleMap_Scan() {
	var m aamap.Map[int, string]
	m.Set(1, "one")
	m.Set(2, "two")
	m.Set(3, "three")

	for k, v := range m.Scan(rng.From(2)) {
		fmt.Println(k, v)
	}
	for k, v := range m.Scan(rng.Above(1).Below(3)) {
		fmt.Println(k, v)
	}

	// Output:
	// 2 two
	// 3 three
	// 2 two
}

func ExampleIterator() {
	var m aamap.Map[string, int]
	m.Insert("b", 2)
	m.Insert("a", 1)
	m.Insert("c", 3)

	var fwd, back []string
	for it := m.Begin(); !it.AtEnd(); it.Next() {
		fwd = append(fwd, it.Key())
	}
	it := m.End()
	for it.Prev(); !it.AtEnd(); it.Prev() {
		back = append(back, it.Key())
	}
	fmt.Println(fwd)
	fmt.Println(back)

	// Output:
	// [a b c]
	// [c b a]
}

func ExampleMap_LowerBound() {
	var m aamap.Map[int, string]
	m.Set(10, "ten")
	m.Set(20, "twenty")
	m.Set(30, "thirty")

	lo, hi := m.LowerBound(15), m.UpperBound(30)
	for it := lo; !it.Equal(hi); it.Next() {
		fmt.Println(it.Key(), it.Value())
	}

	// Output:
	// 20 twenty
	// 30 thirty
}

func ExampleNewMapLess() {
	byLen := aamap.NewMapLess[string, bool](func(a, b string) bool { return len(a) < len(b) })
	byLen.Set("pear", true)
	byLen.Set("fig", true)
	byLen.Set("plum", true) // same length as "pear"

	for k := range byLen.All() {
		fmt.Println(k)
	}

	// Output:
	// fig
	// pear
}
