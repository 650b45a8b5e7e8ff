// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aamap

import "io"

// WriteDot writes a Graphviz rendering of m's tree to w, for debugging.
func (m *Map[K, V]) WriteDot(w io.Writer) error { return m.tree().WriteDot(w) }

// WriteDot writes a Graphviz rendering of m's tree to w, for debugging.
func (m *MapFunc[K, V]) WriteDot(w io.Writer) error { return m.tree().WriteDot(w) }

// Check verifies the internal structure of m and returns an error
// describing the first problem found, or nil.
func (m *Map[K, V]) Check() error { return m.tree().Check() }

// Check verifies the internal structure of m and returns an error
// describing the first problem found, or nil.
func (m *MapFunc[K, V]) Check() error { return m.tree().Check() }
