// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aatree

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by every error returned from Check.
var ErrCorrupt = errors.New("aatree: corrupt tree")

// Check verifies the structure of t: the AA level rules, parent links,
// strict key order, the sentinel's self links and the cached size.
// It returns nil if t is well formed.
func (t *Tree[K, V]) Check() error {
	s := t.sentinel
	if s.level != 0 || s.left != s || s.right != s || s.parent != s {
		return fmt.Errorf("%w: sentinel modified", ErrCorrupt)
	}
	if t.root != s && t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupt, t.root.key)
	}
	n, err := t.check(t.root, nil)
	if err != nil {
		return err
	}
	if n != t.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrCorrupt, n, t.size)
	}
	// Key order, checked along the in-order walk.
	var prev *Node[K, V]
	for x := t.First(); x != nil; x = t.Next(x) {
		if prev != nil && t.cmp(prev.key, x.key) >= 0 {
			return fmt.Errorf("%w: key %v follows %v", ErrCorrupt, x.key, prev.key)
		}
		prev = x
	}
	return nil
}

// check validates the subtree at x and returns its node count.
func (t *Tree[K, V]) check(x, parent *Node[K, V]) (int, error) {
	if x == t.sentinel {
		return 0, nil
	}
	switch {
	case x.parent != parent:
		return 0, fmt.Errorf("%w: node %v has the wrong parent", ErrCorrupt, x.key)
	case x.level < 1:
		return 0, fmt.Errorf("%w: node %v has level %d", ErrCorrupt, x.key, x.level)
	case x.left == t.sentinel && x.right == t.sentinel && x.level != 1:
		return 0, fmt.Errorf("%w: leaf %v has level %d", ErrCorrupt, x.key, x.level)
	case x.left.level >= x.level:
		return 0, fmt.Errorf("%w: horizontal left link at %v", ErrCorrupt, x.key)
	case x.right.level > x.level:
		return 0, fmt.Errorf("%w: right child of %v is above it", ErrCorrupt, x.key)
	case x.right.right != t.sentinel && x.right.right.level >= x.level:
		return 0, fmt.Errorf("%w: two horizontal right links at %v", ErrCorrupt, x.key)
	case x.level >= 2 && (x.left == t.sentinel || x.right == t.sentinel):
		return 0, fmt.Errorf("%w: node %v at level %d lacks a child", ErrCorrupt, x.key, x.level)
	}
	nl, err := t.check(x.left, x)
	if err != nil {
		return 0, err
	}
	nr, err := t.check(x.right, x)
	if err != nil {
		return 0, err
	}
	return 1 + nl + nr, nil
}
