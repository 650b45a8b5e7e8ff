// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aatree implements the AA tree that backs the ordered maps in
// github.com/jba/aamap.
//
// An AA tree is a red-black tree in which balance is tracked by an integer
// level per node instead of a color. Leaves have level 1; a left child is
// always one level below its parent, and a right child may share its
// parent's level but its own right child may not. Two rotations, skew and
// split, restore those rules after every insertion and deletion.
//
// Every tree owns a sentinel node of level 0 whose links all point at
// itself. All "no child" links point at the sentinel, which keeps the
// rebalancing code free of nil checks. The sentinel never leaves this
// package: exported navigation methods report "no node" as nil.
//
// A Tree is not safe for concurrent use.
package aatree

// A Node is an entry in a Tree.
type Node[K, V any] struct {
	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V] // nil for the root
	key    K
	val    V
	level  int // 0 only for the sentinel and freed nodes
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the node's value.
func (n *Node[K, V]) Value() V { return n.val }

// ValuePtr returns a pointer to the node's value, which may be used to
// update the value in place.
func (n *Node[K, V]) ValuePtr() *V { return &n.val }

// Level returns the node's AA level.
func (n *Node[K, V]) Level() int { return n.level }

func newSentinel[K, V any]() *Node[K, V] {
	s := &Node[K, V]{}
	s.left, s.right, s.parent = s, s, s
	return s
}

// newNode returns a fully initialized leaf. It is linked into the tree only
// after it has been built.
func (t *Tree[K, V]) newNode(key K, val V, parent *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		left:   t.sentinel,
		right:  t.sentinel,
		parent: parent,
		key:    key,
		val:    val,
		level:  1,
	}
}

// free releases x, which must already be unlinked from the tree.
// The payload is cleared so the garbage collector can reclaim it, and the
// level is zeroed to mark x as dead.
func (t *Tree[K, V]) free(x *Node[K, V]) {
	var (
		k K
		v V
	)
	x.key = k
	x.val = v
	x.level = 0
	x.left = nil
	x.right = nil
	x.parent = nil
}

// live reports whether x is a node currently linked into some tree.
func live[K, V any](x *Node[K, V]) bool {
	return x != nil && x.level > 0
}
