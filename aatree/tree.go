// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aatree

// A Tree is an AA tree of key/value pairs ordered by a comparison function.
type Tree[K, V any] struct {
	root     *Node[K, V] // sentinel when empty
	sentinel *Node[K, V]
	size     int
	cmp      func(K, K) int
}

// New returns an empty tree ordered by cmp.
// cmp(a, b) must return a negative number when a < b, a positive number
// when a > b and zero when a and b are equivalent.
func New[K, V any](cmp func(K, K) int) *Tree[K, V] {
	s := newSentinel[K, V]()
	return &Tree[K, V]{root: s, sentinel: s, cmp: cmp}
}

// Len returns the number of nodes in t.
func (t *Tree[K, V]) Len() int { return t.size }

// Compare returns the comparison function that orders t.
func (t *Tree[K, V]) Compare() func(K, K) int { return t.cmp }

// Insert sets the value for key to val.
// If key was absent, a new node is created and added is true.
// Otherwise the existing node's value is overwritten and added is false.
// In both cases n is the node holding key.
func (t *Tree[K, V]) Insert(key K, val V) (n *Node[K, V], added bool) {
	size := t.size
	t.root = t.insert(t.root, nil, key, val, &n)
	t.root.parent = nil
	return n, t.size != size
}

func (t *Tree[K, V]) insert(x, parent *Node[K, V], key K, val V, at **Node[K, V]) *Node[K, V] {
	if x == t.sentinel {
		x = t.newNode(key, val, parent)
		t.size++
		*at = x
		return x
	}
	switch c := t.cmp(key, x.key); {
	case c < 0:
		x.left = t.insert(x.left, x, key, val, at)
	case c > 0:
		x.right = t.insert(x.right, x, key, val, at)
	default:
		x.val = val
		*at = x
		return x
	}
	return t.split(t.skew(x))
}

// Delete removes key from t and reports whether it was present.
//
// A node with children is never unlinked directly: the payload of its
// in-order successor (or of its lone right child) is copied into it and
// the successor is removed instead. Nodes other than the one holding key
// may therefore change their key and value.
func (t *Tree[K, V]) Delete(key K) bool {
	size := t.size
	t.root = t.delete(t.root, key)
	if t.root != t.sentinel {
		t.root.parent = nil
	}
	return t.size != size
}

func (t *Tree[K, V]) delete(x *Node[K, V], key K) *Node[K, V] {
	if x == t.sentinel {
		return x
	}
	switch c := t.cmp(key, x.key); {
	case c < 0:
		x.left = t.delete(x.left, key)
	case c > 0:
		x.right = t.delete(x.right, key)
	case x.left == t.sentinel && x.right == t.sentinel:
		t.free(x)
		t.size--
		return t.sentinel
	case x.left == t.sentinel:
		// x is a level-1 node with a single level-1 right child.
		r := x.right
		x.key, x.val = r.key, r.val
		x.right = t.delete(r, r.key)
	default:
		succ := t.Leftmost(x.right)
		x.key, x.val = succ.key, succ.val
		x.right = t.delete(x.right, succ.key)
	}
	return t.fixup(x)
}

// fixup restores the AA invariants at x after a deletion below it.
func (t *Tree[K, V]) fixup(x *Node[K, V]) *Node[K, V] {
	ideal := 1 + min(x.left.level, x.right.level)
	if x.level > ideal {
		x.level = ideal
		if x.right.level > ideal {
			x.right.level = ideal
		}
	}
	x = t.skew(x)
	x.right = t.skew(x.right)
	if r := x.right; r != t.sentinel {
		r.right = t.skew(r.right)
	}
	x = t.split(x)
	x.right = t.split(x.right)
	return x
}

// skew removes a horizontal left link at x with a right rotation.
// It returns the root of the subtree.
func (t *Tree[K, V]) skew(x *Node[K, V]) *Node[K, V] {
	if x == t.sentinel || x.left.level != x.level {
		return x
	}
	return t.rotateRight(x)
}

// split removes two consecutive horizontal right links at x with a left
// rotation, promoting the new subtree root by one level.
// It returns the root of the subtree.
func (t *Tree[K, V]) split(x *Node[K, V]) *Node[K, V] {
	if x == t.sentinel || x.right.right.level != x.level {
		return x
	}
	y := t.rotateLeft(x)
	y.level++
	return y
}

// rotateRight turns (y (x a b) c) into (x a (y b c)) and returns x.
// The caller stores the result in the link that pointed to y.
func (t *Tree[K, V]) rotateRight(y *Node[K, V]) *Node[K, V] {
	x := y.left
	b := x.right

	x.parent = y.parent
	y.parent = x
	if b != t.sentinel {
		b.parent = y
	}
	y.left = b
	x.right = y
	return x
}

// rotateLeft turns (x a (y b c)) into (y (x a b) c) and returns y.
// The caller stores the result in the link that pointed to x.
func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) *Node[K, V] {
	y := x.right
	b := y.left

	y.parent = x.parent
	x.parent = y
	if b != t.sentinel {
		b.parent = x
	}
	x.right = b
	y.left = x
	return y
}

// Clear removes all nodes from t, freeing each exactly once.
func (t *Tree[K, V]) Clear() {
	t.clear(t.root)
	t.root = t.sentinel
}

func (t *Tree[K, V]) clear(x *Node[K, V]) {
	if x == t.sentinel {
		return
	}
	t.clear(x.left)
	t.clear(x.right)
	t.free(x)
	t.size--
}

// Clone returns a deep copy of t with its own sentinel.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	t2 := New[K, V](t.cmp)
	t2.root = t.clone(t2, t.root, nil)
	t2.size = t.size
	return t2
}

func (t *Tree[K, V]) clone(t2 *Tree[K, V], x, parent *Node[K, V]) *Node[K, V] {
	if x == t.sentinel {
		return t2.sentinel
	}
	c := t2.newNode(x.key, x.val, parent)
	c.level = x.level
	c.left = t.clone(t2, x.left, c)
	c.right = t.clone(t2, x.right, c)
	return c
}
