// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aatree

// Root returns the root of t, or nil if t is empty.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.orNil(t.root)
}

func (t *Tree[K, V]) orNil(x *Node[K, V]) *Node[K, V] {
	if x == t.sentinel {
		return nil
	}
	return x
}

// RootOf returns the root of the tree containing n by following parent
// links. Rotations may have moved n's root since it was last observed,
// so holders of a root should refresh it with RootOf before using it.
// If n is nil or has been removed from the tree, RootOf returns t.Root().
func (t *Tree[K, V]) RootOf(n *Node[K, V]) *Node[K, V] {
	if !live(n) {
		return t.Root()
	}
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// First returns the node with the smallest key, or nil if t is empty.
func (t *Tree[K, V]) First() *Node[K, V] {
	if t.root == t.sentinel {
		return nil
	}
	return t.Leftmost(t.root)
}

// Last returns the node with the largest key, or nil if t is empty.
func (t *Tree[K, V]) Last() *Node[K, V] {
	if t.root == t.sentinel {
		return nil
	}
	return t.Rightmost(t.root)
}

// Leftmost returns the node with the smallest key in n's subtree.
// n must not be nil.
func (t *Tree[K, V]) Leftmost(n *Node[K, V]) *Node[K, V] {
	for n.left != t.sentinel {
		n = n.left
	}
	return n
}

// Rightmost returns the node with the largest key in n's subtree.
// n must not be nil.
func (t *Tree[K, V]) Rightmost(n *Node[K, V]) *Node[K, V] {
	for n.right != t.sentinel {
		n = n.right
	}
	return n
}

// Next returns the in-order successor of n, or nil if n is the last node.
func (t *Tree[K, V]) Next(n *Node[K, V]) *Node[K, V] {
	if n.right != t.sentinel {
		return t.Leftmost(n.right)
	}
	// Climb while n is a right child.
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.left == n {
			return p
		}
	}
	return nil
}

// Prev returns the in-order predecessor of n, or nil if n is the first node.
func (t *Tree[K, V]) Prev(n *Node[K, V]) *Node[K, V] {
	if n.left != t.sentinel {
		return t.Rightmost(n.left)
	}
	// Climb while n is a left child.
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.right == n {
			return p
		}
	}
	return nil
}

// Find returns the node holding key, or nil.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	x := t.root
	for x != t.sentinel {
		switch c := t.cmp(key, x.key); {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return nil
}

// LowerBound returns the first node whose key is not less than key, or nil.
func (t *Tree[K, V]) LowerBound(key K) *Node[K, V] {
	var ge *Node[K, V]
	x := t.root
	for x != t.sentinel {
		switch c := t.cmp(key, x.key); {
		case c < 0:
			ge = x
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return ge
}

// UpperBound returns the first node whose key is greater than key, or nil.
func (t *Tree[K, V]) UpperBound(key K) *Node[K, V] {
	var gt *Node[K, V]
	x := t.root
	for x != t.sentinel {
		if t.cmp(key, x.key) < 0 {
			gt = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return gt
}
