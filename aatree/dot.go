// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aatree

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// WriteDot writes a Graphviz rendering of t to w, for debugging.
//
// Each node is labelled with its key, its level and its parent's key.
// Horizontal links, where a child shares its parent's level, are drawn in
// red along with the child.
func (t *Tree[K, V]) WriteDot(w io.Writer) error {
	g := dot.NewGraph(dot.Directed)
	if t.root != t.sentinel {
		t.dotNode(g, t.root)
	}
	if _, err := io.WriteString(w, g.String()); err != nil {
		return fmt.Errorf("aatree: writing dot graph: %w", err)
	}
	return nil
}

func (t *Tree[K, V]) dotNode(g *dot.Graph, x *Node[K, V]) dot.Node {
	n := g.Node(fmt.Sprint(x.key))
	label := fmt.Sprintf("%v\nL%d", x.key, x.level)
	if x.parent != nil {
		label += fmt.Sprintf(" ^%v", x.parent.key)
	}
	n.Label(label)
	for _, c := range []struct {
		child *Node[K, V]
		dir   string
	}{{x.left, "l"}, {x.right, "r"}} {
		if c.child == t.sentinel {
			continue
		}
		cn := t.dotNode(g, c.child)
		e := g.Edge(n, cn, c.dir)
		if c.child.level == x.level {
			cn.Attr("color", "red")
			e.Attr("color", "red")
		}
	}
	return n
}
