/*
 * Tablegraph
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import "github.com/krotik/tablegraph/graph/data"

/*
DisjointComboCursor reads two graphs as one graph without merging them. The
two graphs must not share any edge. Lists are the sorted distinct union of
the lists of both cursors, counts are the sums of both counts.
*/
type DisjointComboCursor struct {
	first      Cursor       // Cursor of the first graph
	second     Cursor       // Cursor of the second graph
	onFirst    bool         // Flag if the first cursor is on the current node
	onSecond   bool         // Flag if the second cursor is on the current node
	pos        data.NodeKey // Current node
	positioned bool         // Flag if the cursor is positioned
}

/*
NewDisjointComboCursor creates a new cursor over two cursors.
*/
func NewDisjointComboCursor(first Cursor, second Cursor) *DisjointComboCursor {
	return &DisjointComboCursor{first: first, second: second}
}

/*
MoveTo positions the cursor on a node which exists in at least one graph.
*/
func (c *DisjointComboCursor) MoveTo(node data.NodeKey) bool {
	onFirst := c.first.MoveTo(node)
	onSecond := c.second.MoveTo(node)

	if !onFirst && !onSecond {
		return false
	}

	c.onFirst, c.onSecond = onFirst, onSecond
	c.pos = node
	c.positioned = true

	return true
}

/*
Position returns the current node and if the cursor is positioned.
*/
func (c *DisjointComboCursor) Position() (data.NodeKey, bool) {
	return c.pos, c.positioned
}

/*
IsEmpty returns if the cursor has no current node.
*/
func (c *DisjointComboCursor) IsEmpty() bool {
	return !c.positioned
}

/*
Nodes returns all nodes of both graphs.
*/
func (c *DisjointComboCursor) Nodes() []data.NodeKey {
	a, b := c.first.Nodes(), c.second.Nodes()
	res := make([]data.NodeKey, 0, len(a)+len(b))

	unionSorted(len(a), len(b), func(i, j int) int {
		return a[i].Compare(b[j])
	}, func(fromA bool, i int) {
		if fromA {
			res = append(res, a[i])
		} else {
			res = append(res, b[i])
		}
	})

	return res
}

/*
EdgeTypes returns the edge types of the current node.
*/
func (c *DisjointComboCursor) EdgeTypes(dir data.Direction) []data.EdgeType {
	var a, b []data.EdgeType

	if c.onFirst {
		a = c.first.EdgeTypes(dir)
	}
	if c.onSecond {
		b = c.second.EdgeTypes(dir)
	}

	res := make([]data.EdgeType, 0, len(a)+len(b))

	unionSorted(len(a), len(b), func(i, j int) int {
		return compareInt(int(a[i]), int(b[j]))
	}, func(fromA bool, i int) {
		if fromA {
			res = append(res, a[i])
		} else {
			res = append(res, b[i])
		}
	})

	return res
}

/*
EdgeCount returns the number of edges of the current node.
*/
func (c *DisjointComboCursor) EdgeCount(dir data.Direction) int {
	var count int

	if c.onFirst {
		count += c.first.EdgeCount(dir)
	}
	if c.onSecond {
		count += c.second.EdgeCount(dir)
	}

	return count
}

/*
EdgeTypeCount returns the number of edges of a given type.
*/
func (c *DisjointComboCursor) EdgeTypeCount(dir data.Direction, et data.EdgeType) int {
	var count int

	if c.onFirst {
		count += c.first.EdgeTypeCount(dir, et)
	}
	if c.onSecond {
		count += c.second.EdgeTypeCount(dir, et)
	}

	return count
}

/*
NodeTypes returns the types of the nodes which are reached through edges of a
given type.
*/
func (c *DisjointComboCursor) NodeTypes(dir data.Direction, et data.EdgeType) []data.NodeType {
	var a, b []data.NodeType

	if c.onFirst {
		a = c.first.NodeTypes(dir, et)
	}
	if c.onSecond {
		b = c.second.NodeTypes(dir, et)
	}

	res := make([]data.NodeType, 0, len(a)+len(b))

	unionSorted(len(a), len(b), func(i, j int) int {
		return compareInt(int(a[i]), int(b[j]))
	}, func(fromA bool, i int) {
		if fromA {
			res = append(res, a[i])
		} else {
			res = append(res, b[i])
		}
	})

	return res
}

/*
NodeTypeCount returns the number of edges of a given type to nodes of a given
type.
*/
func (c *DisjointComboCursor) NodeTypeCount(dir data.Direction, et data.EdgeType, nt data.NodeType) int {
	var count int

	if c.onFirst {
		count += c.first.NodeTypeCount(dir, et, nt)
	}
	if c.onSecond {
		count += c.second.NodeTypeCount(dir, et, nt)
	}

	return count
}

/*
NodeIDs returns the ids of the nodes of a given type which are reached through
edges of a given type.
*/
func (c *DisjointComboCursor) NodeIDs(dir data.Direction, et data.EdgeType, nt data.NodeType) []data.NodeID {
	var a, b []data.NodeID

	if c.onFirst {
		a = c.first.NodeIDs(dir, et, nt)
	}
	if c.onSecond {
		b = c.second.NodeIDs(dir, et, nt)
	}

	res := make([]data.NodeID, 0, len(a)+len(b))

	unionSorted(len(a), len(b), func(i, j int) int {
		return compareInt(int(a[i]), int(b[j]))
	}, func(fromA bool, i int) {
		if fromA {
			res = append(res, a[i])
		} else {
			res = append(res, b[i])
		}
	})

	return res
}

/*
unionSorted walks two sorted distinct lists of the lengths la and lb and calls
add for every element of their union. Elements which are in both lists are
added once (from the first list).
*/
func unionSorted(la int, lb int, cmp func(i, j int) int, add func(fromA bool, i int)) {
	i, j := 0, 0

	for i < la || j < lb {

		if j == lb {
			add(true, i)
			i++
		} else if i == la {
			add(false, j)
			j++
		} else if c := cmp(i, j); c <= 0 {
			add(true, i)
			i++
			if c == 0 {
				j++
			}
		} else {
			add(false, j)
			j++
		}
	}
}

func compareInt(a int, b int) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
