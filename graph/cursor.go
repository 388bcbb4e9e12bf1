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

import (
	"github.com/krotik/tablegraph/graph/data"
	"github.com/krotik/tablegraph/graph/index"
)

/*
Cursor reads the edges of a graph. A cursor is positioned on a single node and
answers queries about the edges of this node in a given direction. All lists
are sorted and distinct. Queries on an unpositioned cursor return empty lists
and zero counts.
*/
type Cursor interface {

	/*
		MoveTo positions the cursor on a node. Returns false and keeps the current
		position if the node does not exist.
	*/
	MoveTo(node data.NodeKey) bool

	/*
		Position returns the current node and if the cursor is positioned.
	*/
	Position() (data.NodeKey, bool)

	/*
		IsEmpty returns if the cursor has no current node. This is always the case
		before the first successful move and for cursors of empty graphs.
	*/
	IsEmpty() bool

	/*
		Nodes returns all nodes of the graph.
	*/
	Nodes() []data.NodeKey

	/*
		EdgeTypes returns the edge types of the current node.
	*/
	EdgeTypes(dir data.Direction) []data.EdgeType

	/*
		EdgeCount returns the number of edges of the current node.
	*/
	EdgeCount(dir data.Direction) int

	/*
		EdgeTypeCount returns the number of edges of a given type.
	*/
	EdgeTypeCount(dir data.Direction, et data.EdgeType) int

	/*
		NodeTypes returns the types of the nodes which are reached through edges
		of a given type.
	*/
	NodeTypes(dir data.Direction, et data.EdgeType) []data.NodeType

	/*
		NodeTypeCount returns the number of edges of a given type to nodes of a
		given type.
	*/
	NodeTypeCount(dir data.Direction, et data.EdgeType, nt data.NodeType) int

	/*
		NodeIDs returns the ids of the nodes of a given type which are reached
		through edges of a given type.
	*/
	NodeIDs(dir data.Direction, et data.EdgeType, nt data.NodeType) []data.NodeID
}

/*
TableCursor is a cursor which reads the tables of a graph.
*/
type TableCursor struct {
	graph      *Graph        // Graph to read
	pos        data.NodeKey  // Current node
	addr       index.Address // Edge runs of the current node
	positioned bool          // Flag if the cursor is positioned
}

/*
MoveTo positions the cursor on a node.
*/
func (c *TableCursor) MoveTo(node data.NodeKey) bool {
	addr, ok := c.graph.addresses.FindAddress(node)

	if ok {
		c.pos = node
		c.addr = addr
		c.positioned = true
	}

	return ok
}

/*
Position returns the current node and if the cursor is positioned.
*/
func (c *TableCursor) Position() (data.NodeKey, bool) {
	return c.pos, c.positioned
}

/*
IsEmpty returns if the cursor has no current node.
*/
func (c *TableCursor) IsEmpty() bool {
	return !c.positioned || c.graph.IsEmpty()
}

/*
Nodes returns all nodes of the graph.
*/
func (c *TableCursor) Nodes() []data.NodeKey {
	return c.graph.addresses.Keys()
}

/*
edgeRange returns the edge run of the current node.
*/
func (c *TableCursor) edgeRange(dir data.Direction) index.EdgeRange {
	if !c.positioned {
		return index.EdgeRange{}
	}
	return c.addr.Range(dir)
}

/*
edgeRow looks up the edge row of an edge type.
*/
func (c *TableCursor) edgeRow(dir data.Direction, et data.EdgeType) (index.EdgeRow, bool) {
	if !c.positioned {
		return 0, false
	}
	return c.graph.edges.Find(c.addr.Range(dir), et)
}

/*
nodeTypeRow looks up the node type row of an edge type and node type.
*/
func (c *TableCursor) nodeTypeRow(dir data.Direction, et data.EdgeType,
	nt data.NodeType) (index.NodeTypeRow, bool) {

	er, ok := c.edgeRow(dir, et)
	if !ok {
		return 0, false
	}

	return c.graph.nodeTypes.Find(c.graph.edges.NodeTypeRange(er), nt)
}

/*
EdgeTypes returns the edge types of the current node.
*/
func (c *TableCursor) EdgeTypes(dir data.Direction) []data.EdgeType {
	return c.graph.edges.EdgeTypes(c.edgeRange(dir))
}

/*
EdgeCount returns the number of edges of the current node.
*/
func (c *TableCursor) EdgeCount(dir data.Direction) int {
	var count int

	r := c.edgeRange(dir)

	for row := r.Start; row < r.End(); row++ {
		count += c.graph.nodeTypes.CountIDs(c.graph.edges.NodeTypeRange(row))
	}

	return count
}

/*
EdgeTypeCount returns the number of edges of a given type.
*/
func (c *TableCursor) EdgeTypeCount(dir data.Direction, et data.EdgeType) int {
	er, ok := c.edgeRow(dir, et)
	if !ok {
		return 0
	}

	return c.graph.nodeTypes.CountIDs(c.graph.edges.NodeTypeRange(er))
}

/*
NodeTypes returns the types of the nodes which are reached through edges of a
given type.
*/
func (c *TableCursor) NodeTypes(dir data.Direction, et data.EdgeType) []data.NodeType {
	er, ok := c.edgeRow(dir, et)
	if !ok {
		return []data.NodeType{}
	}

	return c.graph.nodeTypes.NodeTypes(c.graph.edges.NodeTypeRange(er))
}

/*
NodeTypeCount returns the number of edges of a given type to nodes of a given
type.
*/
func (c *TableCursor) NodeTypeCount(dir data.Direction, et data.EdgeType, nt data.NodeType) int {
	ntr, ok := c.nodeTypeRow(dir, et, nt)
	if !ok {
		return 0
	}

	return c.graph.nodeTypes.NodeIDRange(ntr).Count
}

/*
NodeIDs returns the ids of the nodes of a given type which are reached through
edges of a given type.
*/
func (c *TableCursor) NodeIDs(dir data.Direction, et data.EdgeType, nt data.NodeType) []data.NodeID {
	ntr, ok := c.nodeTypeRow(dir, et, nt)
	if !ok {
		return []data.NodeID{}
	}

	return c.graph.nodeIDs.NodeIDs(c.graph.nodeTypes.NodeIDRange(ntr))
}
