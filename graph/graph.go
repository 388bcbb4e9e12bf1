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
	"fmt"

	"devt.de/krotik/common/bitutil"
	"github.com/krotik/tablegraph/graph/data"
	"github.com/krotik/tablegraph/graph/index"
	"github.com/krotik/tablegraph/graph/util"
	"github.com/krotik/tablegraph/storage/table"
)

/*
Graph data structure
*/
type Graph struct {
	addresses *index.AddressTable  // One row per node
	edges     *index.EdgeTable     // One row per node, direction and edge type
	nodeTypes *index.NodeTypeTable // One row per edge row and destination type
	nodeIDs   *index.NodeIDTable   // One row per destination id
}

/*
NewGraph creates a new Graph from four tables. The tables are not validated
(see Validate).
*/
func NewGraph(addresses *index.AddressTable, edges *index.EdgeTable,
	nodeTypes *index.NodeTypeTable, nodeIDs *index.NodeIDTable) (*Graph, error) {

	if addresses == nil || edges == nil || nodeTypes == nil || nodeIDs == nil {
		return nil, &util.GraphError{Type: util.ErrInvalidGraph, Detail: "Missing table"}
	}

	return &Graph{addresses, edges, nodeTypes, nodeIDs}, nil
}

/*
NewEmptyGraph creates a new Graph without any nodes.
*/
func NewEmptyGraph() *Graph {
	return &Graph{index.NewAddressTable(1), index.NewEdgeTable(1),
		index.NewNodeTypeTable(1), index.NewNodeIDTable(1)}
}

/*
IsEmpty returns if the graph has no nodes.
*/
func (g *Graph) IsEmpty() bool {
	return g.addresses.Size() == 0
}

/*
NodeCount returns the number of nodes.
*/
func (g *Graph) NodeCount() int {
	return g.addresses.Size()
}

/*
EdgeEntryCount returns the number of stored edge entries. Every edge is stored
as an outbound and an inbound entry.
*/
func (g *Graph) EdgeEntryCount() int {
	return g.nodeIDs.Size()
}

/*
EdgeCount returns the number of edges.
*/
func (g *Graph) EdgeCount() int {
	return g.nodeIDs.Size() / 2
}

func (g *Graph) tables() []*table.Table {
	return []*table.Table{g.addresses.Table(), g.edges.Table(),
		g.nodeTypes.Table(), g.nodeIDs.Table()}
}

/*
ByteFootprint returns the number of bytes used by all table rows.
*/
func (g *Graph) ByteFootprint() int {
	var res int

	for _, t := range g.tables() {
		res += t.ByteSize()
	}

	return res
}

/*
UnusedBytes returns the number of allocated bytes which are not used by rows.
*/
func (g *Graph) UnusedBytes() int {
	var res int

	for _, t := range g.tables() {
		res += t.UnusedBytes()
	}

	return res
}

/*
TrimToFit reallocates all tables so they hold exactly their rows. Must not be
called while the graph is read.
*/
func (g *Graph) TrimToFit() {
	for _, t := range g.tables() {
		t.TrimToSize()
	}
}

// Statistics
// ==========

/*
AvgEdgeTypesPerNode returns the average number of edge types per node and
direction.
*/
func (g *Graph) AvgEdgeTypesPerNode() float64 {
	return ratio(g.edges.Size(), g.addresses.Size()*2)
}

/*
AvgNodeTypesPerEdgeType returns the average number of destination node types
per edge type.
*/
func (g *Graph) AvgNodeTypesPerEdgeType() float64 {
	return ratio(g.nodeTypes.Size(), g.edges.Size())
}

/*
AvgNodeIDsPerNodeType returns the average number of destination nodes per
destination node type.
*/
func (g *Graph) AvgNodeIDsPerNodeType() float64 {
	return ratio(g.nodeIDs.Size(), g.nodeTypes.Size())
}

func ratio(a int, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

/*
String returns a string representation of this graph.
*/
func (g *Graph) String() string {
	return fmt.Sprintf("Graph (nodes:%v edges:%v footprint:%v unused:%v)",
		g.NodeCount(), g.EdgeCount(),
		bitutil.ByteSizeString(int64(g.ByteFootprint()), false),
		bitutil.ByteSizeString(int64(g.UnusedBytes()), false))
}

// Reading
// =======

/*
NewCursor creates a new unpositioned cursor for this graph.
*/
func (g *Graph) NewCursor() Cursor {
	if g.IsEmpty() {
		return EmptyCursor
	}
	return &TableCursor{graph: g}
}

/*
Merge merges this graph with another graph. See Merge.
*/
func (g *Graph) Merge(other *Graph) (*Graph, error) {
	return Merge(g, other)
}

/*
containsEntry checks if the graph stores a given edge entry.
*/
func (g *Graph) containsEntry(e data.EdgeEntry) bool {
	addr, ok := g.addresses.FindAddress(e.Node)
	if !ok {
		return false
	}

	er, ok := g.edges.Find(addr.Range(e.Dir), e.Type)
	if !ok {
		return false
	}

	ntr, ok := g.nodeTypes.Find(g.edges.NodeTypeRange(er), e.Other.Type)
	if !ok {
		return false
	}

	_, ok = g.nodeIDs.Search(g.nodeTypes.NodeIDRange(ntr), e.Other.ID)

	return ok
}
