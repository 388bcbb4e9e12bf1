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
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/krotik/tablegraph/graph/data"
	"github.com/krotik/tablegraph/graph/index"
	"github.com/krotik/tablegraph/graph/util"
)

// Test fixtures
// =============

/*
randomEdges creates a deterministic list of random edges. Each edge is
srcType, srcId, edgeType, dtnType, dtnId.
*/
func randomEdges(seed int64, count int, nodeTypes int, nodeIDs int, edgeTypes int, idOffset int) [][5]int {
	r := rand.New(rand.NewSource(seed))
	res := make([][5]int, count)

	for i := range res {
		res[i] = [5]int{
			r.Intn(nodeTypes) - nodeTypes/2,
			idOffset + r.Intn(nodeIDs),
			r.Intn(edgeTypes) - edgeTypes/2,
			r.Intn(nodeTypes) - nodeTypes/2,
			idOffset + r.Intn(nodeIDs),
		}
	}

	return res
}

/*
buildGraph builds a graph from a list of edges.
*/
func buildGraph(t *testing.T, edges ...[5]int) *Graph {
	b := NewBuilder()

	for _, e := range edges {
		if _, err := b.Insert(e[0], e[1], e[2], e[3], e[4]); err != nil {
			t.Fatal(err)
		}
	}

	g, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	return g
}

/*
referenceEntries returns the sorted distinct edge entries of a list of edges.
*/
func referenceEntries(edges ...[5]int) []data.EdgeEntry {
	set := make(map[data.EdgeEntry]bool)

	for _, e := range edges {
		edge := data.Edge{
			Src:  data.NodeKey{Type: data.NodeType(e[0]), ID: data.NodeID(e[1])},
			Type: data.EdgeType(e[2]),
			Dtn:  data.NodeKey{Type: data.NodeType(e[3]), ID: data.NodeID(e[4])},
		}

		for _, entry := range edge.Entries() {
			set[entry] = true
		}
	}

	res := make([]data.EdgeEntry, 0, len(set))
	for e := range set {
		res = append(res, e)
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Compare(res[j]) < 0
	})

	return res
}

/*
referenceDump prints a list of edges in the same way as dumpCursor.
*/
func referenceDump(edges ...[5]int) string {
	var buf bytes.Buffer

	entries := referenceEntries(edges...)

	for i := 0; i < len(entries); {
		e := entries[i]
		ids := []data.NodeID{}

		j := i
		for ; j < len(entries); j++ {
			o := entries[j]
			if o.Node != e.Node || o.Dir != e.Dir || o.Type != e.Type || o.Other.Type != e.Other.Type {
				break
			}
			ids = append(ids, o.Other.ID)
		}

		fmt.Fprintf(&buf, "%v %v %v %v %v\n", e.Node, e.Dir, e.Type, e.Other.Type, ids)
		i = j
	}

	return buf.String()
}

/*
dumpCursor prints all edges which can be read with a cursor.
*/
func dumpCursor(c Cursor) string {
	var buf bytes.Buffer

	for _, n := range c.Nodes() {
		c.MoveTo(n)

		for _, dir := range data.Directions {
			for _, et := range c.EdgeTypes(dir) {
				for _, nt := range c.NodeTypes(dir, et) {
					fmt.Fprintf(&buf, "%v %v %v %v %v\n", n, dir, et, nt, c.NodeIDs(dir, et, nt))
				}
			}
		}
	}

	return buf.String()
}

/*
walkerEntries returns all entries of a graph in walk order.
*/
func walkerEntries(g *Graph) []data.EdgeEntry {
	var res []data.EdgeEntry

	for w := newWalker(g); !w.atEnd; w.next() {
		res = append(res, w.entry)
	}

	return res
}

// Tests
// =====

func TestMinimalGraph(t *testing.T) {
	g := buildGraph(t, [5]int{1, 5, -3, 1, 6})

	c := g.NewCursor()

	if !c.MoveTo(data.NodeKey{Type: 1, ID: 5}) {
		t.Error("Node should exist")
		return
	}

	if res := fmt.Sprint(c.EdgeTypes(data.Outbound)); res != "[-3]" {
		t.Error("Unexpected result:", res)
	}
	if res := fmt.Sprint(c.NodeTypes(data.Outbound, -3)); res != "[1]" {
		t.Error("Unexpected result:", res)
	}
	if res := fmt.Sprint(c.NodeIDs(data.Outbound, -3, 1)); res != "[6]" {
		t.Error("Unexpected result:", res)
	}
	if c.EdgeCount(data.Outbound) != 1 || c.EdgeCount(data.Inbound) != 0 {
		t.Error("Unexpected counts:", c.EdgeCount(data.Outbound), c.EdgeCount(data.Inbound))
	}

	if !c.MoveTo(data.NodeKey{Type: 1, ID: 6}) {
		t.Error("Node should exist")
		return
	}

	if res := fmt.Sprint(c.EdgeTypes(data.Inbound)); res != "[-3]" {
		t.Error("Unexpected result:", res)
	}
	if res := fmt.Sprint(c.NodeTypes(data.Inbound, -3)); res != "[1]" {
		t.Error("Unexpected result:", res)
	}
	if res := fmt.Sprint(c.NodeIDs(data.Inbound, -3, 1)); res != "[5]" {
		t.Error("Unexpected result:", res)
	}
	if res := fmt.Sprint(c.EdgeTypes(data.Outbound)); res != "[]" {
		t.Error("Unexpected result:", res)
	}

	// Check the table layout

	if a := g.addresses.Address(0); a.Out != (index.EdgeRange{Start: 0, Count: 1}) || a.In.Count != 0 {
		t.Error("Unexpected address:", a)
	}
	if a := g.addresses.Address(1); a.Out.Count != 0 || a.In != (index.EdgeRange{Start: 1, Count: 1}) {
		t.Error("Unexpected address:", a)
	}

	if g.NodeCount() != 2 || g.EdgeCount() != 1 || g.EdgeEntryCount() != 2 || g.IsEmpty() {
		t.Error("Unexpected graph:", g)
		return
	}

	if g.ByteFootprint() != 2*15+2*7+2*8+2*3 || g.UnusedBytes() != 0 {
		t.Error("Unexpected footprint:", g.ByteFootprint(), g.UnusedBytes())
		return
	}

	if g.String() != "Graph (nodes:2 edges:1 footprint:66 B unused:0 B)" {
		t.Error("Unexpected result:", g)
		return
	}

	if g.AvgEdgeTypesPerNode() != 0.5 || g.AvgNodeTypesPerEdgeType() != 1 || g.AvgNodeIDsPerNodeType() != 1 {
		t.Error("Unexpected averages:", g.AvgEdgeTypesPerNode(), g.AvgNodeTypesPerEdgeType(),
			g.AvgNodeIDsPerNodeType())
		return
	}

	if err := g.Validate(); err != nil {
		t.Error(err)
	}
}

func TestVGraph(t *testing.T) {
	g := buildGraph(t, [5]int{1, 1, 2, 1, 2}, [5]int{1, 3, 2, 1, 2})

	c := g.NewCursor()

	if !c.MoveTo(data.NodeKey{Type: 1, ID: 2}) {
		t.Error("Node should exist")
		return
	}

	if res := fmt.Sprint(c.NodeIDs(data.Inbound, 2, 1)); res != "[1 3]" {
		t.Error("Unexpected result:", res)
	}

	if c.EdgeCount(data.Inbound) != 2 || c.EdgeTypeCount(data.Inbound, 2) != 2 ||
		c.NodeTypeCount(data.Inbound, 2, 1) != 2 || c.EdgeCount(data.Outbound) != 0 {
		t.Error("Unexpected counts")
	}

	if res := fmt.Sprint(c.Nodes()); res != "[(1,1) (1,2) (1,3)]" {
		t.Error("Unexpected nodes:", res)
	}

	if err := g.Validate(); err != nil {
		t.Error(err)
	}
}

func TestAFewEdges(t *testing.T) {
	edges := [][5]int{
		{1, 1, 1, 2, 1},
		{1, 1, 1, 2, 2},
		{1, 1, 1, -2, 7},
		{1, 1, -5, 1, 1}, // Self loop
		{2, 1, 3, 1, 1},
		{-2, 7, 3, 1, 1},
		{-2, 7, 3, 1, 0},
	}

	g := buildGraph(t, edges...)

	if res := dumpCursor(g.NewCursor()); res != referenceDump(edges...) {
		t.Error("Unexpected graph:\n", res, "\nexpected:\n", referenceDump(edges...))
		return
	}

	c := g.NewCursor()
	c.MoveTo(data.NodeKey{Type: 1, ID: 1})

	if res := fmt.Sprint(c.EdgeTypes(data.Outbound)); res != "[-5 1]" {
		t.Error("Unexpected result:", res)
	}
	if res := fmt.Sprint(c.EdgeTypes(data.Inbound)); res != "[-5 3]" {
		t.Error("Unexpected result:", res)
	}
	if res := fmt.Sprint(c.NodeTypes(data.Outbound, 1)); res != "[-2 2]" {
		t.Error("Unexpected result:", res)
	}
	if res := fmt.Sprint(c.NodeTypes(data.Inbound, 3)); res != "[-2 2]" {
		t.Error("Unexpected result:", res)
	}
	if c.EdgeCount(data.Outbound) != 4 || c.EdgeCount(data.Inbound) != 3 ||
		c.EdgeTypeCount(data.Outbound, 1) != 3 || c.NodeTypeCount(data.Outbound, 1, 2) != 2 {
		t.Error("Unexpected counts")
	}

	if g.EdgeCount() != len(edges) {
		t.Error("Unexpected edge count:", g.EdgeCount())
	}

	if err := g.Validate(); err != nil {
		t.Error(err)
	}
}

func TestRandomGraph(t *testing.T) {
	edges := randomEdges(42, 2000, 4, 60, 6, 0)
	g := buildGraph(t, edges...)

	if res := dumpCursor(g.NewCursor()); res != referenceDump(edges...) {
		t.Error("Unexpected graph content")
		return
	}

	expected := referenceEntries(edges...)
	entries := walkerEntries(g)

	if len(entries) != len(expected) || g.EdgeEntryCount() != len(expected) {
		t.Error("Unexpected entry count:", len(entries), len(expected), g.EdgeEntryCount())
		return
	}

	for i, e := range entries {
		if e != expected[i] {
			t.Error("Unexpected entry at", i, ":", e, "expected:", expected[i])
			return
		}
	}

	if err := g.Validate(); err != nil {
		t.Error(err)
	}
}

func TestEmptyGraph(t *testing.T) {
	g := NewEmptyGraph()

	if !g.IsEmpty() || g.NodeCount() != 0 || g.EdgeEntryCount() != 0 || g.ByteFootprint() != 0 {
		t.Error("Unexpected graph:", g)
		return
	}

	if g.NewCursor() != EmptyCursor {
		t.Error("Empty graph should have the empty cursor")
		return
	}

	if g.AvgEdgeTypesPerNode() != 0 || g.AvgNodeIDsPerNodeType() != 0 {
		t.Error("Unexpected averages")
	}

	if err := g.Validate(); err != nil {
		t.Error(err)
	}

	if _, err := NewGraph(nil, index.NewEdgeTable(1), index.NewNodeTypeTable(1),
		index.NewNodeIDTable(1)); !util.IsError(err, util.ErrInvalidGraph) {
		t.Error("Unexpected result:", err)
	}
}

func TestValidate(t *testing.T) {

	// Graph with a one-sided edge

	at := index.NewAddressTable(1)
	et := index.NewEdgeTable(1)
	nt := index.NewNodeTypeTable(1)
	ids := index.NewNodeIDTable(1)

	at.Append(data.NodeKey{Type: 1, ID: 1}, index.Address{
		Out: index.EdgeRange{Start: 0, Count: 1}, In: index.EdgeRange{Start: 1}})
	et.OpenRun(5, index.NodeTypeRange{Start: 0, Count: 1})
	nt.OpenRun(1, index.NodeIDRange{Start: 0, Count: 1})
	ids.OpenRun(2)

	g, err := NewGraph(at, et, nt, ids)
	if err != nil {
		t.Error(err)
		return
	}

	if err := g.Validate(); err == nil || err.Error() !=
		"GraphError: Invalid graph (Entry (1,1) out =5=> (1,2) has no counterpart)" {
		t.Error("Unexpected result:", err)
		return
	}

	// Unreferenced rows

	ids.OpenRun(3)

	if err := g.Validate(); err == nil || err.Error() !=
		"GraphError: Invalid graph (Unreferenced rows (edges: 1/1 node types: 1/1 node ids: 1/2))" {
		t.Error("Unexpected result:", err)
		return
	}

	// Duplicate ids in a run

	nt.IncrLastCount(1)

	ids2 := index.NewNodeIDTable(1)
	ids2.OpenRun(2)
	ids2.OpenRun(2)

	g.nodeIDs = ids2

	if err := g.Validate(); err == nil || err.Error() !=
		"GraphError: Invalid graph (Node id 2 of node type 1 at node (1,1) is out of order)" {
		t.Error("Unexpected result:", err)
		return
	}

	// Empty runs

	et2 := index.NewEdgeTable(1)
	et2.OpenRun(5, index.NodeTypeRange{Start: 0, Count: 0})
	g.edges = et2

	if err := g.Validate(); !util.IsError(err, util.ErrInvalidGraph) {
		t.Error("Unexpected result:", err)
		return
	}

	// Builder output is always valid

	if err := buildGraph(t, randomEdges(7, 300, 3, 20, 3, 0)...).Validate(); err != nil {
		t.Error(err)
	}
}
