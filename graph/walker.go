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

	"github.com/krotik/tablegraph/graph/data"
	"github.com/krotik/tablegraph/graph/index"
	"github.com/krotik/tablegraph/graph/util"
)

/*
walker walks all edge entries of a graph in ascending order. It holds the
current row and the end of the current run for every table. Changing the row
of a table loads the first rows of the runs of all following tables.
*/
type walker struct {
	g     *Graph
	entry data.EdgeEntry // Current entry
	atEnd bool           // Flag if all entries were visited
	err   error          // Error if the walker found an invalid run

	addrRow index.AddressRow // Current node
	addrEnd index.AddressRow

	edgeRow index.EdgeRow // Current edge type
	edgeEnd index.EdgeRow

	ntRow index.NodeTypeRow // Current destination type
	ntEnd index.NodeTypeRow

	idRow index.NodeIDRow // Current destination id
	idEnd index.NodeIDRow
}

/*
newWalker creates a new walker which is positioned on the first entry of a
graph.
*/
func newWalker(g *Graph) *walker {
	w := &walker{g: g, addrEnd: index.AddressRow(g.addresses.Size())}
	w.loadNode()
	return w
}

/*
compare compares the current entries of two walkers. A walker at the end is
greater than any other walker.
*/
func (w *walker) compare(other *walker) int {
	if w.atEnd || other.atEnd {
		if w.atEnd && other.atEnd {
			return 0
		} else if w.atEnd {
			return 1
		}
		return -1
	}

	return w.entry.Compare(other.entry)
}

/*
next moves the walker to the next entry.
*/
func (w *walker) next() {
	if w.atEnd {
		return
	}

	w.idRow++

	if w.idRow < w.idEnd {
		w.loadNodeID()
		return
	}

	w.advanceNodeType()
}

// Advancing levels
// ================

func (w *walker) advanceNodeType() {
	w.ntRow++

	if w.ntRow < w.ntEnd {
		w.loadNodeType()
		return
	}

	w.advanceEdgeType()
}

func (w *walker) advanceEdgeType() {
	w.edgeRow++

	if w.edgeRow < w.edgeEnd {
		w.loadEdgeType()
		return
	}

	w.advanceDirection()
}

func (w *walker) advanceDirection() {
	if w.entry.Dir == data.Outbound {
		if r := w.g.addresses.EdgeRange(w.addrRow, data.Inbound); r.Count > 0 {
			w.loadDirection(data.Inbound)
			return
		}
	}

	w.advanceNode()
}

func (w *walker) advanceNode() {
	w.addrRow++
	w.loadNode()
}

// Loading levels
// ==============

/*
loadNode loads the current node. Nodes without edges are skipped.
*/
func (w *walker) loadNode() {
	for ; w.addrRow < w.addrEnd; w.addrRow++ {
		addr := w.g.addresses.Address(w.addrRow)

		if addr.IsEmpty() {
			continue
		}

		w.entry.Node = w.g.addresses.Key(w.addrRow)

		if addr.Out.Count > 0 {
			w.loadDirection(data.Outbound)
		} else {
			w.loadDirection(data.Inbound)
		}

		return
	}

	w.atEnd = true
}

func (w *walker) enterDirection(dir data.Direction) {
	r := w.g.addresses.EdgeRange(w.addrRow, dir)

	w.entry.Dir = dir
	w.edgeRow, w.edgeEnd = r.Start, r.End()
}

func (w *walker) loadDirection(dir data.Direction) {
	w.enterDirection(dir)
	w.loadEdgeType()
}

func (w *walker) enterEdgeType() bool {
	r := w.g.edges.NodeTypeRange(w.edgeRow)

	if r.Count == 0 {
		w.fail("edge type", w.edgeRow)
		return false
	}

	w.entry.Type = w.g.edges.EdgeType(w.edgeRow)
	w.ntRow, w.ntEnd = r.Start, r.End()

	return true
}

func (w *walker) loadEdgeType() {
	if w.enterEdgeType() {
		w.loadNodeType()
	}
}

func (w *walker) enterNodeType() bool {
	r := w.g.nodeTypes.NodeIDRange(w.ntRow)

	if r.Count == 0 {
		w.fail("node type", w.ntRow)
		return false
	}

	w.entry.Other.Type = w.g.nodeTypes.NodeType(w.ntRow)
	w.idRow, w.idEnd = r.Start, r.End()

	return true
}

func (w *walker) loadNodeType() {
	if w.enterNodeType() {
		w.loadNodeID()
	}
}

func (w *walker) loadNodeID() {
	w.entry.Other.ID = w.g.nodeIDs.NodeID(w.idRow)
}

/*
fail stops the walker because of a row which references an empty run.
*/
func (w *walker) fail(level string, row interface{}) {
	w.err = &util.GraphError{Type: util.ErrCorruptInput,
		Detail: fmt.Sprintf("Empty run in %v row %v of node %v", level, row, w.entry.Node)}
	w.atEnd = true
}

// Skipping
// ========

/*
skipTo moves the walker to the first entry which is not less than the
current entry of another walker. Nodes are looked up with a binary search,
edge types and destination types with a linear scan. Destination ids are
looked up with a binary search if both the rest of the run and the gap to the
target id are longer than index.LinearScanThreshold.
*/
func (w *walker) skipTo(target *walker) {
	if target.atEnd {
		w.atEnd = true
		return
	}

	w.skipToEntry(target.entry)
}

func (w *walker) skipToEntry(key data.EdgeEntry) {
	if w.atEnd {
		return
	}

	level, c := w.entry.Diff(key)

	if c >= 0 {
		return
	}

	switch level {
	case data.LevelNode:
		w.seekNode(key)

	case data.LevelDirection:
		w.seekDirection(key)

	case data.LevelEdgeType:
		w.seekEdgeType(key)

	case data.LevelDtnType:
		w.seekNodeType(key)

	case data.LevelDtnID:
		w.seekNodeID(key)
	}
}

func (w *walker) seekNode(key data.EdgeEntry) {
	row, ok := w.g.addresses.SearchRange(w.addrRow, w.addrEnd, key.Node)
	w.addrRow = row

	if !ok {
		w.loadNode()
		return
	}

	addr := w.g.addresses.Address(row)

	if addr.IsEmpty() || (key.Dir == data.Inbound && addr.In.Count == 0) {
		w.advanceNode()
		return
	}

	w.entry.Node = key.Node

	if key.Dir == data.Outbound && addr.Out.Count == 0 {
		w.loadDirection(data.Inbound)
		return
	}

	w.enterDirection(key.Dir)
	w.seekEdgeType(key)
}

func (w *walker) seekDirection(key data.EdgeEntry) {
	if r := w.g.addresses.EdgeRange(w.addrRow, data.Inbound); r.Count == 0 {
		w.advanceNode()
		return
	}

	w.enterDirection(data.Inbound)
	w.seekEdgeType(key)
}

func (w *walker) seekEdgeType(key data.EdgeEntry) {
	row, ok := w.g.edges.Scan(index.EdgeRange{Start: w.edgeRow,
		Count: int(w.edgeEnd - w.edgeRow)}, key.Type)
	w.edgeRow = row

	if row == w.edgeEnd {
		w.advanceDirection()
	} else if !ok {
		w.loadEdgeType()
	} else if w.enterEdgeType() {
		w.seekNodeType(key)
	}
}

func (w *walker) seekNodeType(key data.EdgeEntry) {
	row, ok := w.g.nodeTypes.Scan(index.NodeTypeRange{Start: w.ntRow,
		Count: int(w.ntEnd - w.ntRow)}, key.Other.Type)
	w.ntRow = row

	if row == w.ntEnd {
		w.advanceEdgeType()
	} else if !ok {
		w.loadNodeType()
	} else if w.enterNodeType() {
		w.seekNodeID(key)
	}
}

func (w *walker) seekNodeID(key data.EdgeEntry) {
	r := index.NodeIDRange{Start: w.idRow, Count: int(w.idEnd - w.idRow)}
	gap := int(key.Other.ID) - int(w.g.nodeIDs.NodeID(w.idRow))

	var row index.NodeIDRow

	if r.Count > index.LinearScanThreshold && gap > index.LinearScanThreshold {
		row, _ = w.g.nodeIDs.Search(r, key.Other.ID)
	} else {
		row, _ = w.g.nodeIDs.Scan(r, key.Other.ID)
	}

	w.idRow = row

	if row == w.idEnd {
		w.advanceNodeType()
	} else {
		w.loadNodeID()
	}
}
