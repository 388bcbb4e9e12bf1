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

	"devt.de/krotik/common/errorutil"
	"github.com/krotik/tablegraph/graph/data"
	"github.com/krotik/tablegraph/graph/index"
	"github.com/krotik/tablegraph/graph/util"
)

/*
writeOp is an operation on a table which is done when an edge entry is
written.
*/
type writeOp int

/*
Table operations
*/
const (
	opKeep    writeOp = iota // Table is not changed
	opIncr                   // Count of the last row is increased
	opOpenDir                // Next direction run of the last address row is opened
	opAppend                 // Row is appended to the current run
	opOpen                   // Row is appended as start of a new run
)

/*
writePlan holds for each level of the first difference between two written
entries the operations on the address, edge, node type and node id table.
*/
var writePlan = [data.LevelCount][4]writeOp{
	data.LevelNode:      {opOpen, opOpen, opOpen, opOpen},
	data.LevelDirection: {opOpenDir, opOpen, opOpen, opOpen},
	data.LevelEdgeType:  {opIncr, opAppend, opOpen, opOpen},
	data.LevelDtnType:   {opKeep, opIncr, opAppend, opOpen},
	data.LevelDtnID:     {opKeep, opKeep, opIncr, opAppend},
}

/*
tableWriter writes a sorted stream of edge entries into four new tables.
*/
type tableWriter struct {
	addresses *index.AddressTable
	edges     *index.EdgeTable
	nodeTypes *index.NodeTypeTable
	nodeIDs   *index.NodeIDTable
	last      data.EdgeEntry // Last written entry
	count     int            // Number of written entries
}

/*
newTableWriter creates a new tableWriter. The capacities are the expected
number of rows of each table.
*/
func newTableWriter(nodes int, edges int, nodeTypes int, nodeIDs int) *tableWriter {
	capacity := func(c int) int {
		if c < 1 {
			return index.DefaultCapacity
		}
		return c
	}

	return &tableWriter{
		addresses: index.NewAddressTable(capacity(nodes)),
		edges:     index.NewEdgeTable(capacity(edges)),
		nodeTypes: index.NewNodeTypeTable(capacity(nodeTypes)),
		nodeIDs:   index.NewNodeIDTable(capacity(nodeIDs)),
	}
}

/*
write writes an edge entry. The entry must be greater than the last written
entry.
*/
func (w *tableWriter) write(e data.EdgeEntry) error {
	level := data.LevelNode

	if w.count > 0 {
		var c int

		if level, c = e.Diff(w.last); c <= 0 {
			return &util.GraphError{Type: util.ErrCorruptInput,
				Detail: fmt.Sprintf("Entry %v does not follow %v", e, w.last)}
		}
	}

	plan := writePlan[level]

	if err := w.writeAddress(plan[0], e); err != nil {
		return err
	} else if err := w.writeEdge(plan[1], e); err != nil {
		return err
	} else if err := w.writeNodeType(plan[2], e); err != nil {
		return err
	} else if err := w.writeNodeID(plan[3], e); err != nil {
		return err
	}

	w.last = e
	w.count++

	w.assertOpenSegments(e.Dir)

	return nil
}

/*
assertOpenSegments checks that the last run of every table ends at the end of
the next table. Every written entry extends these runs so they must stay open.
*/
func (w *tableWriter) assertOpenSegments(dir data.Direction) {
	addr := w.addresses.EdgeRange(index.AddressRow(w.addresses.Size()-1), dir)
	errorutil.AssertTrue(int(addr.End()) == w.edges.Size(),
		fmt.Sprintf("Edge run %v of last node does not end at %v", addr, w.edges.Size()))

	types := w.edges.NodeTypeRange(index.EdgeRow(w.edges.Size() - 1))
	errorutil.AssertTrue(int(types.End()) == w.nodeTypes.Size(),
		fmt.Sprintf("Node type run %v of last edge does not end at %v", types, w.nodeTypes.Size()))

	ids := w.nodeTypes.NodeIDRange(index.NodeTypeRow(w.nodeTypes.Size() - 1))
	errorutil.AssertTrue(int(ids.End()) == w.nodeIDs.Size(),
		fmt.Sprintf("Node id run %v of last node type does not end at %v", ids, w.nodeIDs.Size()))
}

func (w *tableWriter) writeAddress(op writeOp, e data.EdgeEntry) error {
	r := index.EdgeRange{Start: index.EdgeRow(w.edges.Size()), Count: 1}

	switch op {
	case opOpen:
		addr := index.Address{Out: r, In: index.EdgeRange{Start: r.End()}}
		if e.Dir == data.Inbound {
			addr = index.Address{Out: index.EdgeRange{Start: r.Start}, In: r}
		}
		_, err := w.addresses.Append(e.Node, addr)
		return err

	case opOpenDir:
		return w.addresses.SetLastRange(e.Dir, r)

	case opIncr:
		return w.addresses.IncrLastCount(e.Dir, 1)
	}

	return nil
}

func (w *tableWriter) writeEdge(op writeOp, e data.EdgeEntry) error {
	var err error

	r := index.NodeTypeRange{Start: index.NodeTypeRow(w.nodeTypes.Size()), Count: 1}

	switch op {
	case opOpen:
		_, err = w.edges.OpenRun(e.Type, r)
	case opAppend:
		_, err = w.edges.Append(e.Type, r)
	case opIncr:
		err = w.edges.IncrLastCount(1)
	}

	return err
}

func (w *tableWriter) writeNodeType(op writeOp, e data.EdgeEntry) error {
	var err error

	r := index.NodeIDRange{Start: index.NodeIDRow(w.nodeIDs.Size()), Count: 1}

	switch op {
	case opOpen:
		_, err = w.nodeTypes.OpenRun(e.Other.Type, r)
	case opAppend:
		_, err = w.nodeTypes.Append(e.Other.Type, r)
	case opIncr:
		err = w.nodeTypes.IncrLastCount(1)
	}

	return err
}

func (w *tableWriter) writeNodeID(op writeOp, e data.EdgeEntry) error {
	var err error

	switch op {
	case opOpen:
		_, err = w.nodeIDs.OpenRun(e.Other.ID)
	case opAppend:
		_, err = w.nodeIDs.Append(e.Other.ID)
	}

	return err
}

/*
graph returns the graph of all written entries.
*/
func (w *tableWriter) graph() *Graph {
	return &Graph{w.addresses, w.edges, w.nodeTypes, w.nodeIDs}
}
