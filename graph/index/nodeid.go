/*
 * Tablegraph
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package index

import (
	"github.com/krotik/tablegraph/graph/data"
	"github.com/krotik/tablegraph/storage/buffer"
	"github.com/krotik/tablegraph/storage/table"
)

/*
NodeIDRowWidth is the width of a node id row (a single tryte).
*/
const NodeIDRowWidth = buffer.SizeTryte

/*
NodeIDTable stores one row per destination node id.
*/
type NodeIDTable struct {
	tab *table.Table
}

/*
NewNodeIDTable creates a new empty NodeIDTable.
*/
func NewNodeIDTable(initCapacity int) *NodeIDTable {
	return &NodeIDTable{table.New(NodeIDRowWidth, initCapacity)}
}

/*
WrapNodeIDTable hosts a NodeIDTable in an existing buffer.
*/
func WrapNodeIDTable(buf *buffer.Buffer, size int) (*NodeIDTable, error) {
	tab, err := table.Wrap(NodeIDRowWidth, buf, size)
	if err != nil {
		return nil, err
	}
	return &NodeIDTable{tab}, nil
}

/*
Table returns the underlying table.
*/
func (t *NodeIDTable) Table() *table.Table {
	return t.tab
}

/*
Size returns the number of rows.
*/
func (t *NodeIDTable) Size() int {
	return t.tab.Size()
}

/*
NodeID returns the node id of a row.
*/
func (t *NodeIDTable) NodeID(row NodeIDRow) data.NodeID {
	return data.NodeID(t.tab.Buffer().GetTryte(t.tab.Offset(int(row))))
}

/*
NodeIDs returns the node ids of a run.
*/
func (t *NodeIDTable) NodeIDs(r NodeIDRange) []data.NodeID {
	res := make([]data.NodeID, r.Count)

	for i := range res {
		res[i] = t.NodeID(r.Start + NodeIDRow(i))
	}

	return res
}

/*
View returns a view on the rows of a run which shares the table's memory.
*/
func (t *NodeIDTable) View(r NodeIDRange) *buffer.Buffer {
	return t.tab.Rows(int(r.Start), int(r.End()))
}

/*
OpenRun appends a row which starts a new run.
*/
func (t *NodeIDTable) OpenRun(id data.NodeID) (NodeIDRow, error) {
	return t.put(id)
}

/*
Append appends a row to the current run. The node id must be greater than the
node id of the last row. On an empty table the row starts the first run.
*/
func (t *NodeIDTable) Append(id data.NodeID) (NodeIDRow, error) {
	if err := checkRunOrder(t.tab, readTryteKey, int64(id), "node id"); err != nil {
		return 0, err
	}
	return t.put(id)
}

func (t *NodeIDTable) put(id data.NodeID) (NodeIDRow, error) {
	if err := buffer.CheckTryte(int(id)); err != nil {
		return 0, err
	}

	row := t.tab.IncrSize()
	t.tab.Buffer().PutTryte(t.tab.Offset(row), int(id))

	return NodeIDRow(row), nil
}

/*
AppendRows copies a run of another table to the end of this table as a new
run. Returns the run in this table.
*/
func (t *NodeIDTable) AppendRows(src *NodeIDTable, r NodeIDRange) (NodeIDRange, error) {
	start := t.tab.Size()

	if err := t.tab.CopyRowRange(src.tab, int(r.Start), int(r.End()), start); err != nil {
		return NodeIDRange{}, err
	}

	return NodeIDRange{NodeIDRow(start), r.Count}, nil
}

/*
Scan looks for a node id in a run with a linear scan. Returns the row of the
node id or, if it was not found, the row of the first greater node id.
*/
func (t *NodeIDTable) Scan(r NodeIDRange, id data.NodeID) (NodeIDRow, bool) {
	row, ok := scanRun(t.tab, readTryteKey, int(r.Start), int(r.End()), int64(id))
	return NodeIDRow(row), ok
}

/*
Search looks for a node id in a run with a binary search.
*/
func (t *NodeIDTable) Search(r NodeIDRange, id data.NodeID) (NodeIDRow, bool) {
	row, ok := searchRun(t.tab, readTryteKey, int(r.Start), int(r.End()), int64(id))
	return NodeIDRow(row), ok
}
