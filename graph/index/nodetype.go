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
Node type row layout:

	short nodeType, tryte nodeIdRow, tryte nodeIdCount
*/
const (
	nodeTypeOffsetType  = 0
	nodeTypeOffsetRow   = nodeTypeOffsetType + buffer.SizeShort
	nodeTypeOffsetCount = nodeTypeOffsetRow + buffer.SizeTryte

	NodeTypeRowWidth = nodeTypeOffsetCount + buffer.SizeTryte
)

/*
NodeTypeTable stores one row per edge table row and destination node type.
*/
type NodeTypeTable struct {
	tab *table.Table
}

/*
NewNodeTypeTable creates a new empty NodeTypeTable.
*/
func NewNodeTypeTable(initCapacity int) *NodeTypeTable {
	return &NodeTypeTable{table.New(NodeTypeRowWidth, initCapacity)}
}

/*
WrapNodeTypeTable hosts a NodeTypeTable in an existing buffer.
*/
func WrapNodeTypeTable(buf *buffer.Buffer, size int) (*NodeTypeTable, error) {
	tab, err := table.Wrap(NodeTypeRowWidth, buf, size)
	if err != nil {
		return nil, err
	}
	return &NodeTypeTable{tab}, nil
}

/*
Table returns the underlying table.
*/
func (t *NodeTypeTable) Table() *table.Table {
	return t.tab
}

/*
Size returns the number of rows.
*/
func (t *NodeTypeTable) Size() int {
	return t.tab.Size()
}

/*
NodeType returns the destination node type of a row.
*/
func (t *NodeTypeTable) NodeType(row NodeTypeRow) data.NodeType {
	return data.NodeType(t.tab.Buffer().GetShort(t.tab.Offset(int(row)) + nodeTypeOffsetType))
}

/*
NodeIDRange returns the destination node id run of a row.
*/
func (t *NodeTypeTable) NodeIDRange(row NodeTypeRow) NodeIDRange {
	buf := t.tab.Buffer()
	off := t.tab.Offset(int(row))

	return NodeIDRange{NodeIDRow(buf.GetTryte(off + nodeTypeOffsetRow)),
		buf.GetTryte(off + nodeTypeOffsetCount)}
}

/*
NodeTypes returns the destination node types of a run.
*/
func (t *NodeTypeTable) NodeTypes(r NodeTypeRange) []data.NodeType {
	res := make([]data.NodeType, r.Count)

	for i := range res {
		res[i] = t.NodeType(r.Start + NodeTypeRow(i))
	}

	return res
}

/*
CountIDs returns the number of destination node ids of all rows of a run.
*/
func (t *NodeTypeTable) CountIDs(r NodeTypeRange) int {
	var count int

	for row := r.Start; row < r.End(); row++ {
		count += t.NodeIDRange(row).Count
	}

	return count
}

/*
OpenRun appends a row which starts a new run.
*/
func (t *NodeTypeTable) OpenRun(nt data.NodeType, r NodeIDRange) (NodeTypeRow, error) {
	return t.put(nt, r)
}

/*
Append appends a row to the current run. The node type must be greater than
the node type of the last row. On an empty table the row starts the first run.
*/
func (t *NodeTypeTable) Append(nt data.NodeType, r NodeIDRange) (NodeTypeRow, error) {
	if err := checkRunOrder(t.tab, readShortKey, int64(nt), "node type"); err != nil {
		return 0, err
	}
	return t.put(nt, r)
}

func (t *NodeTypeTable) put(nt data.NodeType, r NodeIDRange) (NodeTypeRow, error) {
	if err := checkRange(int(r.Start), r.Count, buffer.CheckTryte); err != nil {
		return 0, err
	}

	row := t.tab.IncrSize()
	off := t.tab.Offset(row)

	t.tab.Buffer().PutShort(off+nodeTypeOffsetType, int16(nt))
	t.putRange(off, r)

	return NodeTypeRow(row), nil
}

/*
SetLastRange sets the node id run of the last row.
*/
func (t *NodeTypeTable) SetLastRange(r NodeIDRange) error {
	if err := checkLastRow(t.tab, "set node type range"); err != nil {
		return err
	}

	if err := checkRange(int(r.Start), r.Count, buffer.CheckTryte); err != nil {
		return err
	}

	t.putRange(t.tab.Offset(t.tab.LastRow()), r)

	return nil
}

/*
IncrLastCount changes the node id count of the last row.
*/
func (t *NodeTypeTable) IncrLastCount(delta int) error {
	if err := checkLastRow(t.tab, "increase node type count"); err != nil {
		return err
	}

	last := NodeTypeRow(t.tab.LastRow())
	r := t.NodeIDRange(last)

	count, err := incrCount(r.Count, delta, buffer.CheckTryte)
	if err == nil {
		r.Count = count
		t.putRange(t.tab.Offset(int(last)), r)
	}

	return err
}

func (t *NodeTypeTable) putRange(off int, r NodeIDRange) {
	buf := t.tab.Buffer()
	buf.PutTryte(off+nodeTypeOffsetRow, int(r.Start))
	buf.PutTryte(off+nodeTypeOffsetCount, r.Count)
}

/*
Scan looks for a node type in a run with a linear scan. Returns the row of the
node type or, if it was not found, the row of the first greater node type.
*/
func (t *NodeTypeTable) Scan(r NodeTypeRange, nt data.NodeType) (NodeTypeRow, bool) {
	row, ok := scanRun(t.tab, readShortKey, int(r.Start), int(r.End()), int64(nt))
	return NodeTypeRow(row), ok
}

/*
Search looks for a node type in a run with a binary search.
*/
func (t *NodeTypeTable) Search(r NodeTypeRange, nt data.NodeType) (NodeTypeRow, bool) {
	row, ok := searchRun(t.tab, readShortKey, int(r.Start), int(r.End()), int64(nt))
	return NodeTypeRow(row), ok
}

/*
Find looks for a node type in a run. Runs up to LinearScanThreshold rows are
scanned, longer runs are searched.
*/
func (t *NodeTypeTable) Find(r NodeTypeRange, nt data.NodeType) (NodeTypeRow, bool) {
	row, ok := findInRun(t.tab, readShortKey, int(r.Start), int(r.End()), int64(nt))
	return NodeTypeRow(row), ok
}
