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
Edge row layout:

	short edgeType, tryte nodeTypeRow, short nodeTypeCount
*/
const (
	edgeOffsetType  = 0
	edgeOffsetRow   = edgeOffsetType + buffer.SizeShort
	edgeOffsetCount = edgeOffsetRow + buffer.SizeTryte

	EdgeRowWidth = edgeOffsetCount + buffer.SizeShort
)

/*
EdgeTable stores one row per node, direction and edge type.
*/
type EdgeTable struct {
	tab *table.Table
}

/*
NewEdgeTable creates a new empty EdgeTable.
*/
func NewEdgeTable(initCapacity int) *EdgeTable {
	return &EdgeTable{table.New(EdgeRowWidth, initCapacity)}
}

/*
WrapEdgeTable hosts an EdgeTable in an existing buffer.
*/
func WrapEdgeTable(buf *buffer.Buffer, size int) (*EdgeTable, error) {
	tab, err := table.Wrap(EdgeRowWidth, buf, size)
	if err != nil {
		return nil, err
	}
	return &EdgeTable{tab}, nil
}

/*
Table returns the underlying table.
*/
func (t *EdgeTable) Table() *table.Table {
	return t.tab
}

/*
Size returns the number of rows.
*/
func (t *EdgeTable) Size() int {
	return t.tab.Size()
}

/*
EdgeType returns the edge type of a row.
*/
func (t *EdgeTable) EdgeType(row EdgeRow) data.EdgeType {
	return data.EdgeType(t.tab.Buffer().GetShort(t.tab.Offset(int(row)) + edgeOffsetType))
}

/*
NodeTypeRange returns the destination node type run of a row.
*/
func (t *EdgeTable) NodeTypeRange(row EdgeRow) NodeTypeRange {
	buf := t.tab.Buffer()
	off := t.tab.Offset(int(row))

	return NodeTypeRange{NodeTypeRow(buf.GetTryte(off + edgeOffsetRow)),
		buf.GetUnsignedShort(off + edgeOffsetCount)}
}

/*
EdgeTypes returns the edge types of a run.
*/
func (t *EdgeTable) EdgeTypes(r EdgeRange) []data.EdgeType {
	res := make([]data.EdgeType, r.Count)

	for i := range res {
		res[i] = t.EdgeType(r.Start + EdgeRow(i))
	}

	return res
}

/*
OpenRun appends a row which starts a new run.
*/
func (t *EdgeTable) OpenRun(et data.EdgeType, r NodeTypeRange) (EdgeRow, error) {
	return t.put(et, r)
}

/*
Append appends a row to the current run. The edge type must be greater than
the edge type of the last row. On an empty table the row starts the first run.
*/
func (t *EdgeTable) Append(et data.EdgeType, r NodeTypeRange) (EdgeRow, error) {
	if err := checkRunOrder(t.tab, readShortKey, int64(et), "edge type"); err != nil {
		return 0, err
	}
	return t.put(et, r)
}

func (t *EdgeTable) put(et data.EdgeType, r NodeTypeRange) (EdgeRow, error) {
	if err := checkRange(int(r.Start), r.Count, buffer.CheckUnsignedShort); err != nil {
		return 0, err
	}

	row := t.tab.IncrSize()
	off := t.tab.Offset(row)

	t.tab.Buffer().PutShort(off+edgeOffsetType, int16(et))
	t.putRange(off, r)

	return EdgeRow(row), nil
}

/*
SetLastRange sets the node type run of the last row.
*/
func (t *EdgeTable) SetLastRange(r NodeTypeRange) error {
	if err := checkLastRow(t.tab, "set edge range"); err != nil {
		return err
	}

	if err := checkRange(int(r.Start), r.Count, buffer.CheckUnsignedShort); err != nil {
		return err
	}

	t.putRange(t.tab.Offset(t.tab.LastRow()), r)

	return nil
}

/*
IncrLastCount changes the node type count of the last row.
*/
func (t *EdgeTable) IncrLastCount(delta int) error {
	if err := checkLastRow(t.tab, "increase edge count"); err != nil {
		return err
	}

	last := EdgeRow(t.tab.LastRow())
	r := t.NodeTypeRange(last)

	count, err := incrCount(r.Count, delta, buffer.CheckUnsignedShort)
	if err == nil {
		r.Count = count
		t.putRange(t.tab.Offset(int(last)), r)
	}

	return err
}

func (t *EdgeTable) putRange(off int, r NodeTypeRange) {
	buf := t.tab.Buffer()
	buf.PutTryte(off+edgeOffsetRow, int(r.Start))
	buf.PutUnsignedShort(off+edgeOffsetCount, r.Count)
}

/*
Scan looks for an edge type in a run with a linear scan. Returns the row of
the edge type or, if it was not found, the row of the first greater edge type.
*/
func (t *EdgeTable) Scan(r EdgeRange, et data.EdgeType) (EdgeRow, bool) {
	row, ok := scanRun(t.tab, readShortKey, int(r.Start), int(r.End()), int64(et))
	return EdgeRow(row), ok
}

/*
Search looks for an edge type in a run with a binary search.
*/
func (t *EdgeTable) Search(r EdgeRange, et data.EdgeType) (EdgeRow, bool) {
	row, ok := searchRun(t.tab, readShortKey, int(r.Start), int(r.End()), int64(et))
	return EdgeRow(row), ok
}

/*
Find looks for an edge type in a run. Runs up to LinearScanThreshold rows are
scanned, longer runs are searched.
*/
func (t *EdgeTable) Find(r EdgeRange, et data.EdgeType) (EdgeRow, bool) {
	row, ok := findInRun(t.tab, readShortKey, int(r.Start), int(r.End()), int64(et))
	return EdgeRow(row), ok
}
