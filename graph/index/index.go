/*
 * Tablegraph
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package index contains the four tables which encode a graph.

Tables

AddressTable - One row per node sorted by node key. Each row references the
outbound and the inbound run of the node in the EdgeTable.

EdgeTable - One row per node, direction and edge type. Each row references a
run of destination node types in the NodeTypeTable.

NodeTypeTable - One row per edge table row and destination node type. Each
row references a run of destination node ids in the NodeIDTable.

NodeIDTable - One row per destination node id.

A run is a contiguous row range of a table which is referenced by a start row
and a row count from a row of the table one level up. Rows within a run are
strictly ascending by their key.

Tables are filled in sorted order. OpenRun starts a new run with a row, Append
adds a row to the current run and checks the key order. Only the count fields
of the last row of a table can be changed once the row was appended.

Every table has its own row index type so row numbers of different tables
cannot be mixed up.
*/
package index

import (
	"fmt"
	"sort"

	"github.com/krotik/tablegraph/storage/buffer"
	"github.com/krotik/tablegraph/storage/table"
)

/*
LinearScanThreshold is the largest run length which is searched with a linear
scan. Longer runs are searched with a binary search.
*/
const LinearScanThreshold = 128

/*
DefaultCapacity is the initial row capacity of new tables.
*/
const DefaultCapacity = 16

// Row index types
// ===============

/*
AddressRow is a row index of an AddressTable.
*/
type AddressRow int

/*
EdgeRow is a row index of an EdgeTable.
*/
type EdgeRow int

/*
NodeTypeRow is a row index of a NodeTypeTable.
*/
type NodeTypeRow int

/*
NodeIDRow is a row index of a NodeIDTable.
*/
type NodeIDRow int

/*
EdgeRange is a run of rows in an EdgeTable.
*/
type EdgeRange struct {
	Start EdgeRow // First row of the run
	Count int     // Number of rows in the run
}

/*
End returns the row after the last row of the run.
*/
func (r EdgeRange) End() EdgeRow {
	return r.Start + EdgeRow(r.Count)
}

/*
NodeTypeRange is a run of rows in a NodeTypeTable.
*/
type NodeTypeRange struct {
	Start NodeTypeRow // First row of the run
	Count int         // Number of rows in the run
}

/*
End returns the row after the last row of the run.
*/
func (r NodeTypeRange) End() NodeTypeRow {
	return r.Start + NodeTypeRow(r.Count)
}

/*
NodeIDRange is a run of rows in a NodeIDTable.
*/
type NodeIDRange struct {
	Start NodeIDRow // First row of the run
	Count int       // Number of rows in the run
}

/*
End returns the row after the last row of the run.
*/
func (r NodeIDRange) End() NodeIDRow {
	return r.Start + NodeIDRow(r.Count)
}

// Key search
// ==========

/*
keyReader reads the sort key of the row at a given position of a view.
*/
type keyReader func(view *buffer.Buffer, pos int) int64

func readShortKey(view *buffer.Buffer, pos int) int64 {
	return int64(view.GetShort(pos))
}

func readTryteKey(view *buffer.Buffer, pos int) int64 {
	return int64(view.GetTryte(pos))
}

/*
scanRun looks for a key in the rows [lo, hi) of a table with a linear scan.
Returns the row of the key or, if the key was not found, the row of the first
greater key.
*/
func scanRun(tab *table.Table, read keyReader, lo int, hi int, key int64) (int, bool) {
	buf := tab.Buffer()

	for row := lo; row < hi; row++ {
		if k := read(buf, tab.Offset(row)); k >= key {
			return row, k == key
		}
	}

	return hi, false
}

/*
searchRun looks for a key in the rows [lo, hi) of a table with a binary search
on a view of the rows. Returns the same result as scanRun.
*/
func searchRun(tab *table.Table, read keyReader, lo int, hi int, key int64) (int, bool) {
	view := tab.Rows(lo, hi)
	width := tab.RowWidth()
	count := hi - lo

	i := sort.Search(count, func(i int) bool {
		return read(view, i*width) >= key
	})

	return lo + i, i < count && read(view, i*width) == key
}

/*
findInRun chooses the search strategy for a run by its length.
*/
func findInRun(tab *table.Table, read keyReader, lo int, hi int, key int64) (int, bool) {
	if hi-lo <= LinearScanThreshold {
		return scanRun(tab, read, lo, hi, key)
	}
	return searchRun(tab, read, lo, hi, key)
}

// Append checks
// =============

/*
checkRunOrder checks that a key can be appended to the current run of a table.
The first row of a table has no predecessor and is always accepted.
*/
func checkRunOrder(tab *table.Table, read keyReader, key int64, name string) error {
	if tab.IsEmpty() {
		return nil
	}

	if last := read(tab.Buffer(), tab.Offset(tab.LastRow())); last >= key {
		return &table.Error{Type: table.ErrOutOfOrderInsert,
			Detail: fmt.Sprintf("%v %v after %v %v", name, key, name, last)}
	}

	return nil
}

/*
checkLastRow checks that a table has a row which can be back-patched.
*/
func checkLastRow(tab *table.Table, op string) error {
	if tab.IsEmpty() {
		return &table.Error{Type: table.ErrEmptyTable, Detail: fmt.Sprint("Cannot ", op)}
	}
	return nil
}

/*
incrCount adds a delta to a count and checks the result.
*/
func incrCount(count int, delta int, check func(int) error) (int, error) {
	res := count + delta

	if res < 0 {
		return 0, &table.Error{Type: table.ErrOutOfOrderInsert,
			Detail: fmt.Sprintf("Count %v cannot be decreased by %v", count, -delta)}
	}

	return res, check(res)
}

/*
checkRange checks that the start row and count of a run fit their fields.
*/
func checkRange(start int, count int, checkCount func(int) error) error {
	if err := buffer.CheckTryte(start); err != nil {
		return err
	}
	return checkCount(count)
}
