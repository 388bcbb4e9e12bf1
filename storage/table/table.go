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
Package table contains a growable table of fixed width rows.

Table

A Table is an append-only array of rows of identical width stored in a single
buffer. The number of used rows is the table size, the number of rows which fit
into the buffer is the table capacity. When rows are added beyond the capacity
the buffer is reallocated with at least 1.5 times the previous capacity.
TrimToSize reallocates the buffer so it holds exactly the used rows.

Tables are not synchronized. A table must not be read while it grows or is
trimmed.
*/
package table

import (
	"fmt"

	"github.com/krotik/tablegraph/storage/buffer"
)

/*
Table data structure
*/
type Table struct {
	data     *buffer.Buffer // Buffer holding all rows
	rowWidth int            // Width of a single row in bytes
	size     int            // Number of used rows
}

/*
New creates a new empty Table with a given row width and initial capacity.
*/
func New(rowWidth int, initCapacity int) *Table {
	if rowWidth < 1 || initCapacity < 1 {
		panic(fmt.Sprintf("Invalid table dimensions - row width: %v initial capacity: %v",
			rowWidth, initCapacity))
	}

	return &Table{buffer.NewBuffer(rowWidth * initCapacity), rowWidth, 0}
}

/*
Wrap hosts a table in an existing buffer. The first size rows of the buffer
are considered used.
*/
func Wrap(rowWidth int, data *buffer.Buffer, size int) (*Table, error) {
	if rowWidth < 1 || !data.SizeMultipleOf(rowWidth) || size < 0 ||
		size*rowWidth > data.Size() {

		return nil, &Error{ErrRowRange, fmt.Sprintf("Cannot wrap buffer of size %v "+
			"with row width %v and %v used rows", data.Size(), rowWidth, size)}
	}

	return &Table{data, rowWidth, size}, nil
}

/*
RowWidth returns the width of a single row in bytes.
*/
func (t *Table) RowWidth() int {
	return t.rowWidth
}

/*
Size returns the number of used rows.
*/
func (t *Table) Size() int {
	return t.size
}

/*
LastRow returns the index of the last used row (-1 if the table is empty).
*/
func (t *Table) LastRow() int {
	return t.size - 1
}

/*
IsEmpty returns if the table has no rows.
*/
func (t *Table) IsEmpty() bool {
	return t.size == 0
}

/*
Capacity returns the number of rows which fit into the current buffer.
*/
func (t *Table) Capacity() int {
	return t.data.Size() / t.rowWidth
}

/*
Remaining returns the number of free rows in the current buffer.
*/
func (t *Table) Remaining() int {
	return t.Capacity() - t.size
}

/*
Offset returns the byte offset of a given row.
*/
func (t *Table) Offset(row int) int {
	return row * t.rowWidth
}

/*
Buffer returns the buffer which holds all rows. The buffer may be replaced
once the table grows or is trimmed.
*/
func (t *Table) Buffer() *buffer.Buffer {
	return t.data
}

/*
Rows returns a view on the row range [lo, hi) which shares the table's
memory.
*/
func (t *Table) Rows(lo int, hi int) *buffer.Buffer {
	if lo < 0 || hi < lo || hi > t.size {
		panic(&buffer.Error{Type: buffer.ErrOutOfRange,
			Detail: fmt.Sprintf("Row range [%v, %v) of table with %v rows", lo, hi, t.size)})
	}
	return t.data.Sub(t.Offset(lo), t.Offset(hi))
}

/*
ByteSize returns the number of bytes used by rows.
*/
func (t *Table) ByteSize() int {
	return t.Offset(t.size)
}

/*
UnusedBytes returns the number of allocated bytes which are not used by rows.
*/
func (t *Table) UnusedBytes() int {
	return t.Remaining() * t.rowWidth
}

/*
EnsureCapacity makes sure the table can hold at least a given number of rows.
If the buffer needs to grow it is reallocated to the larger of the requested
capacity and 1.5 times the current capacity.
*/
func (t *Table) EnsureCapacity(capacity int) {
	current := t.Capacity()

	if capacity <= current {
		return
	}

	newCapacity := current * 3 / 2
	if newCapacity < capacity {
		newCapacity = capacity
	}

	t.realloc(newCapacity)
}

/*
EnsureAvailable makes sure there is room for a given number of additional rows.
*/
func (t *Table) EnsureAvailable(rows int) {
	t.EnsureCapacity(t.size + rows)
}

/*
TrimToSize reallocates the buffer so it holds exactly the used rows. The
contents of the table do not change.
*/
func (t *Table) TrimToSize() {
	if t.size == t.Capacity() {
		return
	}
	t.realloc(t.size)
}

func (t *Table) realloc(capacity int) {
	data := buffer.NewBuffer(capacity * t.rowWidth)
	t.data.Sub(0, t.ByteSize()).CopyInto(data, 0)
	t.data = data
}

/*
SetSize sets the number of used rows. The table grows if necessary.
*/
func (t *Table) SetSize(size int) {
	if size < 0 {
		panic(fmt.Sprint("Negative table size: ", size))
	}
	t.EnsureCapacity(size)
	t.size = size
}

/*
IncrSize adds a row to the table and returns its index. The new row has
undefined contents.
*/
func (t *Table) IncrSize() int {
	row := t.size
	t.SetSize(row + 1)
	return row
}

/*
CopyRowRange copies the rows [lo, hi) of a source table into this table
starting at a given row. Both tables must have the same row width and the
destination row must not be past the end of this table. The table grows as
needed.
*/
func (t *Table) CopyRowRange(src *Table, lo int, hi int, dstRow int) error {
	if src.rowWidth != t.rowWidth || lo < 0 || hi < lo || hi > src.size ||
		dstRow < 0 || dstRow > t.size {

		return &Error{ErrRowRange, fmt.Sprintf("Cannot copy rows [%v, %v) of %v to row %v of %v",
			lo, hi, src, dstRow, t)}
	}

	// Take the source view before growing in case both tables are the same

	rows := src.data.Sub(src.Offset(lo), src.Offset(hi))

	end := dstRow + hi - lo
	t.EnsureCapacity(end)
	t.data.PutBuffer(t.Offset(dstRow), rows)

	if end > t.size {
		t.size = end
	}

	return nil
}

/*
String returns a string representation of this table.
*/
func (t *Table) String() string {
	return fmt.Sprintf("Table (width:%v size:%v capacity:%v)", t.rowWidth, t.size, t.Capacity())
}
