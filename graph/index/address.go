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
	"fmt"

	"github.com/krotik/tablegraph/graph/data"
	"github.com/krotik/tablegraph/storage/buffer"
	"github.com/krotik/tablegraph/storage/table"
)

/*
Address row layout:

	short type, tryte id, tryte outRow, short outCount, tryte inRow, short inCount
*/
const (
	addrOffsetType     = 0
	addrOffsetID       = addrOffsetType + buffer.SizeShort
	addrOffsetOutRow   = addrOffsetID + buffer.SizeTryte
	addrOffsetOutCount = addrOffsetOutRow + buffer.SizeTryte
	addrOffsetInRow    = addrOffsetOutCount + buffer.SizeShort
	addrOffsetInCount  = addrOffsetInRow + buffer.SizeTryte

	AddressRowWidth = addrOffsetInCount + buffer.SizeShort
)

/*
Address holds the edge runs of a node.
*/
type Address struct {
	Out EdgeRange // Outbound edge types
	In  EdgeRange // Inbound edge types
}

/*
Range returns the edge run of a given direction.
*/
func (a Address) Range(dir data.Direction) EdgeRange {
	if dir == data.Outbound {
		return a.Out
	}
	return a.In
}

/*
IsEmpty returns if the node has no edges.
*/
func (a Address) IsEmpty() bool {
	return a.Out.Count == 0 && a.In.Count == 0
}

/*
AddressTable stores one row per node.
*/
type AddressTable struct {
	tab *table.Table
}

/*
NewAddressTable creates a new empty AddressTable.
*/
func NewAddressTable(initCapacity int) *AddressTable {
	return &AddressTable{table.New(AddressRowWidth, initCapacity)}
}

/*
WrapAddressTable hosts an AddressTable in an existing buffer.
*/
func WrapAddressTable(buf *buffer.Buffer, size int) (*AddressTable, error) {
	tab, err := table.Wrap(AddressRowWidth, buf, size)
	if err != nil {
		return nil, err
	}
	return &AddressTable{tab}, nil
}

/*
Table returns the underlying table.
*/
func (t *AddressTable) Table() *table.Table {
	return t.tab
}

/*
Size returns the number of rows.
*/
func (t *AddressTable) Size() int {
	return t.tab.Size()
}

/*
Key returns the node key of a row.
*/
func (t *AddressTable) Key(row AddressRow) data.NodeKey {
	buf := t.tab.Buffer()
	off := t.tab.Offset(int(row))

	return data.NodeKey{
		Type: data.NodeType(buf.GetShort(off + addrOffsetType)),
		ID:   data.NodeID(buf.GetTryte(off + addrOffsetID)),
	}
}

/*
EdgeRange returns the edge run of a row for a given direction.
*/
func (t *AddressTable) EdgeRange(row AddressRow, dir data.Direction) EdgeRange {
	buf := t.tab.Buffer()
	off := t.tab.Offset(int(row))

	if dir == data.Outbound {
		return EdgeRange{EdgeRow(buf.GetTryte(off + addrOffsetOutRow)),
			buf.GetUnsignedShort(off + addrOffsetOutCount)}
	}

	return EdgeRange{EdgeRow(buf.GetTryte(off + addrOffsetInRow)),
		buf.GetUnsignedShort(off + addrOffsetInCount)}
}

/*
Address returns both edge runs of a row.
*/
func (t *AddressTable) Address(row AddressRow) Address {
	return Address{t.EdgeRange(row, data.Outbound), t.EdgeRange(row, data.Inbound)}
}

/*
Append adds a node to the table. Nodes must be appended in strictly ascending
order.
*/
func (t *AddressTable) Append(key data.NodeKey, addr Address) (AddressRow, error) {
	if !t.tab.IsEmpty() {
		if last := t.Key(AddressRow(t.tab.LastRow())); last.Compare(key) >= 0 {
			return 0, &table.Error{Type: table.ErrOutOfOrderInsert,
				Detail: fmt.Sprintf("Node %v after node %v", key, last)}
		}
	}

	if err := buffer.CheckShort(int(key.Type)); err != nil {
		return 0, err
	} else if err := buffer.CheckTryte(int(key.ID)); err != nil {
		return 0, err
	}

	for _, dir := range data.Directions {
		r := addr.Range(dir)
		if err := checkRange(int(r.Start), r.Count, buffer.CheckUnsignedShort); err != nil {
			return 0, err
		}
	}

	row := t.tab.IncrSize()
	buf := t.tab.Buffer()
	off := t.tab.Offset(row)

	buf.PutShort(off+addrOffsetType, int16(key.Type))
	buf.PutTryte(off+addrOffsetID, int(key.ID))
	t.putRange(off, data.Outbound, addr.Out)
	t.putRange(off, data.Inbound, addr.In)

	return AddressRow(row), nil
}

/*
SetLastRange sets an edge run of the last row. The outbound run cannot be set
once the inbound run has entries.
*/
func (t *AddressTable) SetLastRange(dir data.Direction, r EdgeRange) error {
	if err := t.checkLastDirection(dir, "set address range"); err != nil {
		return err
	}

	if err := checkRange(int(r.Start), r.Count, buffer.CheckUnsignedShort); err != nil {
		return err
	}

	t.putRange(t.tab.Offset(t.tab.LastRow()), dir, r)

	return nil
}

/*
IncrLastCount changes the count of an edge run of the last row. The outbound
count cannot be changed once the inbound run has entries.
*/
func (t *AddressTable) IncrLastCount(dir data.Direction, delta int) error {
	if err := t.checkLastDirection(dir, "increase address count"); err != nil {
		return err
	}

	last := AddressRow(t.tab.LastRow())
	r := t.EdgeRange(last, dir)

	count, err := incrCount(r.Count, delta, buffer.CheckUnsignedShort)
	if err == nil {
		r.Count = count
		t.putRange(t.tab.Offset(int(last)), dir, r)
	}

	return err
}

func (t *AddressTable) checkLastDirection(dir data.Direction, op string) error {
	if err := checkLastRow(t.tab, op); err != nil {
		return err
	}

	if last := AddressRow(t.tab.LastRow()); dir == data.Outbound &&
		t.EdgeRange(last, data.Inbound).Count > 0 {

		return &table.Error{Type: table.ErrOutOfOrderInsert,
			Detail: fmt.Sprintf("Outbound edges of node %v after inbound edges", t.Key(last))}
	}

	return nil
}

func (t *AddressTable) putRange(off int, dir data.Direction, r EdgeRange) {
	buf := t.tab.Buffer()

	if dir == data.Outbound {
		buf.PutTryte(off+addrOffsetOutRow, int(r.Start))
		buf.PutUnsignedShort(off+addrOffsetOutCount, r.Count)
	} else {
		buf.PutTryte(off+addrOffsetInRow, int(r.Start))
		buf.PutUnsignedShort(off+addrOffsetInCount, r.Count)
	}
}

// Lookup
// ======

func readNodeKey(view *buffer.Buffer, pos int) int64 {
	return int64(data.NodeKey{
		Type: data.NodeType(view.GetShort(pos + addrOffsetType)),
		ID:   data.NodeID(view.GetTryte(pos + addrOffsetID)),
	}.Pack())
}

/*
SearchRange looks for a node in the rows [lo, hi) with a binary search.
Returns the row of the node or, if the node was not found, the row of the
first greater node.
*/
func (t *AddressTable) SearchRange(lo AddressRow, hi AddressRow, key data.NodeKey) (AddressRow, bool) {
	row, ok := searchRun(t.tab, readNodeKey, int(lo), int(hi), int64(key.Pack()))
	return AddressRow(row), ok
}

/*
Search looks for a node in the whole table.
*/
func (t *AddressTable) Search(key data.NodeKey) (AddressRow, bool) {
	return t.SearchRange(0, AddressRow(t.tab.Size()), key)
}

/*
FindAddress returns the edge runs of a node.
*/
func (t *AddressTable) FindAddress(key data.NodeKey) (Address, bool) {
	if row, ok := t.Search(key); ok {
		return t.Address(row), true
	}
	return Address{}, false
}

/*
Keys returns the keys of all nodes in table order.
*/
func (t *AddressTable) Keys() []data.NodeKey {
	keys := make([]data.NodeKey, t.tab.Size())

	for i := range keys {
		keys[i] = t.Key(AddressRow(i))
	}

	return keys
}
