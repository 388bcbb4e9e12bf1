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
Package buffer contains a bounds checked byte buffer with fixed width codecs.

Buffer

A Buffer is a boundary of memory which can be read and written with big-endian
encoded values of a fixed width. Next to the usual 8, 16 and 32 bit values the
buffer supports an unsigned 3 byte integer (tryte) which can hold values in the
range 0..16,777,215.

Every access outside of the buffer boundary panics with an ErrOutOfRange error.
Writing a value which does not fit its field panics with an ErrEncodingOverflow
error. Both are programming errors of the caller. Callers which need to validate
values before writing them can use the CheckTryte, CheckShort and
CheckUnsignedShort functions which return the same errors as values.

Sub buffers created with Sub, Slice or Chunk share the memory of their parent.
They never copy and never validate the contents of the region they cover.
*/
package buffer

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/bitutil"
)

/*
Size constants for buffer fields
*/
const (
	SizeByte  = 1
	SizeShort = 2
	SizeTryte = 3
	SizeInt   = 4
)

/*
MaxTryte is the largest value which can be stored in a tryte.
*/
const MaxTryte = 0xFFFFFF

/*
MaxUnsignedShort is the largest value which can be stored in an unsigned short.
*/
const MaxUnsignedShort = 0xFFFF

/*
MinShort is the smallest value which can be stored in a signed short.
*/
const MinShort = -0x8000

/*
MaxShort is the largest value which can be stored in a signed short.
*/
const MaxShort = 0x7FFF

/*
Empty is a buffer without any bytes.
*/
var Empty = &Buffer{data: []byte{}}

/*
Buffer data structure
*/
type Buffer struct {
	data []byte // Memory region of this buffer (capacity is capped at its length)
}

/*
NewBuffer creates a new zeroed Buffer of a given size.
*/
func NewBuffer(size int) *Buffer {
	if size < 0 {
		panic(&Error{ErrOutOfRange, fmt.Sprint("Negative buffer size: ", size)})
	}
	return &Buffer{make([]byte, size)}
}

/*
Wrap creates a new Buffer which uses a given byte slice as its memory.
*/
func Wrap(data []byte) *Buffer {
	return &Buffer{data[:len(data):len(data)]}
}

/*
Size returns the number of bytes in this buffer.
*/
func (b *Buffer) Size() int {
	return len(b.data)
}

/*
IsEmpty returns if this buffer has no bytes.
*/
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

/*
SizeMultipleOf returns if the buffer size is a multiple of a given width.
*/
func (b *Buffer) SizeMultipleOf(width int) bool {
	return width > 0 && len(b.data)%width == 0
}

/*
Bytes returns the memory region of this buffer. The returned slice is not a
copy.
*/
func (b *Buffer) Bytes() []byte {
	return b.data
}

/*
checkBounds panics if count bytes starting at pos are not inside the buffer.
*/
func (b *Buffer) checkBounds(pos int, count int) {
	if pos < 0 || pos+count > len(b.data) {
		panic(&Error{ErrOutOfRange, fmt.Sprintf("Position %v (width %v) in buffer of size %v",
			pos, count, len(b.data))})
	}
}

// Read and Write functions
// ========================

/*
Get reads a byte.
*/
func (b *Buffer) Get(pos int) byte {
	b.checkBounds(pos, SizeByte)
	return b.data[pos]
}

/*
Put writes a byte.
*/
func (b *Buffer) Put(pos int, value byte) {
	b.checkBounds(pos, SizeByte)
	b.data[pos] = value
}

/*
GetShort reads a 16-bit signed integer.
*/
func (b *Buffer) GetShort(pos int) int16 {
	b.checkBounds(pos, SizeShort)
	return (int16(b.data[pos+0]) << 8) |
		(int16(b.data[pos+1]) << 0)
}

/*
PutShort writes a 16-bit signed integer.
*/
func (b *Buffer) PutShort(pos int, value int16) {
	b.checkBounds(pos, SizeShort)
	b.data[pos+0] = byte(value >> 8)
	b.data[pos+1] = byte(value >> 0)
}

/*
GetUnsignedShort reads a 16-bit unsigned integer.
*/
func (b *Buffer) GetUnsignedShort(pos int) int {
	b.checkBounds(pos, SizeShort)
	return (int(b.data[pos+0]) << 8) |
		(int(b.data[pos+1]) << 0)
}

/*
PutUnsignedShort writes a 16-bit unsigned integer. Panics if the value is not
in the range 0..65,535.
*/
func (b *Buffer) PutUnsignedShort(pos int, value int) {
	errorPanic(CheckUnsignedShort(value))
	b.checkBounds(pos, SizeShort)
	b.data[pos+0] = byte(value >> 8)
	b.data[pos+1] = byte(value >> 0)
}

/*
GetTryte reads a 24-bit unsigned integer.
*/
func (b *Buffer) GetTryte(pos int) int {
	b.checkBounds(pos, SizeTryte)
	return (int(b.data[pos+0]) << 16) |
		(int(b.data[pos+1]) << 8) |
		(int(b.data[pos+2]) << 0)
}

/*
PutTryte writes a 24-bit unsigned integer. Panics if the value is not in the
range 0..16,777,215.
*/
func (b *Buffer) PutTryte(pos int, value int) {
	errorPanic(CheckTryte(value))
	b.checkBounds(pos, SizeTryte)
	b.data[pos+0] = byte(value >> 16)
	b.data[pos+1] = byte(value >> 8)
	b.data[pos+2] = byte(value >> 0)
}

/*
GetInt reads a 32-bit signed integer.
*/
func (b *Buffer) GetInt(pos int) int32 {
	b.checkBounds(pos, SizeInt)
	return (int32(b.data[pos+0]) << 24) |
		(int32(b.data[pos+1]) << 16) |
		(int32(b.data[pos+2]) << 8) |
		(int32(b.data[pos+3]) << 0)
}

/*
PutInt writes a 32-bit signed integer.
*/
func (b *Buffer) PutInt(pos int, value int32) {
	b.checkBounds(pos, SizeInt)
	b.data[pos+0] = byte(value >> 24)
	b.data[pos+1] = byte(value >> 16)
	b.data[pos+2] = byte(value >> 8)
	b.data[pos+3] = byte(value >> 0)
}

// Bulk operations
// ===============

/*
PutBuffer copies the contents of another buffer into this buffer starting at
a given position.
*/
func (b *Buffer) PutBuffer(pos int, in *Buffer) {
	if pos < 0 || pos+len(in.data) > len(b.data) {
		panic(&Error{ErrOutOfRange, fmt.Sprintf("Cannot put %v bytes at position %v "+
			"in buffer of size %v", len(in.data), pos, len(b.data))})
	}
	copy(b.data[pos:], in.data)
}

/*
CopyInto copies the contents of this buffer into another buffer starting at
a given position.
*/
func (b *Buffer) CopyInto(out *Buffer, pos int) {
	out.PutBuffer(pos, b)
}

/*
Sub returns a view on the region [start, end) of this buffer. The returned
buffer shares memory with this buffer.
*/
func (b *Buffer) Sub(start int, end int) *Buffer {
	if start < 0 || end < start || end > len(b.data) {
		panic(&Error{ErrOutOfRange, fmt.Sprintf("Sub range [%v, %v) of buffer of size %v",
			start, end, len(b.data))})
	}

	if start == end {
		return Empty
	} else if start == 0 && end == len(b.data) {
		return b
	}

	return &Buffer{b.data[start:end:end]}
}

/*
Slice returns a view on size bytes of this buffer starting at a given position.
*/
func (b *Buffer) Slice(pos int, size int) *Buffer {
	return b.Sub(pos, pos+size)
}

/*
Chunk splits this buffer into views of equal width. The buffer size must be a
multiple of the given width.
*/
func (b *Buffer) Chunk(width int) []*Buffer {
	if !b.SizeMultipleOf(width) {
		panic(&Error{ErrOutOfRange, fmt.Sprintf("Buffer size %v is not a multiple of %v",
			len(b.data), width)})
	}

	count := len(b.data) / width
	chunks := make([]*Buffer, count)

	for i := 0; i < count; i++ {
		off := i * width
		chunks[i] = &Buffer{b.data[off : off+width : off+width]}
	}

	return chunks
}

/*
Compare compares this buffer lexicographically with another buffer. Bytes are
compared as unsigned values. The result is 0 if both are equal, -1 if this
buffer is smaller and +1 if this buffer is greater.
*/
func (b *Buffer) Compare(other *Buffer) int {
	return bytes.Compare(b.data, other.data)
}

/*
Equal returns if this buffer has the same contents as another buffer.
*/
func (b *Buffer) Equal(other *Buffer) bool {
	return bitutil.CompareByteArray(b.data, other.data)
}

/*
String returns a string representation of this buffer.
*/
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer: (len:%v)\n%v", len(b.data), bitutil.HexDump(b.data))
}
