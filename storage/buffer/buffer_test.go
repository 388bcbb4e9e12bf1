/*
 * Tablegraph
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package buffer

import (
	"testing"

	"devt.de/krotik/common/bitutil"
)

func TestBufferInitialisation(t *testing.T) {
	b := NewBuffer(0)

	if out := b.String(); out != "Buffer: (len:0)\n"+
		"====\n"+
		"000000   \n"+
		"====\n" {
		t.Error("Unexpected output of empty buffer:", out)
	}

	if !b.IsEmpty() || b.Size() != 0 {
		t.Error("Unexpected size of empty buffer:", b.Size())
	}

	data := []byte("This is a test")
	b = Wrap(data)

	if b.Size() != 14 {
		t.Error("Unexpected size:", b.Size())
		return
	}

	if !bitutil.CompareByteArray(b.Bytes(), data) {
		t.Error("Unexpected initial data", b.Bytes())
	}

	// Wrapped memory is shared

	b.Put(0, 't')

	if data[0] != 't' {
		t.Error("Wrapped data should have been changed:", string(data))
	}

	testBufferPanic(t, ErrOutOfRange, func() {
		NewBuffer(-1)
	})
}

func TestReadAndWrite(t *testing.T) {
	b := NewBuffer(20)

	b.Put(3, 0x42)
	showRWTestResult(t, b.Bytes()[3] == 0x42, "a byte")
	showRWTestResult(t, b.Get(3) == 0x42, "a byte")

	b.PutShort(0, 0x1234)
	showRWTestResult(t, b.GetShort(0) == 0x1234, "a short")
	showRWTestResult(t, b.Get(0) == 0x12 && b.Get(1) == 0x34, "a big-endian short")
	b.PutShort(0, -0x1234)
	showRWTestResult(t, b.GetShort(0) == -0x1234, "a short")
	b.PutShort(0, -0x8000)
	showRWTestResult(t, b.GetShort(0) == -0x8000, "a short")
	b.PutShort(0, 0x7FFF)
	showRWTestResult(t, b.GetShort(0) == 0x7FFF, "a short")

	b.PutUnsignedShort(0, 0xFFFF)
	showRWTestResult(t, b.GetUnsignedShort(0) == 0xFFFF, "an unsigned short")
	showRWTestResult(t, b.GetShort(0) == -1, "an unsigned short read as short")
	b.PutUnsignedShort(0, 0x1234)
	showRWTestResult(t, b.GetUnsignedShort(0) == 0x1234, "an unsigned short")

	b.PutTryte(5, 0x123456)
	showRWTestResult(t, b.GetTryte(5) == 0x123456, "a tryte")
	showRWTestResult(t, b.Get(5) == 0x12 && b.Get(6) == 0x34 && b.Get(7) == 0x56,
		"a big-endian tryte")
	b.PutTryte(5, MaxTryte)
	showRWTestResult(t, b.GetTryte(5) == MaxTryte, "a tryte")
	b.PutTryte(5, 0)
	showRWTestResult(t, b.GetTryte(5) == 0, "a tryte")

	b.PutInt(16, 0x12345678)
	showRWTestResult(t, b.GetInt(16) == 0x12345678, "an int")
	b.PutInt(16, -0x7FFFFFFF)
	showRWTestResult(t, b.GetInt(16) == -0x7FFFFFFF, "an int")
}

func showRWTestResult(t *testing.T, ok bool, name string) {
	if !ok {
		t.Error("Unexpected result when reading/writing", name)
	}
}

func TestBounds(t *testing.T) {
	b := NewBuffer(6)

	testBufferPanic(t, ErrOutOfRange, func() { b.Get(6) })
	testBufferPanic(t, ErrOutOfRange, func() { b.Get(-1) })
	testBufferPanic(t, ErrOutOfRange, func() { b.Put(6, 1) })
	testBufferPanic(t, ErrOutOfRange, func() { b.GetShort(5) })
	testBufferPanic(t, ErrOutOfRange, func() { b.PutShort(5, 1) })
	testBufferPanic(t, ErrOutOfRange, func() { b.GetTryte(4) })
	testBufferPanic(t, ErrOutOfRange, func() { b.PutTryte(4, 1) })
	testBufferPanic(t, ErrOutOfRange, func() { b.GetInt(3) })
	testBufferPanic(t, ErrOutOfRange, func() { b.PutInt(3, 1) })
	testBufferPanic(t, ErrOutOfRange, func() { b.Sub(2, 7) })
	testBufferPanic(t, ErrOutOfRange, func() { b.Sub(3, 2) })
	testBufferPanic(t, ErrOutOfRange, func() { b.PutBuffer(4, NewBuffer(3)) })

	// Sub buffers have their own boundaries

	sub := b.Sub(1, 4)

	testBufferPanic(t, ErrOutOfRange, func() { sub.Get(3) })
	testBufferPanic(t, ErrOutOfRange, func() { sub.GetTryte(1) })

	// The last valid positions work

	b.PutTryte(3, 7)
	b.PutShort(4, 7)
	b.Put(5, 7)
}

func TestEncodingOverflow(t *testing.T) {
	b := NewBuffer(6)

	testBufferPanic(t, ErrEncodingOverflow, func() { b.PutTryte(0, MaxTryte+1) })
	testBufferPanic(t, ErrEncodingOverflow, func() { b.PutTryte(0, -1) })
	testBufferPanic(t, ErrEncodingOverflow, func() { b.PutUnsignedShort(0, MaxUnsignedShort+1) })
	testBufferPanic(t, ErrEncodingOverflow, func() { b.PutUnsignedShort(0, -1) })

	if err := CheckTryte(MaxTryte); err != nil {
		t.Error(err)
	}

	if err := CheckTryte(MaxTryte + 1); !IsError(err, ErrEncodingOverflow) {
		t.Error("Unexpected result:", err)
		return
	}

	if err := CheckTryte(-1); err.Error() !=
		"BufferError: Value does not fit field width (tryte: 0x-1 (-1))" {
		t.Error("Unexpected result:", err)
		return
	}

	if err := CheckShort(MinShort); err != nil {
		t.Error(err)
	}

	if err := CheckShort(MaxShort + 1); !IsError(err, ErrEncodingOverflow) {
		t.Error("Unexpected result:", err)
	}

	if err := CheckShort(MinShort - 1); !IsError(err, ErrEncodingOverflow) {
		t.Error("Unexpected result:", err)
	}

	if err := CheckUnsignedShort(0x10000); err.Error() !=
		"BufferError: Value does not fit field width (unsigned short: 0x10000 (65536))" {
		t.Error("Unexpected result:", err)
	}

	if err := (&Error{ErrOutOfRange, ""}); err.Error() != "BufferError: Access outside of buffer" {
		t.Error("Unexpected result:", err)
	}
}

func TestSubAndBulk(t *testing.T) {
	b := NewBuffer(9)

	for i := 0; i < 9; i++ {
		b.Put(i, byte(i))
	}

	if b.Sub(0, 9) != b {
		t.Error("Full range sub buffer should be the buffer itself")
	}

	if b.Sub(4, 4) != Empty || b.Slice(2, 0) != Empty {
		t.Error("Empty sub buffer should be the empty buffer")
	}

	sub := b.Slice(3, 3)

	if !bitutil.CompareByteArray(sub.Bytes(), []byte{3, 4, 5}) {
		t.Error("Unexpected sub buffer:", sub.Bytes())
		return
	}

	// Sub buffers share memory

	sub.Put(0, 0x33)

	if b.Get(3) != 0x33 {
		t.Error("Sub buffer should share memory with its parent")
	}

	// Writes in a sub buffer must not leak over its end even with append

	_ = append(sub.Bytes(), 0xFF)

	if b.Get(6) != 6 {
		t.Error("Sub buffer must not expose memory past its end")
	}

	chunks := b.Chunk(3)

	if len(chunks) != 3 || chunks[2].Get(0) != 6 || chunks[1].Get(0) != 0x33 {
		t.Error("Unexpected chunks:", chunks)
		return
	}

	testBufferPanic(t, ErrOutOfRange, func() { b.Chunk(2) })
	testBufferPanic(t, ErrOutOfRange, func() { b.Chunk(0) })

	out := NewBuffer(5)
	sub.CopyInto(out, 2)

	if !bitutil.CompareByteArray(out.Bytes(), []byte{0, 0, 0x33, 4, 5}) {
		t.Error("Unexpected result:", out.Bytes())
	}

	out.PutBuffer(0, Wrap([]byte{9, 8}))

	if !bitutil.CompareByteArray(out.Bytes(), []byte{9, 8, 0x33, 4, 5}) {
		t.Error("Unexpected result:", out.Bytes())
	}
}

func TestCompare(t *testing.T) {
	a := Wrap([]byte{1, 2, 3})
	b := Wrap([]byte{1, 2, 3})
	c := Wrap([]byte{1, 2, 0xFF})
	d := Wrap([]byte{1, 2})

	if a.Compare(b) != 0 || !a.Equal(b) {
		t.Error("Buffers should be equal")
	}

	// Bytes compare unsigned

	if a.Compare(c) != -1 || c.Compare(a) != 1 {
		t.Error("Unexpected comparison result")
	}

	// A prefix is smaller

	if d.Compare(a) != -1 || a.Compare(d) != 1 || a.Equal(d) {
		t.Error("Unexpected comparison result")
	}

	if Empty.Compare(d) != -1 || !Empty.Equal(NewBuffer(0)) {
		t.Error("Unexpected comparison result")
	}
}

func testBufferPanic(t *testing.T, errType error, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Operation did not cause a panic.")
		} else if !IsError(r, errType) {
			t.Error("Unexpected panic:", r)
		}
	}()

	f()
}
