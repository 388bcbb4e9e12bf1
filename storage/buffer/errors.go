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
	"errors"
	"fmt"
)

/*
Buffer related error types
*/
var (
	ErrOutOfRange       = errors.New("Access outside of buffer")
	ErrEncodingOverflow = errors.New("Value does not fit field width")
)

/*
Error is a buffer related error
*/
type Error struct {
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("BufferError: %v (%v)", e.Type, e.Detail)
	}

	return fmt.Sprintf("BufferError: %v", e.Type)
}

/*
CheckTryte checks that a value can be stored in a tryte field.
*/
func CheckTryte(value int) error {
	if value < 0 || value > MaxTryte {
		return &Error{ErrEncodingOverflow, fmt.Sprintf("tryte: 0x%x (%v)", value, value)}
	}
	return nil
}

/*
CheckUnsignedShort checks that a value can be stored in an unsigned short field.
*/
func CheckUnsignedShort(value int) error {
	if value < 0 || value > MaxUnsignedShort {
		return &Error{ErrEncodingOverflow, fmt.Sprintf("unsigned short: 0x%x (%v)", value, value)}
	}
	return nil
}

/*
CheckShort checks that a value can be stored in a signed short field.
*/
func CheckShort(value int) error {
	if value < MinShort || value > MaxShort {
		return &Error{ErrEncodingOverflow, fmt.Sprintf("short: %v", value)}
	}
	return nil
}

/*
IsError returns if a given error (or recovered panic value) is a buffer error
of a given type.
*/
func IsError(err interface{}, errType error) bool {
	be, ok := err.(*Error)
	return ok && be.Type == errType
}

func errorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
