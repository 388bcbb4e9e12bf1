/*
 * Tablegraph
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package table

import (
	"errors"
	"fmt"
)

/*
Table related error types
*/
var (
	ErrOutOfOrderInsert = errors.New("Row out of order")
	ErrEmptyTable       = errors.New("Table has no rows")
	ErrRowRange         = errors.New("Invalid row range")
)

/*
Error is a table related error
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
		return fmt.Sprintf("TableError: %v (%v)", e.Type, e.Detail)
	}

	return fmt.Sprintf("TableError: %v", e.Type)
}

/*
IsError returns if a given error is a table error of a given type.
*/
func IsError(err error, errType error) bool {
	te, ok := err.(*Error)
	return ok && te.Type == errType
}
