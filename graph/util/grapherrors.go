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
Package util contains utility classes for the graph storage.

GraphError

Models a graph related error. Low-level table and buffer errors are wrapped in
a GraphError before they are returned to a client. Encoding overflows keep the
buffer error type so callers can check for them with IsError.
*/
package util

import (
	"errors"
	"fmt"

	"github.com/krotik/tablegraph/storage/buffer"
)

/*
GraphError is a graph related error
*/
type GraphError struct {
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (ge *GraphError) Error() string {
	if ge.Detail != "" {
		return fmt.Sprintf("GraphError: %v (%v)", ge.Type, ge.Detail)
	}

	return fmt.Sprintf("GraphError: %v", ge.Type)
}

/*
Graph related error types
*/
var (
	ErrEmptyMerge   = errors.New("Cannot merge two empty graphs")
	ErrCorruptInput = errors.New("Corrupt merge input")
	ErrInvalidGraph = errors.New("Invalid graph")
	ErrEmptyBuilder = errors.New("No edges to build")
)

/*
IsError returns if a given error is a graph error of a given type.
*/
func IsError(err error, errType error) bool {
	ge, ok := err.(*GraphError)
	return ok && ge.Type == errType
}

/*
WrapError wraps a low-level error into a GraphError. Encoding overflows keep
their type, all other errors get the given type.
*/
func WrapError(err error, errType error) error {
	if err == nil {
		return nil
	} else if _, ok := err.(*GraphError); ok {
		return err
	} else if buffer.IsError(err, buffer.ErrEncodingOverflow) {
		return &GraphError{buffer.ErrEncodingOverflow, err.Error()}
	}

	return &GraphError{errType, err.Error()}
}
