/*
 * Tablegraph
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import "github.com/krotik/tablegraph/graph/data"

/*
EmptyCursor is the cursor of a graph without nodes. It can never be
positioned.
*/
var EmptyCursor Cursor = &emptyCursor{}

type emptyCursor struct {
}

func (c *emptyCursor) MoveTo(node data.NodeKey) bool {
	return false
}

func (c *emptyCursor) Position() (data.NodeKey, bool) {
	return data.NodeKey{}, false
}

func (c *emptyCursor) IsEmpty() bool {
	return true
}

func (c *emptyCursor) Nodes() []data.NodeKey {
	return []data.NodeKey{}
}

func (c *emptyCursor) EdgeTypes(dir data.Direction) []data.EdgeType {
	return []data.EdgeType{}
}

func (c *emptyCursor) EdgeCount(dir data.Direction) int {
	return 0
}

func (c *emptyCursor) EdgeTypeCount(dir data.Direction, et data.EdgeType) int {
	return 0
}

func (c *emptyCursor) NodeTypes(dir data.Direction, et data.EdgeType) []data.NodeType {
	return []data.NodeType{}
}

func (c *emptyCursor) NodeTypeCount(dir data.Direction, et data.EdgeType, nt data.NodeType) int {
	return 0
}

func (c *emptyCursor) NodeIDs(dir data.Direction, et data.EdgeType, nt data.NodeType) []data.NodeID {
	return []data.NodeID{}
}
