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
Package data contains the model of a typed directed multigraph.

Nodes are qualified by a NodeType and a NodeID which is an unsigned 24-bit
number. Edges are qualified by an EdgeType and connect a source node to a
destination node. Every edge is stored twice: as an outbound entry at its
source node and as an inbound entry at its destination node. An EdgeEntry
models one of these stored entries.

EdgeEntries are totally ordered by five levels: the node they are stored at,
their direction (outbound before inbound), their edge type, the type of the
node on the other end and finally the id of the node on the other end.
*/
package data

import (
	"fmt"

	"github.com/krotik/tablegraph/storage/buffer"
)

/*
NodeType is the type of a node.
*/
type NodeType int16

/*
EdgeType is the type of an edge.
*/
type EdgeType int16

/*
NodeID is the id of a node within its node type.
*/
type NodeID int

/*
MaxNodeID is the largest possible node id.
*/
const MaxNodeID = buffer.MaxTryte

/*
NewNodeType returns a NodeType for a given value. Values outside the signed
16-bit range return an encoding overflow error.
*/
func NewNodeType(value int) (NodeType, error) {
	if err := buffer.CheckShort(value); err != nil {
		return 0, err
	}
	return NodeType(value), nil
}

/*
NewEdgeType returns an EdgeType for a given value. Values outside the signed
16-bit range return an encoding overflow error.
*/
func NewEdgeType(value int) (EdgeType, error) {
	if err := buffer.CheckShort(value); err != nil {
		return 0, err
	}
	return EdgeType(value), nil
}

/*
NewNodeID returns a NodeID for a given value. Values outside 0..MaxNodeID
return an encoding overflow error.
*/
func NewNodeID(value int) (NodeID, error) {
	if err := buffer.CheckTryte(value); err != nil {
		return 0, err
	}
	return NodeID(value), nil
}

// Node keys
// =========

/*
NodeKey is the qualified key of a node.
*/
type NodeKey struct {
	Type NodeType // Type of the node
	ID   NodeID   // Id of the node
}

/*
NewNodeKey creates a new NodeKey from plain values and checks their ranges.
*/
func NewNodeKey(nodeType int, nodeID int) (NodeKey, error) {
	t, err := NewNodeType(nodeType)
	if err != nil {
		return NodeKey{}, err
	}

	id, err := NewNodeID(nodeID)
	if err != nil {
		return NodeKey{}, err
	}

	return NodeKey{t, id}, nil
}

/*
Compare compares this key with another key. Keys are ordered by type then id.
*/
func (k NodeKey) Compare(other NodeKey) int {
	if k.Type != other.Type {
		return compareInt(int(k.Type), int(other.Type))
	}
	return compareInt(int(k.ID), int(other.ID))
}

/*
Pack encodes this key into a number which sorts in the same order as the key.
*/
func (k NodeKey) Pack() uint64 {
	return uint64(int(k.Type)-buffer.MinShort)<<24 | uint64(k.ID)
}

/*
UnpackNodeKey decodes a key which was encoded with Pack.
*/
func UnpackNodeKey(packed uint64) NodeKey {
	return NodeKey{NodeType(int(packed>>24) + buffer.MinShort), NodeID(packed & MaxNodeID)}
}

/*
String returns a string representation of this key.
*/
func (k NodeKey) String() string {
	return fmt.Sprintf("(%v,%v)", k.Type, k.ID)
}

// Directions
// ==========

/*
Direction is the direction of a stored edge entry relative to the node it is
stored at.
*/
type Direction int

/*
Known directions - outbound sorts before inbound
*/
const (
	Outbound Direction = iota
	Inbound
)

/*
Directions lists all directions in their storage order.
*/
var Directions = []Direction{Outbound, Inbound}

/*
Opposite returns the opposite direction.
*/
func (d Direction) Opposite() Direction {
	if d == Outbound {
		return Inbound
	}
	return Outbound
}

/*
String returns a string representation of this direction.
*/
func (d Direction) String() string {
	if d == Outbound {
		return "out"
	}
	return "in"
}

// Edges
// =====

/*
Edge is a directed typed edge between two nodes.
*/
type Edge struct {
	Src  NodeKey  // Source node
	Type EdgeType // Type of the edge
	Dtn  NodeKey  // Destination node
}

/*
Entries returns the two stored entries of this edge: the outbound entry at the
source node and the inbound entry at the destination node.
*/
func (e Edge) Entries() [2]EdgeEntry {
	return [2]EdgeEntry{
		{e.Src, Outbound, e.Type, e.Dtn},
		{e.Dtn, Inbound, e.Type, e.Src},
	}
}

/*
String returns a string representation of this edge.
*/
func (e Edge) String() string {
	return fmt.Sprintf("%v=%v=>%v", e.Src, e.Type, e.Dtn)
}

// Edge entries
// ============

/*
Level is a level of the total order of edge entries.
*/
type Level int

/*
Levels of the edge entry order from coarsest to finest
*/
const (
	LevelNode Level = iota
	LevelDirection
	LevelEdgeType
	LevelDtnType
	LevelDtnID
	LevelCount
)

var levelNames = []string{"node", "direction", "edge type", "destination type",
	"destination id", "none"}

/*
String returns a string representation of this level.
*/
func (l Level) String() string {
	if l < LevelNode || l > LevelCount {
		return fmt.Sprintf("level %d", int(l))
	}
	return levelNames[l]
}

/*
EdgeEntry is a single stored entry of an edge seen from the node it is stored
at. For outbound entries Node is the source and Other the destination of the
edge. For inbound entries it is the other way around.
*/
type EdgeEntry struct {
	Node  NodeKey   // Node the entry is stored at
	Dir   Direction // Direction of the entry
	Type  EdgeType  // Type of the edge
	Other NodeKey   // Node on the other end of the edge
}

/*
Edge returns the logical edge of this entry.
*/
func (e EdgeEntry) Edge() Edge {
	if e.Dir == Inbound {
		return Edge{e.Other, e.Type, e.Node}
	}
	return Edge{e.Node, e.Type, e.Other}
}

/*
Diff returns the first level at which this entry differs from another entry
together with the comparison result at that level. Equal entries return
LevelCount and 0.
*/
func (e EdgeEntry) Diff(other EdgeEntry) (Level, int) {
	if c := e.Node.Compare(other.Node); c != 0 {
		return LevelNode, c
	}
	if e.Dir != other.Dir {
		return LevelDirection, compareInt(int(e.Dir), int(other.Dir))
	}
	if e.Type != other.Type {
		return LevelEdgeType, compareInt(int(e.Type), int(other.Type))
	}
	if e.Other.Type != other.Other.Type {
		return LevelDtnType, compareInt(int(e.Other.Type), int(other.Other.Type))
	}
	if e.Other.ID != other.Other.ID {
		return LevelDtnID, compareInt(int(e.Other.ID), int(other.Other.ID))
	}
	return LevelCount, 0
}

/*
Compare compares this entry with another entry.
*/
func (e EdgeEntry) Compare(other EdgeEntry) int {
	_, c := e.Diff(other)
	return c
}

/*
String returns a string representation of this entry.
*/
func (e EdgeEntry) String() string {
	return fmt.Sprintf("%v %v =%v=> %v", e.Node, e.Dir, e.Type, e.Other)
}

func compareInt(a int, b int) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
