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

import (
	"fmt"

	"github.com/krotik/tablegraph/graph/data"
	"github.com/krotik/tablegraph/graph/index"
	"github.com/krotik/tablegraph/graph/util"
)

/*
Validate checks the tables of the graph. Nodes must be in order, runs must
not be empty, must not overlap and must cover all rows of their table, keys
within a run must be in order and every edge must be stored as outbound and
as inbound entry. Returns an ErrInvalidGraph error if a check fails.
*/
func (g *Graph) Validate() error {
	v := &validator{g: g}

	if err := v.checkNodes(); err != nil {
		return err
	}

	return v.checkSymmetry()
}

/*
validator checks the tables of a graph. It holds the next expected row of
each referenced table.
*/
type validator struct {
	g            *Graph
	nextEdge     index.EdgeRow
	nextNodeType index.NodeTypeRow
	nextNodeID   index.NodeIDRow
}

func (v *validator) invalid(format string, args ...interface{}) error {
	return &util.GraphError{Type: util.ErrInvalidGraph, Detail: fmt.Sprintf(format, args...)}
}

func (v *validator) checkNodes() error {
	g := v.g

	for row := index.AddressRow(0); int(row) < g.addresses.Size(); row++ {
		key := g.addresses.Key(row)

		if row > 0 && g.addresses.Key(row-1).Compare(key) >= 0 {
			return v.invalid("Node %v is out of order", key)
		}

		for _, dir := range data.Directions {
			r := g.addresses.EdgeRange(row, dir)

			if r.Count == 0 {
				continue
			}

			if r.Start != v.nextEdge || int(r.End()) > g.edges.Size() {
				return v.invalid("Unexpected %v edge run %v of node %v", dir, r, key)
			}

			v.nextEdge = r.End()

			if err := v.checkEdgeRun(key, r); err != nil {
				return err
			}
		}
	}

	if int(v.nextEdge) != g.edges.Size() || int(v.nextNodeType) != g.nodeTypes.Size() ||
		int(v.nextNodeID) != g.nodeIDs.Size() {

		return v.invalid("Unreferenced rows (edges: %v/%v node types: %v/%v node ids: %v/%v)",
			v.nextEdge, g.edges.Size(), v.nextNodeType, g.nodeTypes.Size(),
			v.nextNodeID, g.nodeIDs.Size())
	}

	return nil
}

func (v *validator) checkEdgeRun(key data.NodeKey, r index.EdgeRange) error {
	g := v.g

	for row := r.Start; row < r.End(); row++ {
		et := g.edges.EdgeType(row)

		if row > r.Start && g.edges.EdgeType(row-1) >= et {
			return v.invalid("Edge type %v of node %v is out of order", et, key)
		}

		ntr := g.edges.NodeTypeRange(row)

		if ntr.Count == 0 || ntr.Start != v.nextNodeType || int(ntr.End()) > g.nodeTypes.Size() {
			return v.invalid("Unexpected node type run %v of edge type %v of node %v", ntr, et, key)
		}

		v.nextNodeType = ntr.End()

		if err := v.checkNodeTypeRun(key, ntr); err != nil {
			return err
		}
	}

	return nil
}

func (v *validator) checkNodeTypeRun(key data.NodeKey, r index.NodeTypeRange) error {
	g := v.g

	for row := r.Start; row < r.End(); row++ {
		nt := g.nodeTypes.NodeType(row)

		if row > r.Start && g.nodeTypes.NodeType(row-1) >= nt {
			return v.invalid("Node type %v at node %v is out of order", nt, key)
		}

		idr := g.nodeTypes.NodeIDRange(row)

		if idr.Count == 0 || idr.Start != v.nextNodeID || int(idr.End()) > g.nodeIDs.Size() {
			return v.invalid("Unexpected node id run %v of node type %v at node %v", idr, nt, key)
		}

		v.nextNodeID = idr.End()

		for id := idr.Start + 1; id < idr.End(); id++ {
			if g.nodeIDs.NodeID(id-1) >= g.nodeIDs.NodeID(id) {
				return v.invalid("Node id %v of node type %v at node %v is out of order",
					g.nodeIDs.NodeID(id), nt, key)
			}
		}
	}

	return nil
}

/*
checkSymmetry checks that every entry has its counterpart at the node on the
other end of the edge.
*/
func (v *validator) checkSymmetry() error {
	for w := newWalker(v.g); !w.atEnd; w.next() {
		e := w.entry
		counterpart := data.EdgeEntry{Node: e.Other, Dir: e.Dir.Opposite(), Type: e.Type, Other: e.Node}

		if !v.g.containsEntry(counterpart) {
			return v.invalid("Entry %v has no counterpart", e)
		}
	}

	return nil
}
