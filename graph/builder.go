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

	"devt.de/krotik/common/sortutil"
	"devt.de/krotik/common/stringutil"
	"github.com/krotik/tablegraph/graph/data"
	"github.com/krotik/tablegraph/graph/util"
	"github.com/krotik/tablegraph/storage/buffer"
)

/*
nodeEdges holds the edges of a node per direction. Edge types map to sets of
packed node keys.
*/
type nodeEdges [2]map[data.EdgeType]map[uint64]struct{}

/*
Builder collects edges and builds a Graph from them.
*/
type Builder struct {
	nodes      map[uint64]*nodeEdges // Edges of each node (by packed node key)
	edges      int                   // Number of distinct edges
	inserted   int                   // Number of insert calls
	duplicates int                   // Number of inserts of existing edges
}

/*
NewBuilder creates a new empty Builder.
*/
func NewBuilder() *Builder {
	return &Builder{nodes: make(map[uint64]*nodeEdges)}
}

/*
Insert adds an edge from plain values. Returns if the edge was new. Values
which do not fit the graph encoding return an encoding overflow error.
*/
func (b *Builder) Insert(srcType int, srcID int, edgeType int, dtnType int, dtnID int) (bool, error) {
	src, err := data.NewNodeKey(srcType, srcID)
	if err != nil {
		return false, util.WrapError(err, util.ErrInvalidGraph)
	}

	et, err := data.NewEdgeType(edgeType)
	if err != nil {
		return false, util.WrapError(err, util.ErrInvalidGraph)
	}

	dtn, err := data.NewNodeKey(dtnType, dtnID)
	if err != nil {
		return false, util.WrapError(err, util.ErrInvalidGraph)
	}

	return b.InsertEdge(data.Edge{Src: src, Type: et, Dtn: dtn}), nil
}

/*
InsertEdge adds an edge. Returns if the edge was new.
*/
func (b *Builder) InsertEdge(e data.Edge) bool {
	b.inserted++

	added := false

	for _, entry := range e.Entries() {
		key := entry.Node.Pack()

		ne, ok := b.nodes[key]
		if !ok {
			ne = &nodeEdges{}
			b.nodes[key] = ne
		}

		types := ne[entry.Dir]
		if types == nil {
			types = make(map[data.EdgeType]map[uint64]struct{})
			ne[entry.Dir] = types
		}

		others, ok := types[entry.Type]
		if !ok {
			others = make(map[uint64]struct{})
			types[entry.Type] = others
		}

		other := entry.Other.Pack()

		if _, ok := others[other]; !ok {
			others[other] = struct{}{}
			added = true
		}
	}

	if added {
		b.edges++
	} else {
		b.duplicates++
	}

	return added
}

/*
IsEmpty returns if the builder has no edges.
*/
func (b *Builder) IsEmpty() bool {
	return b.edges == 0
}

/*
EdgeCount returns the number of distinct edges.
*/
func (b *Builder) EdgeCount() int {
	return b.edges
}

/*
Inserted returns the number of insert calls.
*/
func (b *Builder) Inserted() int {
	return b.inserted
}

/*
Duplicates returns the number of inserts of already existing edges.
*/
func (b *Builder) Duplicates() int {
	return b.duplicates
}

/*
Build writes all collected edges into a new Graph. The builder can still be
used afterwards.
*/
func (b *Builder) Build() (*Graph, error) {
	if b.IsEmpty() {
		return nil, &util.GraphError{Type: util.ErrEmptyBuilder}
	}

	nodes := make([]uint64, 0, len(b.nodes))
	for k := range b.nodes {
		nodes = append(nodes, k)
	}
	sortutil.UInt64s(nodes)

	w := newTableWriter(len(nodes), 0, 0, b.edges*2)

	for _, n := range nodes {
		node := data.UnpackNodeKey(n)
		ne := b.nodes[n]

		for _, dir := range data.Directions {

			for _, et := range sortedEdgeTypes(ne[dir]) {

				for _, other := range sortedKeys(ne[dir][et]) {

					e := data.EdgeEntry{Node: node, Dir: dir, Type: et, Other: data.UnpackNodeKey(other)}

					if err := w.write(e); err != nil {
						return nil, util.WrapError(err, util.ErrInvalidGraph)
					}
				}
			}
		}
	}

	g := w.graph()
	g.TrimToFit()

	LogDebug(fmt.Sprintf("Built graph with %v node%v and %v edge%v (%v insert%v, %v duplicate%v)",
		g.NodeCount(), stringutil.Plural(g.NodeCount()), b.edges, stringutil.Plural(b.edges),
		b.inserted, stringutil.Plural(b.inserted), b.duplicates, stringutil.Plural(b.duplicates)))

	return g, nil
}

/*
sortedEdgeTypes returns the keys of an edge type map in ascending order.
*/
func sortedEdgeTypes(types map[data.EdgeType]map[uint64]struct{}) []data.EdgeType {
	keys := make([]uint64, 0, len(types))
	for et := range types {
		keys = append(keys, uint64(int(et)-buffer.MinShort))
	}
	sortutil.UInt64s(keys)

	res := make([]data.EdgeType, len(keys))
	for i, k := range keys {
		res[i] = data.EdgeType(int(k) + buffer.MinShort)
	}

	return res
}

/*
sortedKeys returns the members of a set of packed node keys in ascending order.
*/
func sortedKeys(set map[uint64]struct{}) []uint64 {
	keys := make([]uint64, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sortutil.UInt64s(keys)

	return keys
}
