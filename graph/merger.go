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

	"devt.de/krotik/common/stringutil"
	"github.com/krotik/tablegraph/graph/util"
	"github.com/krotik/tablegraph/storage/buffer"
)

/*
Merge merges two graphs into a new graph. A nil graph is treated as an empty
graph. If one graph is empty the other graph is returned. Merging two empty
graphs returns an ErrEmptyMerge error. If the walk over the input graphs finds
entries out of order an ErrCorruptInput error is returned.
*/
func Merge(a *Graph, b *Graph) (*Graph, error) {
	aEmpty := a == nil || a.IsEmpty()
	bEmpty := b == nil || b.IsEmpty()

	if aEmpty && bEmpty {
		return nil, &util.GraphError{Type: util.ErrEmptyMerge}
	} else if bEmpty {
		return a, nil
	} else if aEmpty {
		return b, nil
	}

	return NewMerger(a, b).Merge()
}

/*
Merger merges two non-empty graphs.
*/
type Merger struct {
	a          *Graph // First input graph
	b          *Graph // Second input graph
	duplicates int    // Number of entries which were found in both graphs
}

/*
NewMerger creates a new Merger for two graphs.
*/
func NewMerger(a *Graph, b *Graph) *Merger {
	return &Merger{a: a, b: b}
}

/*
Duplicates returns the number of entries which were found in both graphs
during the last merge.
*/
func (m *Merger) Duplicates() int {
	return m.duplicates
}

/*
Merge walks both graphs in lock-step and writes the union of their entries
into a new graph.
*/
func (m *Merger) Merge() (res *Graph, err error) {

	// Runs which point outside of their table stop the merge

	defer func() {
		if r := recover(); r != nil {
			be, ok := r.(*buffer.Error)
			if !ok {
				panic(r)
			}

			res = nil
			err = &util.GraphError{Type: util.ErrCorruptInput, Detail: be.Error()}
		}
	}()

	m.duplicates = 0

	w := newTableWriter(m.a.addresses.Size()+m.b.addresses.Size(),
		m.a.edges.Size()+m.b.edges.Size(),
		m.a.nodeTypes.Size()+m.b.nodeTypes.Size(),
		m.a.nodeIDs.Size()+m.b.nodeIDs.Size())

	lo, hi := m.sortWalkers(newWalker(m.a), newWalker(m.b))

	for !lo.atEnd {

		if err = w.write(lo.entry); err != nil {
			return nil, util.WrapError(err, util.ErrCorruptInput)
		}

		lo.next()
		lo, hi = m.sortWalkers(lo, hi)
	}

	if err = walkerError(lo, hi); err != nil {
		return nil, err
	}

	res = w.graph()

	LogDebug(fmt.Sprintf("Merged %v and %v edge entries into %v edge entr%v (%v duplicate%v)",
		m.a.EdgeEntryCount(), m.b.EdgeEntryCount(), res.EdgeEntryCount(),
		entryPlural(res.EdgeEntryCount()), m.duplicates, stringutil.Plural(m.duplicates)))

	return res, nil
}

/*
sortWalkers orders two walkers so the first is not greater than the second.
If both are on the same entry the second walker is moved on.
*/
func (m *Merger) sortWalkers(lo *walker, hi *walker) (*walker, *walker) {
	c := lo.compare(hi)

	if c > 0 {
		lo, hi = hi, lo
	} else if c == 0 && !lo.atEnd {
		hi.next()
		m.duplicates++
	}

	return lo, hi
}

func walkerError(walkers ...*walker) error {
	for _, w := range walkers {
		if w.err != nil {
			return w.err
		}
	}
	return nil
}

func entryPlural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
