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
Package graph contains an in-memory graph which is encoded in four sorted
tables.

Graph

A Graph is an immutable aggregate of an AddressTable, an EdgeTable, a
NodeTypeTable and a NodeIDTable (see the index package). A graph can be read
with a Cursor which is positioned on a node and answers queries about the
edges of the node. Lookups are nested searches over the tables.

Builder

A Builder collects edges in ordinary maps and writes them in sorted order
into a new Graph. Inserting the same edge twice has no effect.

Merge

Two graphs can be merged into a new graph with Merge. The merge walks both
graphs in lock-step along the total order of edge entries (node, direction,
edge type, destination type, destination id) and writes the union directly
into new tables. The input graphs are never changed. Entries which exist in
both graphs are written once.

Both the builder and the merge write tables through the same writer. The
writer only appends rows and back-patches the count fields of the last row of
a table. Each written entry must be greater than the previous one.

Graphs are not synchronized. A graph can be read by any number of cursors as
long as TrimToFit is not called at the same time.
*/
package graph

import "log"

// Logging
// =======

/*
Logger is a function which processes log messages from the graph code
*/
type Logger func(v ...interface{})

/*
LogInfo is called if an info message is logged in the graph code
*/
var LogInfo = Logger(log.Print)

/*
LogDebug is called if a debug message is logged in the graph code
(by default disabled)
*/
var LogDebug = Logger(LogNull)

/*
LogNull is a discarding logger to be used for disabling loggers
*/
var LogNull = func(v ...interface{}) {
}
