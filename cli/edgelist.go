/*
 * Tablegraph
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"devt.de/krotik/common/fileutil"
	"github.com/krotik/tablegraph/config"
	"github.com/krotik/tablegraph/graph"
	"github.com/krotik/tablegraph/graph/data"
)

/*
LoadEdgeList reads edges into a builder. Every line holds the values
srcType, srcId, edgeType, dtnType and dtnId separated by sep. Empty lines and
lines starting with comment are ignored. Returns the number of read edges.
*/
func LoadEdgeList(r io.Reader, sep string, comment string, b *graph.Builder) (int, error) {
	var count int

	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())

		if text == "" || (comment != "" && strings.HasPrefix(text, comment)) {
			continue
		}

		fields := strings.Split(text, sep)
		if len(fields) != 5 {
			return count, fmt.Errorf("Line %v: Expected 5 values but found %v", line, len(fields))
		}

		var values [5]int

		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return count, fmt.Errorf("Line %v: Invalid value %q", line, f)
			}
			values[i] = v
		}

		if _, err := b.Insert(values[0], values[1], values[2], values[3], values[4]); err != nil {
			return count, fmt.Errorf("Line %v: %v", line, err)
		}

		count++
	}

	return count, scanner.Err()
}

/*
loadEdgeFile builds a graph from an edge list file.
*/
func loadEdgeFile(filename string) (*graph.Graph, error) {
	ok, err := fileutil.PathExists(filename)
	if err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("Edge file %v does not exist", filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b := graph.NewBuilder()

	if _, err := LoadEdgeList(f, config.Str(config.EdgeFileSeparator),
		config.Str(config.EdgeFileComment), b); err != nil {

		return nil, fmt.Errorf("%v: %v", filename, err)
	}

	if b.IsEmpty() {
		return graph.NewEmptyGraph(), nil
	}

	return b.Build()
}

/*
parseNodeKey parses a node key of the form type:id.
*/
func parseNodeKey(s string) (data.NodeKey, error) {
	parts := strings.Split(s, ":")

	if len(parts) == 2 {
		nt, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		id, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))

		if err1 == nil && err2 == nil {
			return data.NewNodeKey(nt, id)
		}
	}

	return data.NodeKey{}, fmt.Errorf("Invalid node %q - expected type:id", s)
}
