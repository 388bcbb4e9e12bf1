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
Tablegraph is a command line tool for edge list files. Every file is loaded
into a compact in-memory graph and all graphs are merged into one.

Available commands:

- stats prints statistics of the merged graph.

- query prints all edges of a single node of the merged graph.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/common/stringutil"
	"github.com/krotik/tablegraph/config"
	"github.com/krotik/tablegraph/graph"
	"github.com/krotik/tablegraph/graph/data"
)

/*
Output functions
*/
var print = fmt.Println
var fatal = log.Fatal

func main() {

	// Initialize the default command line parser

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	// Define default usage message

	flag.Usage = func() {

		// Print usage for tool selection

		fmt.Println(fmt.Sprintf("Usage of %s <tool>", os.Args[0]))
		fmt.Println()
		fmt.Println("Tablegraph edge list tool")
		fmt.Println()
		fmt.Println("Available commands:")
		fmt.Println()
		fmt.Println("    stats     Print statistics of merged edge lists")
		fmt.Println("    query     Print the edges of a node of merged edge lists")
		fmt.Println()
		fmt.Println(fmt.Sprintf("Use %s <command> -help for more information about a given command.", os.Args[0]))
		fmt.Println()
	}

	// Parse the command bit

	err := flag.CommandLine.Parse(os.Args[1:])

	if len(flag.Args()) > 0 {

		arg := flag.Args()[0]

		if arg == "stats" || arg == "query" {
			loadConfig()

			if arg == "stats" {
				err = runStatsCommand()
			} else {
				err = runQueryCommand()
			}

			if err != nil {
				fatal(err)
			}

		} else {
			flag.Usage()
		}

	} else if err == nil {

		flag.Usage()
	}
}

/*
loadConfig loads the config file and applies the logging options.
*/
func loadConfig() {
	if err := config.LoadConfigFile(config.DefaultConfigFile); err != nil {
		print("Could not load config file:", err)
		config.LoadDefaultConfig()
	}

	if config.Bool(config.EnableDebugLog) {
		graph.LogDebug = log.Print
	}
}

/*
runStatsCommand parses the options of the stats command.
*/
func runStatsCommand() error {
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Println()
		fmt.Println(fmt.Sprintf("Usage of %s stats [options] <edge files>", os.Args[0]))
		fmt.Println()
		flag.PrintDefaults()
		fmt.Println()
	}

	if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
		return err
	}

	if *showHelp || len(flag.Args()) == 0 {
		flag.Usage()
		return nil
	}

	return Stats(flag.Args())
}

/*
runQueryCommand parses the options of the query command.
*/
func runQueryCommand() error {
	node := flag.String("node", "", "Node to query (type:id)")
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Println()
		fmt.Println(fmt.Sprintf("Usage of %s query -node <type:id> [options] <edge files>", os.Args[0]))
		fmt.Println()
		flag.PrintDefaults()
		fmt.Println()
	}

	if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
		return err
	}

	if *showHelp || *node == "" || len(flag.Args()) == 0 {
		flag.Usage()
		return nil
	}

	return Query(*node, flag.Args())
}

/*
LoadGraph builds a graph from every given edge list file and merges them.
*/
func LoadGraph(files []string) (*graph.Graph, error) {
	var res *graph.Graph

	validate := config.Bool(config.ValidateInput)

	for _, f := range files {
		g, err := loadEdgeFile(f)
		if err != nil {
			return nil, err
		}

		if validate {
			if err := g.Validate(); err != nil {
				return nil, fmt.Errorf("%v: %v", f, err)
			}
		}

		if res == nil {
			res = g
		} else if !res.IsEmpty() || !g.IsEmpty() {
			if res, err = graph.Merge(res, g); err != nil {
				return nil, fmt.Errorf("%v: %v", f, err)
			}
		}
	}

	if res == nil {
		return graph.NewEmptyGraph(), nil
	}

	if validate {
		errorutil.AssertOk(res.Validate())
	}

	if config.Bool(config.TrimAfterMerge) {
		res.TrimToFit()
	}

	return res, nil
}

/*
Stats prints statistics of the merged graph of a list of edge files.
*/
func Stats(files []string) error {
	g, err := LoadGraph(files)
	if err != nil {
		return err
	}

	print(fmt.Sprintf("Loaded %v file%v", len(files), stringutil.Plural(len(files))))
	print(stringutil.PrintStringTable([]string{
		"Nodes", fmt.Sprint(g.NodeCount()),
		"Edges", fmt.Sprint(g.EdgeCount()),
		"Edge entries", fmt.Sprint(g.EdgeEntryCount()),
		"Footprint", fmt.Sprint(g.ByteFootprint()),
		"Unused", fmt.Sprint(g.UnusedBytes()),
		"Edge types per node", fmt.Sprintf("%.2f", g.AvgEdgeTypesPerNode()),
		"Node types per edge type", fmt.Sprintf("%.2f", g.AvgNodeTypesPerEdgeType()),
		"Node ids per node type", fmt.Sprintf("%.2f", g.AvgNodeIDsPerNodeType()),
	}, 2))

	return nil
}

/*
Query prints all edges of a node of the merged graph of a list of edge files.
*/
func Query(node string, files []string) error {
	key, err := parseNodeKey(node)
	if err != nil {
		return err
	}

	g, err := LoadGraph(files)
	if err != nil {
		return err
	}

	c := g.NewCursor()

	if !c.MoveTo(key) {
		print(fmt.Sprintf("Node %v not found", key))
		return nil
	}

	for _, dir := range data.Directions {
		count := c.EdgeCount(dir)

		print(fmt.Sprintf("%v: %v edge%v", dir, count, stringutil.Plural(count)))

		for _, et := range c.EdgeTypes(dir) {
			for _, nt := range c.NodeTypes(dir, et) {
				for _, id := range c.NodeIDs(dir, et, nt) {
					other := data.NodeKey{Type: nt, ID: id}

					if dir == data.Outbound {
						print(data.Edge{Src: key, Type: et, Dtn: other})
					} else {
						print(data.Edge{Src: other, Type: et, Dtn: key})
					}
				}
			}
		}
	}

	return nil
}
