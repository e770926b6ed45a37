// This file contains thin wrappers around the graph module
// for managing the bracket tree as a graph structure.
package internal

import (
	"cmp"
	"iter"
	"slices"

	"github.com/dominikbraun/graph"
)

type GraphNode interface {
	// A unique ID that is used as the node hash
	Id() int
}

func getNodeId[T GraphNode](node T) int {
	return node.Id()
}

type DependencyGraph[T GraphNode] struct {
	graph.Graph[int, T]
	adjancencyMap  map[int]map[int]graph.Edge[int]
	predecessorMap map[int]map[int]graph.Edge[int]
}

func (g *DependencyGraph[T]) AddEdge(source, target T) error {
	err := g.Graph.AddEdge(source.Id(), target.Id())
	return err
}

func (g *DependencyGraph[T]) BreadthSearchIter(start T) iter.Seq2[T, int] {
	iterator := func(yield func(v T, depth int) bool) {
		visitor := func(key, depth int) bool {
			v, _ := g.Vertex(key)
			return !yield(v, depth)
		}
		graph.BFSWithDepth(g.Graph, start.Id(), visitor)
	}
	return iterator
}

// Returns the nodes that are on the outgoing edges of the given
// source node (the dependants).
func (g *DependencyGraph[T]) GetDependants(source T) []T {
	if g.adjancencyMap == nil {
		// Since the graphs do not change after their initialization
		// the adjacency map is stored on the first call
		g.adjancencyMap, _ = g.Graph.AdjacencyMap()
	}

	return g.vertices(g.adjancencyMap[source.Id()])
}

// Returns the nodes that are on the incoming edges of the given
// target node (the dependencies).
func (g *DependencyGraph[T]) GetDependencies(target T) []T {
	if g.predecessorMap == nil {
		g.predecessorMap, _ = g.Graph.PredecessorMap()
	}

	return g.vertices(g.predecessorMap[target.Id()])
}

func (g *DependencyGraph[T]) vertices(edges map[int]graph.Edge[int]) []T {
	nodes := make([]T, 0, len(edges))
	for k := range edges {
		node, _ := g.Vertex(k)
		nodes = append(nodes, node)
	}
	slices.SortFunc(nodes, func(a, b T) int { return cmp.Compare(a.Id(), b.Id()) })
	return nodes
}

// A BracketEntry is one place in a column of the bracket tree.
type BracketEntry struct {
	// Index of the column. Column 0 holds the original items.
	Column int
	// Position inside the column
	Index int
	// The item at this place or nil while pending
	Item *Item

	id int
}

func (e *BracketEntry) Id() int {
	return e.id
}

func (e *BracketEntry) IsPending() bool {
	return e.Item == nil
}

// The BracketGraph has all entries of a bracket tree as its
// nodes. The directed edges lead from the two entries of a pair
// to the entry that the pair's winner occupies in the next column
// like the lines of a conventional tournament tree.
type BracketGraph struct {
	DependencyGraph[*BracketEntry]
	columns [][]*BracketEntry
}

// Builds the graph of the given bracket tree
func NewBracketGraph(tree *Tree) *BracketGraph {
	g := DependencyGraph[*BracketEntry]{
		Graph: graph.New(getNodeId[*BracketEntry], graph.Directed(), graph.Acyclic()),
	}
	bracketGraph := &BracketGraph{DependencyGraph: g}

	id := 0
	for k, column := range tree.columns {
		entries := make([]*BracketEntry, 0, len(column))
		for i, item := range column {
			entry := &BracketEntry{Column: k, Index: i, Item: item, id: id}
			id += 1
			// The ids are sequential and the edges only lead from
			// one column to the next, so neither call can fail.
			if err := bracketGraph.AddVertex(entry); err != nil {
				panic(err)
			}
			entries = append(entries, entry)

			if k > 0 {
				for _, feeder := range feederIndices(len(tree.columns[k-1]), i) {
					if err := bracketGraph.AddEdge(bracketGraph.columns[k-1][feeder], entry); err != nil {
						panic(err)
					}
				}
			}
		}
		bracketGraph.columns = append(bracketGraph.columns, entries)
	}

	return bracketGraph
}

// Returns the indices in the previous column that feed into
// entry i. A trailing bye only has one feeder.
func feederIndices(prevLen, i int) []int {
	if 2*i+1 < prevLen {
		return []int{2 * i, 2*i + 1}
	}
	return []int{2 * i}
}

// Returns the graph of the tree
func (t *Tree) Graph() *BracketGraph {
	return NewBracketGraph(t)
}

// Returns the entry at index i of column k or nil
func (g *BracketGraph) Entry(k, i int) *BracketEntry {
	if k < 0 || k >= len(g.columns) || i < 0 || i >= len(g.columns[k]) {
		return nil
	}
	return g.columns[k][i]
}

// Returns the entries that the given entry resulted from
// ordered by their position
func (g *BracketGraph) Feeders(entry *BracketEntry) []*BracketEntry {
	return g.GetDependencies(entry)
}

// Returns the entry that the given entry's pair feeds into
// or nil for the last column
func (g *BracketGraph) Next(entry *BracketEntry) *BracketEntry {
	dependants := g.GetDependants(entry)
	if len(dependants) == 0 {
		return nil
	}
	return dependants[0]
}

// Returns the entries that the item occupied on its way
// through the bracket starting with its original place.
// Returns nil when the item is not in the bracket.
//
// The path follows the lines of the tree as long as the item
// stays on them. Rounds after the first are reshuffled so from
// there on the item is looked up in each following column.
func (g *BracketGraph) PathOf(item *Item) []*BracketEntry {
	if len(g.columns) == 0 {
		return nil
	}

	i := slices.IndexFunc(g.columns[0], func(e *BracketEntry) bool { return e.Item.Equal(item) })
	if i < 0 {
		return nil
	}

	path := make([]*BracketEntry, 0, len(g.columns))
	for entry := range g.BreadthSearchIter(g.columns[0][i]) {
		if !entry.Item.Equal(item) {
			break
		}
		path = append(path, entry)
	}

	for k := len(path); k < len(g.columns); k++ {
		i := slices.IndexFunc(g.columns[k], func(e *BracketEntry) bool { return e.Item.Equal(item) })
		if i < 0 {
			break
		}
		path = append(path, g.columns[k][i])
	}

	return path
}
