// Package track builds the overlap graph of resolved features and colours it
// greedily into a bounded number of display tracks.
package track

import (
	"fmt"
	"sort"

	"github.com/biogo/store/interval"
	"github.com/tzok/sgd-annotator/internal/genome"
)

// Node is a feature together with its resolved genome span.
type Node struct {
	Feature *genome.Feature
	Span    genome.Span
}

// Graph is the overlap graph over nodes. Node indices follow discovery order.
type Graph struct {
	Nodes []Node
	adj   [][]int
}

// Neighbours returns the indices of the nodes adjacent to node i, ascending.
func (g *Graph) Neighbours(i int) []int {
	return g.adj[i]
}

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int {
	n := 0
	for _, a := range g.adj {
		n += len(a)
	}
	return n / 2
}

// spanInterval adapts a node's span to the interval tree, which holds
// half-open ranges.
type spanInterval struct {
	uid  uintptr
	span genome.Span
}

// Overlap returns whether b shares at least one base with i.
func (i spanInterval) Overlap(b interval.IntRange) bool {
	return genome.Intersects(i.span, genome.Span{Start: b.Start, End: b.End - 1})
}
func (i spanInterval) ID() uintptr { return i.uid }
func (i spanInterval) Range() interval.IntRange {
	return interval.IntRange{Start: i.span.Start, End: i.span.End + 1}
}

// BuildGraph connects every pair of nodes whose spans overlap per genome.Overlaps.
//
// The tree query returns every span sharing a base with the query, a superset
// of the overlapping ones; candidates are then filtered with the exact predicate.
func BuildGraph(nodes []Node) (*Graph, error) {
	g := &Graph{Nodes: nodes, adj: make([][]int, len(nodes))}

	var tree interval.IntTree
	for i, n := range nodes {
		if err := tree.Insert(spanInterval{uid: uintptr(i), span: n.Span}, true); err != nil {
			return nil, fmt.Errorf("failed to index %s at %s: %v", n.Feature.ID, n.Span, err)
		}
	}
	tree.AdjustRanges()

	for i, n := range nodes {
		for _, hit := range tree.Get(spanInterval{uid: uintptr(i), span: n.Span}) {
			j := int(hit.ID())
			if j == i || !genome.Overlaps(n.Span, nodes[j].Span) {
				continue
			}
			g.adj[i] = append(g.adj[i], j)
		}
		sort.Ints(g.adj[i])
	}

	return g, nil
}
