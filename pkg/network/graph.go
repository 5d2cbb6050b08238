// Package network builds a directed follow graph from parsed document data
// and answers the analytics questions the CLI exposes: influence, activity,
// mutual followers, and follow suggestions.
package network

import (
	"sort"

	"github.com/snxml/snxml/pkg/document"
	"github.com/snxml/snxml/pkg/logging"
)

// Graph is a directed graph of user ids. An edge u→v means u follows v, so
// v's influence is its in-degree and u's activity is its out-degree.
type Graph struct {
	names        map[string]string
	successors   map[string]map[string]struct{}
	predecessors map[string]map[string]struct{}
	order        []string // node ids in insertion order, for stable results
}

// New builds a graph from a node table and edge list. Edge endpoints that
// are not in the node table are added as bare nodes so that references to
// unknown users still participate in degree counting.
func New(nodes map[string]string, edges []document.Edge) *Graph {
	g := &Graph{
		names:        make(map[string]string, len(nodes)),
		successors:   make(map[string]map[string]struct{}),
		predecessors: make(map[string]map[string]struct{}),
	}

	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		g.addNode(id, nodes[id])
	}
	for _, e := range edges {
		g.addNode(e.From, "")
		g.addNode(e.To, "")
		g.successors[e.From][e.To] = struct{}{}
		g.predecessors[e.To][e.From] = struct{}{}
	}

	logger := logging.GetLogger("network")
	logger.Debug().
		Int("nodes", len(g.order)).
		Int("edges", len(edges)).
		Msg("graph built")
	return g
}

// FromDocument builds the graph straight from a parsed document.
func FromDocument(doc *document.Document) *Graph {
	return New(doc.Nodes(), doc.Edges())
}

func (g *Graph) addNode(id, name string) {
	if _, ok := g.successors[id]; !ok {
		g.successors[id] = make(map[string]struct{})
		g.predecessors[id] = make(map[string]struct{})
		g.order = append(g.order, id)
	}
	if name != "" {
		g.names[id] = name
	}
}

// Name returns the display name for id, falling back to the id itself.
func (g *Graph) Name(id string) string {
	if name, ok := g.names[id]; ok {
		return name
	}
	return id
}

// HasNode reports whether id is in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.successors[id]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, succ := range g.successors {
		n += len(succ)
	}
	return n
}

// InDegree returns how many users follow id.
func (g *Graph) InDegree(id string) int {
	return len(g.predecessors[id])
}

// OutDegree returns how many users id follows.
func (g *Graph) OutDegree(id string) int {
	return len(g.successors[id])
}

// Followers returns the ids following id, sorted.
func (g *Graph) Followers(id string) []string {
	return sortedKeys(g.predecessors[id])
}

// Following returns the ids id follows, sorted.
func (g *Graph) Following(id string) []string {
	return sortedKeys(g.successors[id])
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
