// Package depgraph builds the declared-dependency graph from installed
// package manifests. Construction runs in three phases against one graph
// value: register a real node per installed manifest, register an implied
// node for every declared version string no real node matches verbatim,
// then link every node to its declared dependencies. Linking must run
// last: it relies on the implied pass having materialized every
// referenced identity.
package depgraph

import (
	"fmt"
	"sort"

	graphlib "github.com/dominikbraun/graph"

	"github.com/depscope/depscope/internal/models"
)

// Edge is one directed inter-dependency edge, identified by node keys.
type Edge struct {
	From string
	To   string
}

// Graph is the completed declared-dependency graph. It is produced by
// Build and is read-only from then on: all mutation happens inside the
// builder, so a Graph in hand is always fully constructed.
type Graph struct {
	g     graphlib.Graph[string, models.DependencyNode]
	nodes map[string]models.DependencyNode
}

func nodeHash(n models.DependencyNode) string {
	return n.Identity.Key()
}

func newGraph() *Graph {
	return &Graph{
		g:     graphlib.New(nodeHash, graphlib.Directed()),
		nodes: make(map[string]models.DependencyNode),
	}
}

func (g *Graph) addNode(n models.DependencyNode) error {
	if err := g.g.AddVertex(n); err != nil {
		return fmt.Errorf("failed to add node %s: %w", n.Identity, err)
	}
	g.nodes[nodeHash(n)] = n
	return nil
}

func (g *Graph) addEdge(from, to models.DependencyIdentity) error {
	if err := g.g.AddEdge(from.Key(), to.Key()); err != nil {
		return fmt.Errorf("failed to link %s -> %s: %w", from, to, err)
	}
	return nil
}

// Node returns the node with the given exact identity.
func (g *Graph) Node(name, version string) (models.DependencyNode, bool) {
	n, ok := g.nodes[models.DependencyIdentity{Name: name, Version: version}.Key()]
	return n, ok
}

// Nodes returns every registered node, real and implied, ordered by key.
func (g *Graph) Nodes() []models.DependencyNode {
	nodes := make([]models.DependencyNode, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodeHash(nodes[i]) < nodeHash(nodes[j])
	})
	return nodes
}

// Aliases returns the version strings registered as real nodes under the
// given dependency name, ordered.
func (g *Graph) Aliases(name string) []string {
	var versions []string
	for _, n := range g.nodes {
		if n.Kind == models.NodeReal && n.Identity.Name == name {
			versions = append(versions, n.Identity.Version)
		}
	}
	sort.Strings(versions)
	return versions
}

// Dependencies returns the nodes the given node declares, ordered by key.
func (g *Graph) Dependencies(name, version string) ([]models.DependencyNode, error) {
	adjacency, err := g.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	key := models.DependencyIdentity{Name: name, Version: version}.Key()
	return g.collect(adjacency[key])
}

// Dependents returns the nodes that declare a dependency on the given
// node, ordered by key.
func (g *Graph) Dependents(name, version string) ([]models.DependencyNode, error) {
	predecessors, err := g.g.PredecessorMap()
	if err != nil {
		return nil, err
	}
	key := models.DependencyIdentity{Name: name, Version: version}.Key()
	return g.collect(predecessors[key])
}

func (g *Graph) collect(neighbors map[string]graphlib.Edge[string]) ([]models.DependencyNode, error) {
	keys := make([]string, 0, len(neighbors))
	for k := range neighbors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nodes := make([]models.DependencyNode, 0, len(keys))
	for _, k := range keys {
		n, ok := g.nodes[k]
		if !ok {
			return nil, fmt.Errorf("edge references unregistered node %s", k)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Edges returns every inter-dependency edge, ordered by source then target.
func (g *Graph) Edges() ([]Edge, error) {
	adjacency, err := g.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	var edges []Edge
	for from, targets := range adjacency {
		for to := range targets {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges, nil
}
