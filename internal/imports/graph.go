package imports

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	graphlib "github.com/dominikbraun/graph"

	"github.com/depscope/depscope/internal/models"
)

// Graph is the completed import graph: one node per file path, one edge
// per import declaration. Produced by BuildGraph and read-only from then
// on. Edges may point at files that were never inspected; a dangling
// import is valid and just means traversal has not reached that node.
type Graph struct {
	g     graphlib.Graph[string, string]
	decls map[string][]models.ImportDeclaration
}

// BuildGraph consumes the inspector's per-file sequence and accumulates
// it into an import graph. The first inspection failure aborts the build
// with no partial graph.
func BuildGraph(files iter.Seq2[models.FileMetadata, error]) (*Graph, error) {
	g := &Graph{
		g:     graphlib.New(graphlib.StringHash, graphlib.Directed()),
		decls: make(map[string][]models.ImportDeclaration),
	}

	for meta, err := range files {
		if err != nil {
			return nil, err
		}
		if err := g.add(meta); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Graph) add(meta models.FileMetadata) error {
	if err := g.addVertex(meta.FilePath); err != nil {
		return err
	}
	if _, ok := g.decls[meta.FilePath]; !ok {
		g.decls[meta.FilePath] = meta.ImportDeclarations
	}

	for _, decl := range meta.ImportDeclarations {
		if err := g.addVertex(decl.ImportPath); err != nil {
			return err
		}
		err := g.g.AddEdge(meta.FilePath, decl.ImportPath)
		if err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
			return fmt.Errorf("failed to link %s -> %s: %w", meta.FilePath, decl.ImportPath, err)
		}
	}
	return nil
}

func (g *Graph) addVertex(path string) error {
	err := g.g.AddVertex(path)
	if err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return fmt.Errorf("failed to add file %s: %w", path, err)
	}
	return nil
}

// Files returns every file path in the graph, inspected or dangling,
// ordered.
func (g *Graph) Files() ([]string, error) {
	adjacency, err := g.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(adjacency))
	for path := range adjacency {
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// Imports returns the import declarations recorded for an inspected file,
// in document order. Dangling files have none.
func (g *Graph) Imports(path string) []models.ImportDeclaration {
	return g.decls[path]
}

// Importers returns the files with an import edge pointing at the given
// path, ordered.
func (g *Graph) Importers(path string) ([]string, error) {
	predecessors, err := g.g.PredecessorMap()
	if err != nil {
		return nil, err
	}
	sources := make([]string, 0, len(predecessors[path]))
	for from := range predecessors[path] {
		sources = append(sources, from)
	}
	sort.Strings(sources)
	return sources, nil
}
