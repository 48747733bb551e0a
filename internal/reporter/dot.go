package reporter

import (
	"fmt"
	"strings"

	"github.com/depscope/depscope/internal/depgraph"
	"github.com/depscope/depscope/internal/imports"
	"github.com/depscope/depscope/internal/models"
)

// DOTReporter outputs graphs in Graphviz DOT format
type DOTReporter struct{}

// ReportDependencies generates DOT output for the dependency graph.
// Implied nodes render dashed so unmatched version requirements stand out.
func (r *DOTReporter) ReportDependencies(g *depgraph.Graph) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	for _, n := range g.Nodes() {
		if n.Kind == models.NodeImplied {
			sb.WriteString(fmt.Sprintf("  %s [style=dashed];\n", quote(n.Identity.Key())))
		} else {
			sb.WriteString(fmt.Sprintf("  %s;\n", quote(n.Identity.Key())))
		}
	}

	edges, err := g.Edges()
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("  %s -> %s;\n", quote(e.From), quote(e.To)))
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

// ReportImports generates DOT output for the import graph
func (r *DOTReporter) ReportImports(g *imports.Graph) ([]byte, error) {
	files, err := g.Files()
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("digraph imports {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=note];\n")

	for _, path := range files {
		sb.WriteString(fmt.Sprintf("  %s;\n", quote(path)))
		for _, decl := range g.Imports(path) {
			sb.WriteString(fmt.Sprintf("  %s -> %s;\n",
				quote(path), quote(decl.ImportPath)))
		}
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
