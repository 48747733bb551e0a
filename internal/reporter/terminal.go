package reporter

import (
	"fmt"
	"strings"

	"github.com/depscope/depscope/internal/depgraph"
	"github.com/depscope/depscope/internal/imports"
	"github.com/depscope/depscope/internal/manifest"
	"github.com/depscope/depscope/internal/models"
)

// TerminalReporter outputs graphs in a human-readable terminal format
type TerminalReporter struct{}

// ReportDependencies renders the declared-dependency graph as text
func (r *TerminalReporter) ReportDependencies(g *depgraph.Graph) ([]byte, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return []byte("No installed dependencies found.\n"), nil
	}

	implied := 0
	for _, n := range nodes {
		if n.Kind == models.NodeImplied {
			implied++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dependency graph: %d nodes (%d installed, %d implied)\n",
		len(nodes), len(nodes)-implied, implied))
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, n := range nodes {
		if n.Kind == models.NodeImplied {
			sb.WriteString(fmt.Sprintf("📦 %s (implied, wants %s)\n",
				n.Identity, manifest.NormalizeVersion(n.Identity.Version)))
		} else {
			sb.WriteString(fmt.Sprintf("📦 %s\n", n.Identity))
		}

		deps, err := g.Dependencies(n.Identity.Name, n.Identity.Version)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			sb.WriteString(fmt.Sprintf("   └─ %s\n", dep.Identity))
		}

		dependents, err := g.Dependents(n.Identity.Name, n.Identity.Version)
		if err != nil {
			return nil, err
		}
		if len(dependents) > 0 {
			names := make([]string, 0, len(dependents))
			for _, d := range dependents {
				names = append(names, d.Identity.Key())
			}
			sb.WriteString(fmt.Sprintf("   required by: %s\n", strings.Join(names, ", ")))
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// ReportImports renders the import graph as text
func (r *TerminalReporter) ReportImports(g *imports.Graph) ([]byte, error) {
	files, err := g.Files()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return []byte("No files inspected.\n"), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Import graph: %d files\n", len(files)))
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, path := range files {
		decls := g.Imports(path)
		if len(decls) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("📄 %s\n", path))
		for _, decl := range decls {
			sb.WriteString(fmt.Sprintf("   └─ %s (<%s %s>)\n",
				decl.ImportPath, decl.TagName, decl.AttributeName))
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}
