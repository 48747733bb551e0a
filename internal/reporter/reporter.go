package reporter

import (
	"github.com/depscope/depscope/internal/depgraph"
	"github.com/depscope/depscope/internal/imports"
)

// Reporter is the interface for output formatters
type Reporter interface {
	// ReportDependencies renders the declared-dependency graph
	ReportDependencies(g *depgraph.Graph) ([]byte, error)

	// ReportImports renders the import graph
	ReportImports(g *imports.Graph) ([]byte, error)
}

// Get returns a reporter for the specified format
func Get(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	case "dot":
		return &DOTReporter{}
	default:
		return &TerminalReporter{}
	}
}
