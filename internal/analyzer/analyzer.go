// Package analyzer wires the two analysis pipelines together: installed
// manifests into the declared-dependency graph, and entry-file inspection
// into the import graph. The pipelines share no state.
package analyzer

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/depscope/depscope/internal/depgraph"
	"github.com/depscope/depscope/internal/imports"
	"github.com/depscope/depscope/internal/manifest"
	"github.com/depscope/depscope/internal/models"
)

// Analyzer runs analyses for one configuration.
type Analyzer struct {
	config *models.Config
}

// New creates a new Analyzer with the given configuration
func New(config *models.Config) *Analyzer {
	return &Analyzer{config: config}
}

// BuildDependencyGraph enumerates the installed dependencies and builds
// the declared-dependency graph. The package-manager kind is validated
// before any I/O.
func (a *Analyzer) BuildDependencyGraph(ctx context.Context) (*depgraph.Graph, error) {
	kind, err := manifest.ParseKind(a.config.PackageManager)
	if err != nil {
		return nil, err
	}

	names, err := manifest.ListInstalled(a.config.ProjectRoot, kind)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"root":      a.config.ProjectRoot,
		"manager":   string(kind),
		"installed": len(names),
	}).Debug("enumerated installed dependencies")

	graph, err := depgraph.Build(ctx, names, manifest.NewReader(a.config.ProjectRoot, kind))
	if err != nil {
		return nil, err
	}
	log.WithField("nodes", len(graph.Nodes())).Debug("dependency graph ready")
	return graph, nil
}

// BuildImportGraph inspects the configured entry file and builds the
// import graph.
func (a *Analyzer) BuildImportGraph() (*imports.Graph, error) {
	if a.config.Inspect.Entry == "" {
		return nil, &models.ConfigurationError{Reason: "no entry file configured"}
	}
	if a.config.Inspect.SourceRoot == "" {
		return nil, &models.ConfigurationError{Reason: "no source root configured"}
	}

	inspector := imports.NewInspector(a.config.Inspect)
	graph, err := imports.BuildGraph(inspector.Files())
	if err != nil {
		return nil, err
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		files, _ := graph.Files()
		log.WithFields(log.Fields{
			"entry": inspector.EntryPath(),
			"files": len(files),
		}).Debug("import graph ready")
	}
	return graph, nil
}
