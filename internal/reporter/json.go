package reporter

import (
	"encoding/json"

	"github.com/depscope/depscope/internal/depgraph"
	"github.com/depscope/depscope/internal/imports"
	"github.com/depscope/depscope/internal/models"
)

// JSONReporter outputs graphs in JSON format
type JSONReporter struct{}

// jsonDependencyOutput represents the JSON output structure for the
// dependency graph
type jsonDependencyOutput struct {
	Summary jsonDependencySummary `json:"summary"`
	Nodes   []jsonDependencyNode  `json:"nodes"`
}

type jsonDependencySummary struct {
	TotalNodes int `json:"total_nodes"`
	Installed  int `json:"installed"`
	Implied    int `json:"implied"`
	Edges      int `json:"edges"`
}

type jsonDependencyNode struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Kind         string            `json:"kind"`
	Dependencies []jsonDependency  `json:"dependencies,omitempty"`
	Dependents   []jsonDependency  `json:"dependents,omitempty"`
	Declared     map[string]string `json:"declared,omitempty"`
}

type jsonDependency struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ReportDependencies generates JSON output for the dependency graph
func (r *JSONReporter) ReportDependencies(g *depgraph.Graph) ([]byte, error) {
	nodes := g.Nodes()
	edges, err := g.Edges()
	if err != nil {
		return nil, err
	}

	output := jsonDependencyOutput{
		Summary: jsonDependencySummary{
			TotalNodes: len(nodes),
			Edges:      len(edges),
		},
		Nodes: make([]jsonDependencyNode, 0, len(nodes)),
	}

	for _, n := range nodes {
		if n.Kind == models.NodeImplied {
			output.Summary.Implied++
		} else {
			output.Summary.Installed++
		}

		jn := jsonDependencyNode{
			Name:    n.Identity.Name,
			Version: n.Identity.Version,
			Kind:    string(n.Kind),
		}
		if n.Manifest != nil {
			jn.Declared = n.Manifest.Requires
		}

		deps, err := g.Dependencies(n.Identity.Name, n.Identity.Version)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			jn.Dependencies = append(jn.Dependencies, jsonDependency{
				Name:    dep.Identity.Name,
				Version: dep.Identity.Version,
			})
		}

		dependents, err := g.Dependents(n.Identity.Name, n.Identity.Version)
		if err != nil {
			return nil, err
		}
		for _, dep := range dependents {
			jn.Dependents = append(jn.Dependents, jsonDependency{
				Name:    dep.Identity.Name,
				Version: dep.Identity.Version,
			})
		}

		output.Nodes = append(output.Nodes, jn)
	}

	return json.MarshalIndent(output, "", "  ")
}

// jsonImportOutput represents the JSON output structure for the import
// graph
type jsonImportOutput struct {
	Summary jsonImportSummary `json:"summary"`
	Files   []jsonImportFile  `json:"files"`
}

type jsonImportSummary struct {
	TotalFiles int `json:"total_files"`
	Imports    int `json:"imports"`
}

type jsonImportFile struct {
	Path    string       `json:"path"`
	Imports []jsonImport `json:"imports,omitempty"`
}

type jsonImport struct {
	Path      string `json:"path"`
	Tag       string `json:"tag"`
	Attribute string `json:"attribute"`
}

// ReportImports generates JSON output for the import graph
func (r *JSONReporter) ReportImports(g *imports.Graph) ([]byte, error) {
	files, err := g.Files()
	if err != nil {
		return nil, err
	}

	output := jsonImportOutput{
		Summary: jsonImportSummary{TotalFiles: len(files)},
		Files:   make([]jsonImportFile, 0, len(files)),
	}

	for _, path := range files {
		jf := jsonImportFile{Path: path}
		for _, decl := range g.Imports(path) {
			output.Summary.Imports++
			jf.Imports = append(jf.Imports, jsonImport{
				Path:      decl.ImportPath,
				Tag:       decl.TagName,
				Attribute: decl.AttributeName,
			})
		}
		output.Files = append(output.Files, jf)
	}

	return json.MarshalIndent(output, "", "  ")
}
