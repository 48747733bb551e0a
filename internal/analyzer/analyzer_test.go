package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscope/depscope/internal/models"
)

func writeManifest(t *testing.T, root, manager, name, body string) {
	t.Helper()
	var dir, file string
	if manager == "npm" {
		dir, file = "node_modules", "package.json"
	} else {
		dir, file = "bower_components", ".bower.json"
	}
	path := filepath.Join(root, dir, name, file)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestBuildDependencyGraphBower(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "bower", "x-elem",
		`{"name": "x-elem", "version": "1.0.0", "dependencies": {"y-elem": "^2.0.0"}}`)
	writeManifest(t, root, "bower", "y-elem",
		`{"name": "y-elem", "_release": "2.3.1"}`)

	config := models.DefaultConfig()
	config.ProjectRoot = root
	config.PackageManager = "bower"

	graph, err := New(config).BuildDependencyGraph(context.Background())
	require.NoError(t, err)

	nodes := graph.Nodes()
	require.Len(t, nodes, 3)

	implied, ok := graph.Node("y-elem", "^2.0.0")
	require.True(t, ok)
	assert.Equal(t, models.NodeImplied, implied.Kind)

	real, ok := graph.Node("y-elem", "2.3.1")
	require.True(t, ok)
	assert.Equal(t, models.NodeReal, real.Kind)
}

func TestBuildDependencyGraphNpm(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "npm", "left-pad", `{"name": "left-pad", "version": "1.3.0"}`)

	config := models.DefaultConfig()
	config.ProjectRoot = root
	config.PackageManager = "npm"

	graph, err := New(config).BuildDependencyGraph(context.Background())
	require.NoError(t, err)
	_, ok := graph.Node("left-pad", "1.3.0")
	assert.True(t, ok)
}

func TestBuildDependencyGraphUnknownManager(t *testing.T) {
	config := models.DefaultConfig()
	config.ProjectRoot = "/does/not/exist"
	config.PackageManager = "cargo"

	_, err := New(config).BuildDependencyGraph(context.Background())
	require.Error(t, err)
	assert.True(t, models.IsConfiguration(err), "kind validation happens before any I/O")
}

func TestBuildDependencyGraphBadManifestAborts(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "bower", "good", `{"name": "good", "version": "1.0.0"}`)
	writeManifest(t, root, "bower", "bad", `{broken`)

	config := models.DefaultConfig()
	config.ProjectRoot = root
	config.PackageManager = "bower"

	_, err := New(config).BuildDependencyGraph(context.Background())
	require.Error(t, err)
	assert.True(t, models.IsParse(err), "one bad manifest aborts the entire run")
}

func TestBuildImportGraph(t *testing.T) {
	sourceRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(sourceRoot, "index.html"),
		[]byte(`<html><link rel="import" href="widget.html"></html>`), 0644))

	config := models.DefaultConfig()
	config.Inspect.Entry = "index.html"
	config.Inspect.SourceRoot = sourceRoot

	graph, err := New(config).BuildImportGraph()
	require.NoError(t, err)

	files, err := graph.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(sourceRoot, "index.html"),
		filepath.Join(sourceRoot, "widget.html"),
	}, files)
}

func TestBuildImportGraphRequiresEntry(t *testing.T) {
	config := models.DefaultConfig()
	config.Inspect.SourceRoot = t.TempDir()

	_, err := New(config).BuildImportGraph()
	require.Error(t, err)
	assert.True(t, models.IsConfiguration(err))
}

func TestBuildImportGraphMissingEntry(t *testing.T) {
	config := models.DefaultConfig()
	config.Inspect.Entry = "ghost.html"
	config.Inspect.SourceRoot = t.TempDir()

	_, err := New(config).BuildImportGraph()
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}
