package imports

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscope/depscope/internal/models"
)

func metadataSeq(metas ...models.FileMetadata) iter.Seq2[models.FileMetadata, error] {
	return func(yield func(models.FileMetadata, error) bool) {
		for _, meta := range metas {
			if !yield(meta, nil) {
				return
			}
		}
	}
}

func TestBuildGraphDanglingImports(t *testing.T) {
	entry := models.FileMetadata{
		FilePath: "/proj/index.html",
		ImportDeclarations: []models.ImportDeclaration{
			{ImportPath: "/proj/a.html", TagName: "link", AttributeName: "href"},
			{ImportPath: "/proj/b.html", TagName: "script", AttributeName: "src"},
		},
	}

	g, err := BuildGraph(metadataSeq(entry))
	require.NoError(t, err)

	files, err := g.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"/proj/a.html", "/proj/b.html", "/proj/index.html"}, files,
		"dangling targets are valid unvisited nodes")

	assert.Len(t, g.Imports("/proj/index.html"), 2)
	assert.Empty(t, g.Imports("/proj/a.html"))

	importers, err := g.Importers("/proj/a.html")
	require.NoError(t, err)
	assert.Equal(t, []string{"/proj/index.html"}, importers)
}

func TestBuildGraphMultipleFiles(t *testing.T) {
	g, err := BuildGraph(metadataSeq(
		models.FileMetadata{
			FilePath: "/proj/index.html",
			ImportDeclarations: []models.ImportDeclaration{
				{ImportPath: "/proj/shared.html", TagName: "link", AttributeName: "href"},
			},
		},
		models.FileMetadata{
			FilePath: "/proj/other.html",
			ImportDeclarations: []models.ImportDeclaration{
				{ImportPath: "/proj/shared.html", TagName: "link", AttributeName: "href"},
			},
		},
	))
	require.NoError(t, err)

	importers, err := g.Importers("/proj/shared.html")
	require.NoError(t, err)
	assert.Equal(t, []string{"/proj/index.html", "/proj/other.html"}, importers)
}

func TestBuildGraphRepeatedImport(t *testing.T) {
	// The same path imported twice keeps both declarations; the edge set
	// stays deduplicated.
	g, err := BuildGraph(metadataSeq(models.FileMetadata{
		FilePath: "/proj/index.html",
		ImportDeclarations: []models.ImportDeclaration{
			{ImportPath: "/proj/a.html", TagName: "link", AttributeName: "href"},
			{ImportPath: "/proj/a.html", TagName: "script", AttributeName: "src"},
		},
	}))
	require.NoError(t, err)

	assert.Len(t, g.Imports("/proj/index.html"), 2)

	files, err := g.Files()
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestBuildGraphPropagatesInspectionFailure(t *testing.T) {
	boom := &models.NotFoundError{Path: "/proj/index.html"}
	failing := func(yield func(models.FileMetadata, error) bool) {
		yield(models.FileMetadata{}, boom)
	}

	g, err := BuildGraph(failing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom) || models.IsNotFound(err))
	assert.Nil(t, g, "no partial graph on failure")
}
