// Package imports statically scans markup files for import references and
// builds the file-to-file import graph. The inspector extracts configured
// tag/attribute values, applies ordered placeholder substitutions, and
// resolves each value against the source root; the graph builder turns the
// per-file metadata into nodes and edges.
package imports

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/depscope/depscope/internal/models"
)

// Inspector produces per-file import metadata for an inspection
// configuration. It holds no state across calls; Files returns a fresh
// lazy sequence each time.
type Inspector struct {
	cfg  models.InspectConfig
	tags map[string]string
}

// NewInspector creates an Inspector. Tag names are matched
// case-insensitively, as the markup parser lowercases element names.
func NewInspector(cfg models.InspectConfig) *Inspector {
	tags := make(map[string]string, len(cfg.Tags))
	for tag, attr := range cfg.Tags {
		tags[strings.ToLower(tag)] = attr
	}
	return &Inspector{cfg: cfg, tags: tags}
}

// EntryPath returns the absolute path of the configured entry file.
func (in *Inspector) EntryPath() string {
	return resolveAgainst(in.cfg.SourceRoot, in.cfg.Entry)
}

// Files returns a lazy sequence of per-file inspection results, starting
// at the entry file. By default only the entry file is yielded; with
// FollowImports enabled, each discovered import that exists on disk is
// inspected in turn, with a visited set keyed by resolved path so cyclic
// imports terminate. A missing entry file fails fast; discovered imports
// that do not exist are skipped and remain dangling in the graph.
func (in *Inspector) Files() iter.Seq2[models.FileMetadata, error] {
	return func(yield func(models.FileMetadata, error) bool) {
		entry := in.EntryPath()

		meta, err := in.InspectFile(entry)
		if !yield(meta, err) || err != nil {
			return
		}
		if !in.cfg.FollowImports {
			return
		}

		visited := map[string]bool{entry: true}
		queue := pendingImports(meta, visited)

		for len(queue) > 0 {
			path := queue[0]
			queue = queue[1:]

			if _, err := os.Stat(path); err != nil {
				continue
			}
			meta, err := in.InspectFile(path)
			if !yield(meta, err) || err != nil {
				return
			}
			queue = append(queue, pendingImports(meta, visited)...)
		}
	}
}

func pendingImports(meta models.FileMetadata, visited map[string]bool) []string {
	var paths []string
	for _, decl := range meta.ImportDeclarations {
		if visited[decl.ImportPath] {
			continue
		}
		visited[decl.ImportPath] = true
		paths = append(paths, decl.ImportPath)
	}
	return paths
}

// InspectFile analyzes a single file: the file must exist (checked before
// any parsing), its markup is parsed, and every configured tag/attribute
// value is substituted and resolved into an ImportDeclaration, in document
// order.
func (in *Inspector) InspectFile(path string) (models.FileMetadata, error) {
	meta := models.FileMetadata{FilePath: path}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return meta, &models.NotFoundError{Path: path, Err: err}
		}
		return meta, err
	}

	root, err := parseMarkup(path, content)
	if err != nil {
		return meta, err
	}

	walkElements(root, func(n *html.Node) {
		attrName, ok := in.tags[n.Data]
		if !ok {
			return
		}
		value := attrValue(n, attrName)
		if value == "" {
			return
		}
		meta.ImportDeclarations = append(meta.ImportDeclarations, models.ImportDeclaration{
			ImportPath:    resolveAgainst(in.cfg.SourceRoot, in.substitute(value)),
			TagName:       n.Data,
			AttributeName: attrName,
		})
	})

	return meta, nil
}

// substitute applies every configured placeholder resolution, in order.
// Multiple placeholders in one value are all applied.
func (in *Inspector) substitute(value string) string {
	for _, res := range in.cfg.Resolutions {
		value = strings.ReplaceAll(value, res.From, res.To)
	}
	return value
}

// resolveAgainst resolves a path against a base directory: an absolute
// path wins as-is, a relative one is joined to the base. Either way the
// result is cleaned.
func resolveAgainst(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
