package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/depscope/depscope/internal/models"
)

// Reader resolves and parses installed-package manifests for one project
// root and package-manager kind.
type Reader struct {
	root string
	kind Kind
}

// NewReader creates a Reader for the given project root and kind.
func NewReader(projectRoot string, kind Kind) *Reader {
	return &Reader{root: projectRoot, kind: kind}
}

// Path returns the manifest path for one installed dependency.
func (r *Reader) Path(name string) string {
	return filepath.Join(r.root, r.kind.ComponentsDir(), name, r.kind.ManifestFile())
}

// Read loads and parses the manifest of one installed dependency. A missing
// file is a NotFoundError; malformed JSON is a ParseError. Both abort the
// whole construction upstream.
func (r *Reader) Read(ctx context.Context, name string) (models.ManifestRecord, error) {
	var record models.ManifestRecord

	if err := ctx.Err(); err != nil {
		return record, err
	}

	path := r.Path(name)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return record, &models.NotFoundError{Path: path, Err: err}
		}
		return record, err
	}

	if err := json.Unmarshal(content, &record); err != nil {
		return record, &models.ParseError{Path: path, Err: err}
	}

	return record, nil
}
