package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/depscope/depscope/internal/models"
)

// visibleName matches entries whose names begin with a word character,
// filtering dotfiles and other hidden entries out of the listing.
var visibleName = regexp.MustCompile(`^\w`)

// ListInstalled enumerates the installed dependency names under the
// project's dependency folder: immediate subdirectories only, hidden
// entries excluded, in lexical order.
func ListInstalled(projectRoot string, kind Kind) ([]string, error) {
	dir := filepath.Join(projectRoot, kind.ComponentsDir())

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &models.NotFoundError{Path: dir, Err: err}
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if !visibleName.MatchString(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}
