package manifest

import (
	"fmt"

	"github.com/depscope/depscope/internal/models"
)

// Kind identifies a package-manager convention: where installed
// dependencies live and what each one's manifest file is called.
type Kind string

const (
	KindBower Kind = "bower"
	KindNpm   Kind = "npm"
)

// ParseKind validates a package-manager name. An unrecognized or empty
// value is a configuration error, raised before any I/O happens.
func ParseKind(name string) (Kind, error) {
	switch Kind(name) {
	case KindBower, KindNpm:
		return Kind(name), nil
	default:
		return "", &models.ConfigurationError{
			Reason: fmt.Sprintf("unrecognized package manager %q (expected bower or npm)", name),
		}
	}
}

// ComponentsDir returns the dependency folder name for this kind.
func (k Kind) ComponentsDir() string {
	switch k {
	case KindNpm:
		return "node_modules"
	default:
		return "bower_components"
	}
}

// ManifestFile returns the per-package manifest filename for this kind.
// Bower writes an installation manifest alongside the package's own
// bower.json; that installed copy is the one carrying _release.
func (k Kind) ManifestFile() string {
	switch k {
	case KindNpm:
		return "package.json"
	default:
		return ".bower.json"
	}
}
