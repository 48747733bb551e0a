package models

// VersionUnknown is recorded for manifests that carry none of the
// recognized version fields. Registration still succeeds; a warning is
// logged because downstream version comparisons against this sentinel
// never match a declared range.
const VersionUnknown = "unknown"

// DependencyIdentity is the graph node key. Two identities are equal iff
// both fields match exactly; version strings are opaque (no range semantics).
type DependencyIdentity struct {
	Name    string
	Version string
}

// Key returns the canonical name@version form used as the vertex hash.
func (id DependencyIdentity) Key() string {
	return id.Name + "@" + id.Version
}

// String returns a human-readable representation
func (id DependencyIdentity) String() string {
	return id.Key()
}

// ManifestRecord is one parsed installed-package manifest.
type ManifestRecord struct {
	Name     string            `json:"name"`
	Version  string            `json:"version"`
	Release  string            `json:"_release"`
	Requires map[string]string `json:"dependencies"`
}

// ResolvedVersion scans the recognized version fields in precedence order
// (version, then _release) and returns the first one present, or
// VersionUnknown if the manifest carries neither.
func (m ManifestRecord) ResolvedVersion() string {
	if m.Version != "" {
		return m.Version
	}
	if m.Release != "" {
		return m.Release
	}
	return VersionUnknown
}

// NodeKind discriminates real nodes from implied ones.
type NodeKind string

const (
	// NodeReal is backed by an actually-installed manifest.
	NodeReal NodeKind = "real"
	// NodeImplied represents a declared-but-not-exactly-matched version
	// requirement; it has no manifest of its own.
	NodeImplied NodeKind = "implied"
)

// DependencyNode is a node in the declared-dependency graph. Manifest is
// nil for implied nodes.
type DependencyNode struct {
	Identity DependencyIdentity
	Kind     NodeKind
	Manifest *ManifestRecord
}
