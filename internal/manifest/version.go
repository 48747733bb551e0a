package manifest

import "strings"

// NormalizeVersion strips range operator prefixes like ^, ~, etc.
// Versions stay opaque strings; this is display-level cleanup, not
// range evaluation.
func NormalizeVersion(version string) string {
	version = strings.TrimPrefix(version, "^")
	version = strings.TrimPrefix(version, "~")
	version = strings.TrimPrefix(version, ">=")
	version = strings.TrimPrefix(version, ">")
	version = strings.TrimPrefix(version, "<=")
	version = strings.TrimPrefix(version, "<")
	version = strings.TrimPrefix(version, "=")
	return version
}
