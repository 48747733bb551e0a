package models

// ImportDeclaration is a single resolved reference from a source file to
// another file, extracted from a configured markup tag/attribute. ImportPath
// is always absolute; placeholder substitution and source-root resolution
// have already been applied.
type ImportDeclaration struct {
	ImportPath    string
	TagName       string
	AttributeName string
}

// FileMetadata is the per-file result of one inspection: the file's absolute
// path and its import declarations in document order.
type FileMetadata struct {
	FilePath           string
	ImportDeclarations []ImportDeclaration
}
