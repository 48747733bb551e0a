package models

import "github.com/BurntSushi/toml"

// Resolution is one ordered placeholder substitution: every occurrence of
// From in a raw attribute value is replaced with To before path resolution.
type Resolution struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// InspectConfig configures the source import inspection pipeline.
type InspectConfig struct {
	// Entry is the entry file path, relative to SourceRoot.
	Entry string `toml:"entry"`

	// SourceRoot is the absolute base directory against which substituted
	// import paths are resolved.
	SourceRoot string `toml:"source_root"`

	// Resolutions are applied to every matched attribute value, in order.
	Resolutions []Resolution `toml:"resolutions"`

	// Tags maps a tag name to the attribute carrying its import path,
	// e.g. {"link": "href", "script": "src"}.
	Tags map[string]string `toml:"tags"`

	// FollowImports enables transitive traversal of discovered imports.
	// The default inspects the entry file only.
	FollowImports bool `toml:"follow_imports"`
}

// Config holds configuration for one analysis run
type Config struct {
	// Dependency graph settings
	ProjectRoot    string
	PackageManager string // "bower" or "npm"

	// Import graph settings
	Inspect InspectConfig

	// Output settings
	OutputFormat string // "terminal", "json", "dot"
	OutputFile   string // Optional output file path
}

// fileConfig is the on-disk TOML shape of a Config.
type fileConfig struct {
	ProjectRoot    string        `toml:"project_root"`
	PackageManager string        `toml:"package_manager"`
	Imports        InspectConfig `toml:"imports"`
}

// LoadFile overlays settings from a TOML configuration file. Flags set on
// the command line take precedence, so only fields the file actually sets
// are applied.
func (c *Config) LoadFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return &ParseError{Path: path, Err: err}
	}

	if fc.ProjectRoot != "" {
		c.ProjectRoot = fc.ProjectRoot
	}
	if fc.PackageManager != "" {
		c.PackageManager = fc.PackageManager
	}
	if fc.Imports.Entry != "" {
		c.Inspect.Entry = fc.Imports.Entry
	}
	if fc.Imports.SourceRoot != "" {
		c.Inspect.SourceRoot = fc.Imports.SourceRoot
	}
	if len(fc.Imports.Resolutions) > 0 {
		c.Inspect.Resolutions = fc.Imports.Resolutions
	}
	if len(fc.Imports.Tags) > 0 {
		c.Inspect.Tags = fc.Imports.Tags
	}
	if fc.Imports.FollowImports {
		c.Inspect.FollowImports = true
	}
	return nil
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ProjectRoot:    ".",
		PackageManager: "bower",
		OutputFormat:   "terminal",
		Inspect: InspectConfig{
			Tags: map[string]string{
				"link":   "href",
				"script": "src",
			},
		},
	}
}
