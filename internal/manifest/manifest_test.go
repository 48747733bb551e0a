package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscope/depscope/internal/models"
)

func TestParseKind(t *testing.T) {
	for _, name := range []string{"bower", "npm"} {
		kind, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, Kind(name), kind)
	}

	for _, name := range []string{"", "yarn", "Bower"} {
		_, err := ParseKind(name)
		require.Error(t, err)
		assert.True(t, models.IsConfiguration(err))
	}
}

func TestKindConventions(t *testing.T) {
	assert.Equal(t, "bower_components", KindBower.ComponentsDir())
	assert.Equal(t, ".bower.json", KindBower.ManifestFile())
	assert.Equal(t, "node_modules", KindNpm.ComponentsDir())
	assert.Equal(t, "package.json", KindNpm.ManifestFile())
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"^1.2.3", "1.2.3"},
		{"~2.0", "2.0"},
		{"*", "*"},
		{">=1.0.0", "1.0.0"},
		{"<3", "3"},
		{"=4.5.6", "4.5.6"},
		{"1.0.0", "1.0.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeVersion(tt.in), "input %q", tt.in)
	}
}

func TestListInstalledFiltersHiddenEntries(t *testing.T) {
	root := t.TempDir()
	components := filepath.Join(root, "bower_components")
	for _, dir := range []string{".git", "lodash", "left-pad"} {
		require.NoError(t, os.MkdirAll(filepath.Join(components, dir), 0755))
	}
	// A stray file must not be enumerated either.
	require.NoError(t, os.WriteFile(filepath.Join(components, "README.md"), []byte("x"), 0644))

	names, err := ListInstalled(root, KindBower)
	require.NoError(t, err)
	assert.Equal(t, []string{"left-pad", "lodash"}, names)
}

func TestListInstalledMissingFolder(t *testing.T) {
	_, err := ListInstalled(t.TempDir(), KindNpm)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestReaderRead(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "bower_components", "x-elem")
	require.NoError(t, os.MkdirAll(dir, 0755))
	body := `{"name": "x-elem", "version": "1.4.0", "dependencies": {"y-elem": "^2.0.0"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bower.json"), []byte(body), 0644))

	reader := NewReader(root, KindBower)
	record, err := reader.Read(context.Background(), "x-elem")
	require.NoError(t, err)
	assert.Equal(t, "x-elem", record.Name)
	assert.Equal(t, "1.4.0", record.ResolvedVersion())
	assert.Equal(t, map[string]string{"y-elem": "^2.0.0"}, record.Requires)
}

func TestReaderReadMissingManifest(t *testing.T) {
	reader := NewReader(t.TempDir(), KindBower)
	_, err := reader.Read(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestReaderReadMalformedManifest(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "node_modules", "broken")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{not json"), 0644))

	reader := NewReader(root, KindNpm)
	_, err := reader.Read(context.Background(), "broken")
	require.Error(t, err)
	assert.True(t, models.IsParse(err))
}
