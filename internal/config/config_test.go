package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webforge-cli/webforge/internal/errors"
	"github.com/webforge-cli/webforge/internal/fs"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("WEBFORGE_LOG_FILE", "")
	t.Setenv("WEBFORGE_NO_COLOR", "")
	t.Setenv("WEBFORGE_ASSUME_YES", "")
	t.Setenv("NO_COLOR", "")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultLogFile, s.LogFile)
	assert.False(t, s.NoColor)
	assert.False(t, s.AssumeYes)
}

func TestLoadSettings_FromEnv(t *testing.T) {
	t.Setenv("WEBFORGE_LOG_FILE", "/tmp/forge.log")
	t.Setenv("WEBFORGE_NO_COLOR", "true")
	t.Setenv("WEBFORGE_ASSUME_YES", "true")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/forge.log", s.LogFile)
	assert.True(t, s.NoColor)
	assert.True(t, s.AssumeYes)
}

func TestLoadSettings_NoColorConvention(t *testing.T) {
	t.Setenv("WEBFORGE_NO_COLOR", "")
	t.Setenv("NO_COLOR", "1")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.True(t, s.NoColor)
}

func TestLoadManifest_Missing(t *testing.T) {
	m, found, err := LoadManifest(fs.NewRealFS(), t.TempDir())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, DefaultManifest(), m)
}

func TestLoadManifest_Valid(t *testing.T) {
	dir := t.TempDir()
	manifest := `project: storefront
package_manager: pnpm
min_node_major: 20
scripts:
  build: build:prod
policy:
  audit: fatal
  tests: advisory
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(manifest), 0644))

	m, found, err := LoadManifest(fs.NewRealFS(), dir)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "storefront", m.Project)
	assert.Equal(t, "pnpm", m.PackageManager)
	assert.Equal(t, 20, m.MinNodeMajor)
	assert.Equal(t, "build:prod", m.Scripts.Build)
	// Unset fields keep defaults.
	assert.Equal(t, "dev", m.Scripts.Dev)
	assert.Equal(t, PolicyFatal, m.Policy.Audit)
	assert.Equal(t, PolicyAdvisory, m.Policy.Tests)
}

func TestLoadManifest_BadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("project: [\n"), 0644))

	_, _, err := LoadManifest(fs.NewRealFS(), dir)
	require.Error(t, err)
	assert.Equal(t, errors.EManifestInvalid, errors.GetCode(err))
}

func TestLoadManifest_BadPolicy(t *testing.T) {
	dir := t.TempDir()
	manifest := "project: x\npolicy:\n  audit: maybe\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(manifest), 0644))

	_, _, err := LoadManifest(fs.NewRealFS(), dir)
	require.Error(t, err)
	assert.Equal(t, errors.EManifestInvalid, errors.GetCode(err))
	assert.Contains(t, err.Error(), "policy.audit")
}

func TestLoadManifest_EmptyProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("project: \"\"\n"), 0644))

	_, _, err := LoadManifest(fs.NewRealFS(), dir)
	require.Error(t, err)
	assert.Equal(t, errors.EManifestInvalid, errors.GetCode(err))
}
