package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, DefaultPath, `
output: limits_nz.go
manifest: limits.cue
header: "generated for the limits package"
`)

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, "limits_nz.go", cfg.Output)
	assert.Equal(t, "limits.cue", cfg.Manifest)
	assert.Equal(t, "generated for the limits package", cfg.Header)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, DefaultPath, `manifest: limits.cue`)

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, "nz_generated.go", cfg.Output)
}

// A missing file at the default path is the common case, not an error.
func TestLoadMissingDefaultPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath), false)
	require.NoError(t, err)

	assert.Equal(t, "nz_generated.go", cfg.Output)
	assert.Empty(t, cfg.Manifest)
}

// An explicitly named config that does not exist is an error; silently
// substituting defaults would hide a typo in --config. This holds even
// when the missing file happens to be named like the default.
func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "custom.yaml"), true)
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), DefaultPath), true)
	require.Error(t, err)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	path := writeConfig(t, DefaultPath, `outptu: oops.go`)

	_, err := Load(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadRejectsNonGoOutput(t *testing.T) {
	path := writeConfig(t, DefaultPath, `output: constants.txt`)

	_, err := Load(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a .go file")
}
