package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nzgen/nz/internal/registry"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "limits.cue")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeManifest(t, `
pkg: "limits"
constants: [
	{kind: "u16", name: "MaxRetries", expr: "(1 << 4) - 9"},
	{kind: "u128", name: "KeySpace", expr: "1 << 100", doc: "size of the key space"},
]
`)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "limits", m.Package)
	require.Len(t, m.Directives, 2)

	first := m.Directives[0]
	assert.Equal(t, registry.KindU16, first.Kind)
	assert.Equal(t, "MaxRetries", first.Name)
	assert.Equal(t, "(1 << 4) - 9", first.Expr)
	assert.Empty(t, first.Doc)
	assert.Equal(t, path, first.Pos.Filename)

	second := m.Directives[1]
	assert.Equal(t, registry.KindU128, second.Kind)
	assert.Equal(t, "size of the key space", second.Doc)
}

func TestLoadEmptyConstants(t *testing.T) {
	path := writeManifest(t, `
pkg: "limits"
constants: []
`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, m.Directives)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown kind", `
pkg: "limits"
constants: [{kind: "u7", name: "X", expr: "1"}]
`},
		{"missing pkg", `
constants: [{kind: "u8", name: "X", expr: "1"}]
`},
		{"empty pkg", `
pkg: ""
constants: [{kind: "u8", name: "X", expr: "1"}]
`},
		{"missing expr", `
pkg: "limits"
constants: [{kind: "u8", name: "X"}]
`},
		{"name not an identifier", `
pkg: "limits"
constants: [{kind: "u8", name: "not-an-ident", expr: "1"}]
`},
		{"syntax error", `pkg: "limits`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			_, err := Load(path)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.cue"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "reading manifest")
}

// The schema's kind disjunction tracks the registry, so every registered
// tag is accepted without touching the schema by hand.
func TestSchemaAcceptsEveryKind(t *testing.T) {
	for _, info := range registry.All() {
		t.Run(info.Tag, func(t *testing.T) {
			path := writeManifest(t, `
pkg: "limits"
constants: [{kind: "`+info.Tag+`", name: "X", expr: "1"}]
`)
			m, err := Load(path)
			require.NoError(t, err)
			require.Len(t, m.Directives, 1)
			assert.Equal(t, info.Kind, m.Directives[0].Kind)
		})
	}
}
