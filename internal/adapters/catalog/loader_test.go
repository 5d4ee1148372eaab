package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsl/internal/adapters/catalog"
	"go.trai.ch/jsl/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func TestParse_Defaults(t *testing.T) {
	snapshot, err := catalog.Parse([]byte(`
packages:
  - id: 7
    name: Knockout
libraries:
  - id: 1
    name: Knockout
    version: "3.1"
    package: 7
`))
	require.NoError(t, err)
	require.Len(t, snapshot.Libraries, 1)

	lib := snapshot.Libraries[0]
	assert.Equal(t, "Knockout@3.1.0", lib.Key())
	assert.Equal(t, domain.LocationBodyBottom, lib.Location)
	assert.Empty(t, lib.FileName)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "malformed yaml",
			content: "packages: [",
			errMsg:  "failed to parse catalog file",
		},
		{
			name:    "invalid version",
			content: "libraries:\n  - id: 1\n    name: A\n    version: not-a-version\n",
			errMsg:  "invalid library version",
		},
		{
			name:    "unknown location",
			content: "libraries:\n  - id: 1\n    name: A\n    version: 1.0.0\n    location: footer\n",
			errMsg:  "unknown script location",
		},
		{
			name:    "empty library name",
			content: "libraries:\n  - id: 1\n    version: 1.0.0\n",
			errMsg:  "library name is empty",
		},
		{
			name:    "empty package name",
			content: "packages:\n  - id: 1\n",
			errMsg:  "package name is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.content))
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "failed to read catalog file")
}

func TestToFile_RoundTrip(t *testing.T) {
	snapshot, err := catalog.LoadFile("testdata/catalog.yaml")
	require.NoError(t, err)

	data, err := yaml.Marshal(catalog.ToFile(snapshot))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	again, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, len(snapshot.Libraries), len(again.Libraries))
	for i := range snapshot.Libraries {
		assert.Equal(t, snapshot.Libraries[i].Key(), again.Libraries[i].Key())
		assert.Equal(t, snapshot.Libraries[i].Location, again.Libraries[i].Location)
	}
	assert.Equal(t, snapshot.Packages, again.Packages)
}

func TestNewMemory_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "duplicate id",
			content: `
packages: [{id: 1, name: A}]
libraries:
  - {id: 1, name: A, version: 1.0.0, package: 1}
  - {id: 1, name: A, version: 2.0.0, package: 1}
`,
			errMsg: "duplicate library in catalog",
		},
		{
			name: "duplicate name and version",
			content: `
packages: [{id: 1, name: A}]
libraries:
  - {id: 1, name: A, version: "1.0", package: 1}
  - {id: 2, name: A, version: 1.0.0, package: 1}
`,
			errMsg: "duplicate library in catalog",
		},
		{
			name: "versions differing only in build metadata",
			content: `
packages: [{id: 1, name: A}]
libraries:
  - {id: 1, name: A, version: "1.0.0+a", package: 1}
  - {id: 2, name: A, version: "1.0.0+b", package: 1}
`,
			errMsg: "duplicate library in catalog",
		},
		{
			name: "prerelease is part of the version",
			content: `
packages: [{id: 1, name: A}]
libraries:
  - {id: 1, name: A, version: "1.0.0-beta", package: 1}
  - {id: 2, name: A, version: "1.0.0", package: 1}
`,
		},
		{
			name: "unknown package",
			content: `
libraries:
  - {id: 1, name: A, version: 1.0.0, package: 9}
`,
			errMsg: "library references unknown package",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := catalog.Parse([]byte(tt.content))
			require.NoError(t, err)

			_, err = catalog.NewMemory(snapshot)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}
