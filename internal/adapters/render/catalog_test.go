package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsl/internal/adapters/catalog"
	"go.trai.ch/jsl/internal/adapters/render"
)

func TestCatalogTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	snapshot, err := catalog.LoadFile("../catalog/testdata/catalog.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.CatalogTable(&buf, snapshot))

	out := buf.String()
	for _, want := range []string{"ID", "VERSION", "DEPENDS ON", "jQuery-UI", "1.11.3", "Knockout", "3.1.0", "bodytop"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("1.9.1")), bytes.Index(buf.Bytes(), []byte("1.11.1")))
}

func TestCatalogYAML_RoundTrip(t *testing.T) {
	snapshot, err := catalog.LoadFile("../catalog/testdata/catalog.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.CatalogYAML(&buf, snapshot))

	again, err := catalog.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, catalog.ToFile(snapshot), catalog.ToFile(again))
}
