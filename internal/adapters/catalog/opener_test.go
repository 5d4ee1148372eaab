package catalog_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsl/internal/adapters/catalog"
)

func TestOpener_ImportThenOpen(t *testing.T) {
	ctx := context.Background()
	opener := catalog.NewOpener(0)

	src, release, err := opener.Open(ctx, "testdata/catalog.yaml")
	require.NoError(t, err)
	defer release()

	snapshot, err := src.Snapshot()
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), "nested", "catalog.db")
	require.NoError(t, opener.Import(ctx, snapshot, dst))

	db, closeDB, err := opener.Open(ctx, dst)
	require.NoError(t, err)
	defer closeDB()

	lib, err := db.ByID(2)
	require.NoError(t, err)
	require.NotNil(t, lib)
	assert.Equal(t, "jQuery@1.11.1", lib.Key())
}

func TestOpener_ImportIsRepeatable(t *testing.T) {
	ctx := context.Background()
	snapshot, err := catalog.LoadFile("testdata/catalog.yaml")
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), "catalog.db")
	opener := catalog.NewOpener(0)
	require.NoError(t, opener.Import(ctx, snapshot, dst))
	require.NoError(t, opener.Import(ctx, snapshot, dst))

	db, release, err := opener.Open(ctx, dst)
	require.NoError(t, err)
	defer release()

	out, err := db.Snapshot()
	require.NoError(t, err)
	assert.Len(t, out.Libraries, len(snapshot.Libraries))
}

func TestOpener_Cached(t *testing.T) {
	cat, release, err := catalog.NewOpener(time.Minute).Open(context.Background(), "testdata/catalog.yaml")
	require.NoError(t, err)
	defer release()

	_, ok := cat.(*catalog.Cached)
	assert.True(t, ok)
}

func TestOpener_Errors(t *testing.T) {
	ctx := context.Background()
	opener := catalog.NewOpener(0)

	_, _, err := opener.Open(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read catalog file")

	err = opener.Import(ctx, nil, "catalog.yml")
	require.ErrorContains(t, err, "import destination must be a SQLite database")
}
