package manifest_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsl/internal/adapters/manifest"
	"go.trai.ch/jsl/internal/core/domain"
)

func library(name, version string, pkg domain.PackageID, file string, loc domain.ScriptLocation) domain.Library {
	return domain.Library{
		ID:        1,
		Name:      domain.NewInternedString(name),
		Version:   semver.MustParse(version),
		PackageID: pkg,
		FileName:  file,
		Location:  loc,
	}
}

func TestBuilder_Emit(t *testing.T) {
	b := manifest.NewBuilder()

	lib := library("Knockout", "3.4.0", 7, "knockout.js", domain.LocationBodyBottom)
	require.NoError(t, b.Emit(lib, 507, lib.Location))

	m := b.Manifest()
	require.Len(t, m.Entries, 1)
	assert.Equal(t, domain.ManifestEntry{
		Kind:     domain.EntryLibrary,
		Library:  "Knockout",
		Version:  "3.4.0",
		Path:     "~/Resources/libraries/Knockout/3.4.0/knockout.js",
		Order:    507,
		Location: "bodybottom",
		Provider: "DnnFormBottomProvider",
	}, m.Entries[0])
	assert.NotEmpty(t, m.Fingerprint)
}

func TestBuilder_FileUploadAddsIFrameTransport(t *testing.T) {
	b := manifest.NewBuilder()

	lib := library(domain.LegacyFileUpload, "9.8.1", 3, "jquery.fileupload.js", domain.LocationBodyTop)
	require.NoError(t, b.Emit(lib, 503, lib.Location))

	m := b.Manifest()
	require.Len(t, m.Entries, 2)
	assert.Equal(t, manifest.IFrameTransportPath, m.Entries[0].Path)
	assert.Equal(t, domain.EntryRaw, m.Entries[0].Kind)
	assert.Equal(t, domain.OrderDefault, m.Entries[0].Order)
	assert.Equal(t, "~/Resources/libraries/jQuery-File-Upload/9.8.1/jquery.fileupload.js", m.Entries[1].Path)
}

func TestBuilder_RawDuplicatesKeepFirst(t *testing.T) {
	b := manifest.NewBuilder()

	require.NoError(t, b.EmitRaw("~/a.js", 5, domain.LocationHead))
	require.NoError(t, b.EmitRaw("~/a.js", 55, domain.LocationBodyTop))

	m := b.Manifest()
	require.Len(t, m.Entries, 1)
	assert.Equal(t, 5, m.Entries[0].Order)
	assert.Equal(t, "DnnPageHeaderProvider", m.Entries[0].Provider)
}

func TestBuilder_LoadOrder(t *testing.T) {
	b := manifest.NewBuilder()

	require.NoError(t, b.EmitRaw("~/bottom.js", 1, domain.LocationBodyBottom))
	require.NoError(t, b.EmitRaw("~/top-late.js", 100, domain.LocationBodyTop))
	require.NoError(t, b.EmitRaw("~/top-early.js", 55, domain.LocationBodyTop))
	require.NoError(t, b.EmitRaw("~/head-b.js", 6, domain.LocationHead))
	require.NoError(t, b.EmitRaw("~/head-a.js", 5, domain.LocationHead))
	require.NoError(t, b.EmitRaw("~/top-tie.js", 100, domain.LocationBodyTop))

	var paths []string
	for _, e := range b.Manifest().Entries {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{
		"~/head-a.js",
		"~/head-b.js",
		"~/top-early.js",
		"~/top-late.js",
		"~/top-tie.js",
		"~/bottom.js",
	}, paths)
}

func TestBuilder_EmptyManifest(t *testing.T) {
	m := manifest.NewBuilder().Manifest()
	assert.NotNil(t, m.Entries)
	assert.Empty(t, m.Entries)
	assert.Equal(t, manifest.Fingerprint(nil), m.Fingerprint)
}

func TestFingerprint(t *testing.T) {
	a := []domain.ManifestEntry{
		{Kind: domain.EntryRaw, Path: "~/a.js", Order: 5, Location: "head"},
		{Kind: domain.EntryRaw, Path: "~/b.js", Order: 6, Location: "head"},
	}
	reversed := []domain.ManifestEntry{a[1], a[0]}

	assert.Equal(t, manifest.Fingerprint(a), manifest.Fingerprint(a))
	assert.NotEqual(t, manifest.Fingerprint(a), manifest.Fingerprint(reversed))

	moved := []domain.ManifestEntry{a[0], a[1]}
	moved[1].Location = "bodytop"
	assert.NotEqual(t, manifest.Fingerprint(a), manifest.Fingerprint(moved))
}

func TestFactory_NewReturnsFreshBuilder(t *testing.T) {
	f := manifest.NewFactory()

	first := f.New()
	require.NoError(t, first.EmitRaw("~/a.js", 5, domain.LocationHead))

	assert.Empty(t, f.New().Manifest().Entries)
	assert.Len(t, first.Manifest().Entries, 1)
}
