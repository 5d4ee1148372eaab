// Package manifest records emitted scripts as a page script manifest.
package manifest

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/jsl/internal/core/domain"
)

const (
	librariesDir = "~/Resources/libraries/"
	// IFrameTransportPath is emitted alongside the jQuery-File-Upload library.
	IFrameTransportPath = "~/Resources/Shared/Scripts/jquery/jquery.iframe-transport.js"
)

// Builder implements ports.ManifestEmitter. A Builder belongs to a single cycle.
type Builder struct {
	entries []domain.ManifestEntry
	paths   map[string]struct{}
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{paths: make(map[string]struct{})}
}

// LibraryPath returns the virtual path a library's script is served from.
func LibraryPath(lib domain.Library) string {
	version := ""
	if lib.Version != nil {
		version = lib.Version.String()
	}
	return librariesDir + lib.Name.String() + "/" + version + "/" + lib.FileName
}

// Emit records lib. The jQuery-File-Upload library also pulls in the iframe transport script.
func (b *Builder) Emit(lib domain.Library, order int, location domain.ScriptLocation) error {
	entry := domain.ManifestEntry{
		Kind:     domain.EntryLibrary,
		Library:  lib.Name.String(),
		Path:     LibraryPath(lib),
		Order:    order,
		Location: location.String(),
		Provider: location.Provider(),
	}
	if lib.Version != nil {
		entry.Version = lib.Version.String()
	}
	b.add(entry)

	if lib.Name.String() == domain.LegacyFileUpload {
		return b.EmitRaw(IFrameTransportPath, domain.OrderDefault, domain.LocationBodyTop)
	}
	return nil
}

// EmitRaw records a script by path. A path already recorded is ignored.
func (b *Builder) EmitRaw(path string, order int, location domain.ScriptLocation) error {
	b.add(domain.ManifestEntry{
		Kind:     domain.EntryRaw,
		Path:     path,
		Order:    order,
		Location: location.String(),
		Provider: location.Provider(),
	})
	return nil
}

func (b *Builder) add(entry domain.ManifestEntry) {
	if _, ok := b.paths[entry.Path]; ok {
		return
	}
	b.paths[entry.Path] = struct{}{}
	b.entries = append(b.entries, entry)
}

// Manifest returns the recorded scripts in page load order: head scripts first, then
// body top, then body bottom; by ascending order key within a location, and by
// registration order for equal keys.
func (b *Builder) Manifest() domain.Manifest {
	entries := slices.Clone(b.entries)
	slices.SortStableFunc(entries, func(x, y domain.ManifestEntry) int {
		if c := cmp.Compare(locationRank(x.Location), locationRank(y.Location)); c != 0 {
			return c
		}
		return cmp.Compare(x.Order, y.Order)
	})
	if entries == nil {
		entries = []domain.ManifestEntry{}
	}
	return domain.Manifest{
		Entries:     entries,
		Fingerprint: Fingerprint(entries),
	}
}

func locationRank(location string) int {
	switch location {
	case domain.LocationHead.String():
		return 0
	case domain.LocationBodyTop.String():
		return 1
	default:
		return 2
	}
}

// Fingerprint hashes the ordered entries. Two manifests with the same scripts in the
// same order share a fingerprint.
func Fingerprint(entries []domain.ManifestEntry) string {
	d := xxhash.New()
	for _, e := range entries {
		_, _ = d.WriteString(string(e.Kind))
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(e.Path)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strconv.Itoa(e.Order))
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(e.Location)
		_, _ = d.WriteString("\n")
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
