package catalog

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Opener opens catalogs by file extension: .yaml and .yml files are loaded into memory,
// everything else is treated as a SQLite database. Opened catalogs are wrapped in a
// read-through cache when cacheTTL is positive.
type Opener struct {
	cacheTTL time.Duration
}

// NewOpener creates a new Opener.
func NewOpener(cacheTTL time.Duration) *Opener {
	return &Opener{cacheTTL: cacheTTL}
}

// Open returns the catalog stored at path and a function that releases it.
func (o *Opener) Open(ctx context.Context, path string) (ports.Catalog, func(), error) {
	var (
		cat     ports.Catalog
		release = func() {}
	)

	if isYAML(path) {
		snapshot, err := LoadFile(path)
		if err != nil {
			return nil, nil, err
		}
		mem, err := NewMemory(snapshot)
		if err != nil {
			return nil, nil, zerr.With(err, "path", path)
		}
		cat = mem
	} else {
		db, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		cat = db
		release = func() { _ = db.Close() }
	}

	if o.cacheTTL > 0 {
		cat = NewCached(cat, o.cacheTTL)
	}
	return cat, release, nil
}

// Import writes snapshot into the SQLite catalog at dst, replacing its content.
func (o *Opener) Import(ctx context.Context, snapshot *domain.CatalogSnapshot, dst string) error {
	if isYAML(dst) {
		return zerr.With(zerr.New("import destination must be a SQLite database"), "path", dst)
	}

	db, err := OpenSQLite(ctx, dst)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return db.Import(ctx, snapshot)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
