package ports

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/jsl/internal/core/domain"
)

// Catalog is the read-only view of installed libraries and package dependencies.
// Every query returning more than one record returns them in ascending library id
// order, and single-record queries that pick the "first" match use the same order.
// Single-record queries return nil, nil when nothing matches.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type Catalog interface {
	// ByID returns the library with the given id.
	ByID(id domain.LibraryID) (*domain.Library, error)
	// ByName returns every installed version of a library.
	ByName(name string) ([]domain.Library, error)
	// ByNameAndVersion returns the library with exactly this name and version.
	ByNameAndVersion(name string, version *semver.Version) (*domain.Library, error)
	// ByMajorAtLeast returns the first library with this name whose major version is >= major.
	ByMajorAtLeast(name string, major uint64) (*domain.Library, error)
	// ByMinorAtLeast returns the first library with this name whose minor version is >= minor.
	// The major version is not compared.
	ByMinorAtLeast(name string, minor uint64) (*domain.Library, error)
	// PackageDependencies returns the dependency edges declared by a package.
	PackageDependencies(id domain.PackageID) ([]domain.PackageDependency, error)
	// Snapshot returns the full catalog content.
	Snapshot() (*domain.CatalogSnapshot, error)
}

// CatalogOpener opens catalogs by location and writes catalogs to persistent storage.
type CatalogOpener interface {
	// Open returns the catalog stored at path and a function that releases it.
	Open(ctx context.Context, path string) (Catalog, func(), error)
	// Import writes a catalog snapshot into the persistent catalog at dst.
	Import(ctx context.Context, snapshot *domain.CatalogSnapshot, dst string) error
}
