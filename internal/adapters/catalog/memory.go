// Package catalog provides the script library catalog adapters: an in-memory catalog
// loaded from YAML, a SQLite-backed catalog and a caching decorator.
package catalog

import (
	"fmt"
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/zerr"
)

// Memory is an immutable in-memory catalog. It is safe for concurrent use.
type Memory struct {
	libs     []domain.Library
	byID     map[domain.LibraryID]int
	byName   map[domain.InternedString][]int
	packages map[domain.PackageID]domain.Package
}

// NewMemory builds a catalog from a snapshot. Library ids and (name, version) pairs
// must be unique, and every library must belong to a declared package. Versions that
// differ only in build metadata count as the same version.
func NewMemory(snapshot *domain.CatalogSnapshot) (*Memory, error) {
	m := &Memory{
		byID:     make(map[domain.LibraryID]int, len(snapshot.Libraries)),
		byName:   make(map[domain.InternedString][]int),
		packages: make(map[domain.PackageID]domain.Package, len(snapshot.Packages)),
	}

	for _, pkg := range snapshot.Packages {
		m.packages[pkg.ID] = pkg
	}

	m.libs = slices.Clone(snapshot.Libraries)
	slices.SortFunc(m.libs, func(a, b domain.Library) int { return int(a.ID) - int(b.ID) })

	versions := make(map[string]domain.LibraryID, len(m.libs))
	for i, lib := range m.libs {
		if _, ok := m.byID[lib.ID]; ok {
			return nil, zerr.With(domain.ErrDuplicateLibrary, "library_id", int(lib.ID))
		}
		if other, ok := versions[identity(lib)]; ok {
			err := zerr.With(domain.ErrDuplicateLibrary, "library", lib.Key())
			return nil, zerr.With(err, "library_ids", []int{int(other), int(lib.ID)})
		}
		if _, ok := m.packages[lib.PackageID]; !ok {
			err := zerr.With(domain.ErrUnknownPackage, "library", lib.Key())
			return nil, zerr.With(err, "package_id", int(lib.PackageID))
		}
		versions[identity(lib)] = lib.ID
		m.byID[lib.ID] = i
		m.byName[lib.Name] = append(m.byName[lib.Name], i)
	}

	return m, nil
}

// ByID returns the library with the given id.
func (m *Memory) ByID(id domain.LibraryID) (*domain.Library, error) {
	i, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	lib := m.libs[i]
	return &lib, nil
}

// ByName returns every installed version of name in ascending id order.
func (m *Memory) ByName(name string) ([]domain.Library, error) {
	idx := m.byName[domain.NewInternedString(name)]
	if len(idx) == 0 {
		return nil, nil
	}
	out := make([]domain.Library, 0, len(idx))
	for _, i := range idx {
		out = append(out, m.libs[i])
	}
	return out, nil
}

// ByNameAndVersion returns the library of name whose version equals version.
// Build metadata is ignored.
func (m *Memory) ByNameAndVersion(name string, version *semver.Version) (*domain.Library, error) {
	return m.first(name, func(v *semver.Version) bool { return v.Equal(version) }), nil
}

// ByMajorAtLeast returns the first library of name whose major version is at least major.
func (m *Memory) ByMajorAtLeast(name string, major uint64) (*domain.Library, error) {
	return m.first(name, func(v *semver.Version) bool { return v.Major() >= major }), nil
}

// ByMinorAtLeast returns the first library of name whose minor version is at least minor.
func (m *Memory) ByMinorAtLeast(name string, minor uint64) (*domain.Library, error) {
	return m.first(name, func(v *semver.Version) bool { return v.Minor() >= minor }), nil
}

// PackageDependencies returns the dependency edges of a package.
func (m *Memory) PackageDependencies(id domain.PackageID) ([]domain.PackageDependency, error) {
	return slices.Clone(m.packages[id].Dependencies), nil
}

// Snapshot returns the catalog content with packages and libraries in ascending id order.
func (m *Memory) Snapshot() (*domain.CatalogSnapshot, error) {
	pkgs := make([]domain.Package, 0, len(m.packages))
	for _, pkg := range m.packages {
		pkgs = append(pkgs, pkg)
	}
	slices.SortFunc(pkgs, func(a, b domain.Package) int { return int(a.ID) - int(b.ID) })

	return &domain.CatalogSnapshot{
		Packages:  pkgs,
		Libraries: slices.Clone(m.libs),
	}, nil
}

func (m *Memory) first(name string, match func(*semver.Version) bool) *domain.Library {
	for _, i := range m.byName[domain.NewInternedString(name)] {
		if match(m.libs[i].Version) {
			lib := m.libs[i]
			return &lib
		}
	}
	return nil
}

// identity is the (name, version) key under semver precedence: build metadata dropped.
func identity(lib domain.Library) string {
	v := lib.Version
	if v == nil {
		return lib.Name.String()
	}
	id := fmt.Sprintf("%s@%d.%d.%d", lib.Name, v.Major(), v.Minor(), v.Patch())
	if pre := v.Prerelease(); pre != "" {
		id += "-" + pre
	}
	return id
}
