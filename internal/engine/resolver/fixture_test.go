package resolver_test

import (
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/jsl/internal/core/domain"
)

// fakeCatalog is a catalog over a fixed slice. Records are iterated in ascending id
// order, matching the contract every catalog adapter honours.
type fakeCatalog struct {
	libs []domain.Library
	deps map[domain.PackageID][]domain.PackageDependency
}

func newFakeCatalog(libs ...domain.Library) *fakeCatalog {
	sorted := slices.Clone(libs)
	slices.SortFunc(sorted, func(a, b domain.Library) int { return int(a.ID) - int(b.ID) })
	return &fakeCatalog{libs: sorted, deps: make(map[domain.PackageID][]domain.PackageDependency)}
}

func (c *fakeCatalog) dependsOn(pkg domain.PackageID, names ...string) *fakeCatalog {
	for _, n := range names {
		c.deps[pkg] = append(c.deps[pkg], domain.PackageDependency{Name: domain.NewInternedString(n)})
	}
	return c
}

func (c *fakeCatalog) first(match func(domain.Library) bool) *domain.Library {
	for i := range c.libs {
		if match(c.libs[i]) {
			lib := c.libs[i]
			return &lib
		}
	}
	return nil
}

func (c *fakeCatalog) ByID(id domain.LibraryID) (*domain.Library, error) {
	return c.first(func(l domain.Library) bool { return l.ID == id }), nil
}

func (c *fakeCatalog) ByName(name string) ([]domain.Library, error) {
	var out []domain.Library
	for _, l := range c.libs {
		if l.Name.String() == name {
			out = append(out, l)
		}
	}
	return out, nil
}

func (c *fakeCatalog) ByNameAndVersion(name string, v *semver.Version) (*domain.Library, error) {
	return c.first(func(l domain.Library) bool { return l.Name.String() == name && l.Version.Equal(v) }), nil
}

func (c *fakeCatalog) ByMajorAtLeast(name string, major uint64) (*domain.Library, error) {
	return c.first(func(l domain.Library) bool { return l.Name.String() == name && l.Version.Major() >= major }), nil
}

func (c *fakeCatalog) ByMinorAtLeast(name string, minor uint64) (*domain.Library, error) {
	return c.first(func(l domain.Library) bool { return l.Name.String() == name && l.Version.Minor() >= minor }), nil
}

func (c *fakeCatalog) PackageDependencies(id domain.PackageID) ([]domain.PackageDependency, error) {
	return c.deps[id], nil
}

func (c *fakeCatalog) Snapshot() (*domain.CatalogSnapshot, error) {
	return &domain.CatalogSnapshot{Libraries: slices.Clone(c.libs)}, nil
}

// lib builds a library whose package id equals its library id unless overridden.
func lib(id int, name, version string) domain.Library {
	return domain.Library{
		ID:        domain.LibraryID(id),
		Name:      domain.NewInternedString(name),
		Version:   semver.MustParse(version),
		PackageID: domain.PackageID(id),
		FileName:  name + ".js",
		Location:  domain.LocationBodyBottom,
	}
}

func keys(libs []domain.Library) []string {
	out := make([]string, 0, len(libs))
	for _, l := range libs {
		out = append(out, l.Key())
	}
	return out
}
