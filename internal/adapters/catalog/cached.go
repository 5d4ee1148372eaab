package catalog

import (
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	gocache "github.com/patrickmn/go-cache"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
)

// Cached is a read-through cache in front of another catalog. Entries expire after the
// configured TTL, so catalog edits become visible without a restart. Cached values are
// copied on the way out and callers may modify what they receive.
type Cached struct {
	next  ports.Catalog
	cache *gocache.Cache
}

// NewCached wraps next with a cache whose entries live for ttl.
func NewCached(next ports.Catalog, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Flush drops every cached entry.
func (c *Cached) Flush() {
	c.cache.Flush()
}

// ByID returns the library with the given id.
func (c *Cached) ByID(id domain.LibraryID) (*domain.Library, error) {
	return cachedOne(c, "id:"+strconv.Itoa(int(id)), func() (*domain.Library, error) {
		return c.next.ByID(id)
	})
}

// ByName returns every installed version of name.
func (c *Cached) ByName(name string) ([]domain.Library, error) {
	key := "name:" + name
	if v, ok := c.cache.Get(key); ok {
		if libs, ok := v.([]domain.Library); ok {
			return cloneLibraries(libs), nil
		}
	}

	libs, err := c.next.ByName(name)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, cloneLibraries(libs))
	return libs, nil
}

// ByNameAndVersion returns the library with exactly this name and version.
func (c *Cached) ByNameAndVersion(name string, version *semver.Version) (*domain.Library, error) {
	return cachedOne(c, "exact:"+name+"@"+version.String(), func() (*domain.Library, error) {
		return c.next.ByNameAndVersion(name, version)
	})
}

// ByMajorAtLeast returns the first library of name whose major version is at least major.
func (c *Cached) ByMajorAtLeast(name string, major uint64) (*domain.Library, error) {
	return cachedOne(c, "major:"+name+"@"+strconv.FormatUint(major, 10), func() (*domain.Library, error) {
		return c.next.ByMajorAtLeast(name, major)
	})
}

// ByMinorAtLeast returns the first library of name whose minor version is at least minor.
func (c *Cached) ByMinorAtLeast(name string, minor uint64) (*domain.Library, error) {
	return cachedOne(c, "minor:"+name+"@"+strconv.FormatUint(minor, 10), func() (*domain.Library, error) {
		return c.next.ByMinorAtLeast(name, minor)
	})
}

// PackageDependencies returns the dependency edges of a package.
func (c *Cached) PackageDependencies(id domain.PackageID) ([]domain.PackageDependency, error) {
	key := "deps:" + strconv.Itoa(int(id))
	if v, ok := c.cache.Get(key); ok {
		if deps, ok := v.([]domain.PackageDependency); ok {
			return append([]domain.PackageDependency(nil), deps...), nil
		}
	}

	deps, err := c.next.PackageDependencies(id)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, append([]domain.PackageDependency(nil), deps...))
	return deps, nil
}

// Snapshot is not cached.
func (c *Cached) Snapshot() (*domain.CatalogSnapshot, error) {
	return c.next.Snapshot()
}

// cachedOne caches single-record lookups, including misses.
func cachedOne(c *Cached, key string, load func() (*domain.Library, error)) (*domain.Library, error) {
	if v, ok := c.cache.Get(key); ok {
		lib, ok := v.(*domain.Library)
		if ok {
			if lib == nil {
				return nil, nil
			}
			out := *lib
			return &out, nil
		}
	}

	lib, err := load()
	if err != nil {
		return nil, err
	}
	if lib == nil {
		c.cache.SetDefault(key, (*domain.Library)(nil))
		return nil, nil
	}
	stored := *lib
	c.cache.SetDefault(key, &stored)
	return lib, nil
}

func cloneLibraries(libs []domain.Library) []domain.Library {
	if libs == nil {
		return nil
	}
	return append([]domain.Library(nil), libs...)
}
