package resolver

import (
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver turns a cycle's requested library ids into the ordered list of libraries
// to load: dependencies are pulled in transitively and each library name keeps a
// single version.
type Resolver struct {
	catalog  ports.Catalog
	selector *Selector
}

// New creates a Resolver over the given catalog.
func New(catalog ports.Catalog) *Resolver {
	return &Resolver{
		catalog:  catalog,
		selector: NewSelector(catalog),
	}
}

// Selector returns the version selector backed by the same catalog.
func (r *Resolver) Selector() *Selector {
	return r.selector
}

// Resolve resolves the requested ids. It fails if an id is not in the catalog or a
// package dependency names a library that is not installed.
func (r *Resolver) Resolve(requests []domain.LibraryID) (domain.Resolution, error) {
	combined, err := r.normalize(requests)
	if err != nil {
		return domain.Resolution{}, err
	}

	combined, err = r.expand(combined)
	if err != nil {
		return domain.Resolution{}, err
	}

	return reconcile(combined), nil
}

// normalize maps ids to records in request order, skipping repeated ids.
func (r *Resolver) normalize(requests []domain.LibraryID) ([]domain.Library, error) {
	seen := make(map[domain.LibraryID]struct{}, len(requests))
	out := make([]domain.Library, 0, len(requests))
	for _, id := range requests {
		if _, ok := seen[id]; ok {
			continue
		}
		lib, err := r.catalog.ByID(id)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "catalog query failed"), "library_id", int(id))
		}
		if lib == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrLibraryNotFound, "requested library is not in the catalog"),
				"library_id", int(id))
		}
		seen[id] = struct{}{}
		out = append(out, *lib)
	}
	return out, nil
}

// expand walks the list as a worklist, appending the latest version of every
// dependency whose id is not yet present. Appended entries are walked in turn.
func (r *Resolver) expand(libs []domain.Library) ([]domain.Library, error) {
	present := make(map[domain.LibraryID]struct{}, len(libs))
	for _, lib := range libs {
		present[lib.ID] = struct{}{}
	}

	for i := 0; i < len(libs); i++ {
		owner := libs[i]
		deps, err := r.catalog.PackageDependencies(owner.PackageID)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "catalog query failed"), "package_id", int(owner.PackageID))
		}

		for _, dep := range deps {
			lib, err := r.selector.Latest(dep.Name.String())
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "catalog query failed"), "library", dep.Name.String())
			}
			if lib == nil {
				err := zerr.Wrap(domain.ErrDependencyNotInstalled, "package dependency cannot be satisfied")
				err = zerr.With(err, "dependency", dep.Name.String())
				err = zerr.With(err, "required_by", owner.Key())
				return nil, err
			}
			if _, ok := present[lib.ID]; ok {
				continue
			}
			present[lib.ID] = struct{}{}
			libs = append(libs, *lib)
		}
	}
	return libs, nil
}

// reconcile keeps one version per name. A strictly higher version arriving later
// displaces the kept one and records a collision; anything else arriving later is
// dropped. Survivors keep the position of their own arrival.
func reconcile(libs []domain.Library) domain.Resolution {
	kept := make(map[domain.InternedString]int, len(libs))
	var collisions []domain.CollisionEvent

	for i, lib := range libs {
		j, ok := kept[lib.Name]
		if !ok {
			kept[lib.Name] = i
			continue
		}
		if lib.Version.GreaterThan(libs[j].Version) {
			collisions = append(collisions, domain.CollisionEvent{
				Name:      lib.Name,
				Displaced: libs[j],
				Winner:    lib,
			})
			kept[lib.Name] = i
		}
	}

	out := make([]domain.Library, 0, len(kept))
	for i, lib := range libs {
		if kept[lib.Name] == i {
			out = append(out, lib)
		}
	}
	return domain.Resolution{Libraries: out, Collisions: collisions}
}
