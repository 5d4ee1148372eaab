// Package resolver implements version selection and request-cycle resolution of script libraries.
package resolver

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Selector picks a single installed library for a name under a version policy.
type Selector struct {
	catalog ports.Catalog
}

// NewSelector creates a Selector over the given catalog.
func NewSelector(catalog ports.Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Select returns the library chosen by policy. The version is ignored for PolicyLatest
// and required for every other policy. When nothing matches, the returned error
// wraps domain.ErrNoMatchingVersion.
func (s *Selector) Select(
	name string,
	policy domain.VersionPolicy,
	version *semver.Version,
) (*domain.Library, error) {
	if policy != domain.PolicyLatest && version == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingVersion, "cannot select library"), "policy", policy.String())
	}

	var (
		lib *domain.Library
		err error
	)
	switch policy {
	case domain.PolicyLatest:
		lib, err = s.Latest(name)
	case domain.PolicyExact:
		lib, err = s.catalog.ByNameAndVersion(name, version)
	case domain.PolicyLatestMajor:
		lib, err = s.catalog.ByMajorAtLeast(name, version.Major())
	case domain.PolicyLatestMinor:
		lib, err = s.catalog.ByMinorAtLeast(name, version.Minor())
	default:
		return nil, zerr.With(domain.ErrUnknownPolicy, "policy", int(policy))
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "catalog query failed"), "library", name)
	}
	if lib == nil {
		err := zerr.Wrap(domain.ErrNoMatchingVersion, "library version not installed")
		err = zerr.With(err, "library", name)
		err = zerr.With(err, "policy", policy.String())
		if version != nil {
			err = zerr.With(err, "version", version.String())
		}
		return nil, err
	}
	return lib, nil
}

// Latest returns the highest installed version of name, or nil if none is installed.
// When two records compare equal, the first in catalog order wins.
func (s *Selector) Latest(name string) (*domain.Library, error) {
	libs, err := s.catalog.ByName(name)
	if err != nil {
		return nil, err
	}

	var best *domain.Library
	for i := range libs {
		if best == nil || libs[i].Version.GreaterThan(best.Version) {
			best = &libs[i]
		}
	}
	return best, nil
}
