package cycle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
	"go.trai.ch/jsl/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Cycle collects the script registrations of a single request and resolves them once.
// A Cycle is owned by the goroutine handling its request and is not safe for concurrent use.
type Cycle struct {
	id          string
	url         string
	installMode bool

	resolver  *resolver.Resolver
	emitter   ports.Emitter
	sink      ports.DiagnosticsSink
	telemetry ports.Telemetry
	now       func() time.Time

	registry    domain.Registry
	diagnostics []domain.Diagnostic
	finalized   bool
}

// Result is what a finalized cycle produced.
type Result struct {
	CycleID     string
	Legacy      []domain.LegacyScript
	Libraries   []domain.Library
	Collisions  []domain.CollisionEvent
	Diagnostics []domain.Diagnostic
}

// ID returns the unique id of the cycle.
func (c *Cycle) ID() string { return c.id }

// URL returns the request URL the cycle was started for.
func (c *Cycle) URL() string { return c.url }

// InstallMode reports whether the request belongs to the installer.
func (c *Cycle) InstallMode() bool { return c.installMode }

// Diagnostics returns the findings reported so far.
func (c *Cycle) Diagnostics() []domain.Diagnostic {
	return slices.Clone(c.diagnostics)
}

// Register requests the latest installed version of name. During installation, and for
// names that only exist as legacy bundles, the request is served from the legacy
// bundles instead of the catalog. A name with no installed version is an error.
func (c *Cycle) Register(name string) error {
	if c.finalized {
		return zerr.With(zerr.Wrap(domain.ErrCycleFinalized, "cannot register library"), "library", name)
	}
	if c.installMode || domain.IsLegacyOnly(name) {
		c.registry.EnqueueLegacy(name)
		return nil
	}
	return c.registerLatest(name)
}

// RegisterVersion requests exactly the given version of name. If it is not installed
// a not-found diagnostic is reported and the request is skipped.
func (c *Cycle) RegisterVersion(name string, version *semver.Version) error {
	return c.RegisterWithPolicy(name, version, domain.PolicyExact)
}

// RegisterWithPolicy requests the version of name chosen by policy. PolicyLatest behaves
// like Register without legacy routing; the other policies report a not-found
// diagnostic when nothing matches.
func (c *Cycle) RegisterWithPolicy(name string, version *semver.Version, policy domain.VersionPolicy) error {
	if c.finalized {
		return zerr.With(zerr.Wrap(domain.ErrCycleFinalized, "cannot register library"), "library", name)
	}
	if policy == domain.PolicyLatest {
		return c.registerLatest(name)
	}

	lib, err := c.resolver.Selector().Select(name, policy, version)
	if errors.Is(err, domain.ErrNoMatchingVersion) {
		c.report(domain.Diagnostic{
			Kind:    domain.DiagnosticNotFound,
			Library: name,
			Version: versionString(version),
			Policy:  policy.String(),
			Message: fmt.Sprintf("missing library %s %s (%s)", name, versionString(version), policy),
		})
		return nil
	}
	if err != nil {
		return err
	}

	c.registry.Enqueue(lib.ID)
	return nil
}

// Apply performs a recorded registration.
func (c *Cycle) Apply(reg domain.Registration) error {
	switch {
	case reg.HasPolicy:
		return c.RegisterWithPolicy(reg.Name, reg.Version, reg.Policy)
	case reg.Version != nil:
		return c.RegisterVersion(reg.Name, reg.Version)
	default:
		return c.Register(reg.Name)
	}
}

// IsInstalled reports whether any version of name is in the catalog.
func (c *Cycle) IsInstalled(name string) (bool, error) {
	v, err := c.InstalledVersion(name)
	return v != nil, err
}

// InstalledVersion returns the highest installed version of name, or nil if none is installed.
func (c *Cycle) InstalledVersion(name string) (*semver.Version, error) {
	lib, err := c.resolver.Selector().Latest(name)
	if err != nil || lib == nil {
		return nil, err
	}
	return lib.Version, nil
}

func (c *Cycle) registerLatest(name string) error {
	lib, err := c.resolver.Selector().Latest(name)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "catalog query failed"), "library", name)
	}
	if lib == nil {
		return zerr.With(zerr.Wrap(domain.ErrLibraryNotInstalled, "cannot register library"), "library", name)
	}
	c.registry.Enqueue(lib.ID)
	return nil
}

// Finalize expands legacy requests, resolves the catalog requests and emits every
// script. It runs at most once; later calls return domain.ErrCycleFinalized.
func (c *Cycle) Finalize(ctx context.Context) (*Result, error) {
	if c.finalized {
		return nil, zerr.With(zerr.Wrap(domain.ErrCycleFinalized, "cannot finalize cycle"), "cycle_id", c.id)
	}
	c.finalized = true

	result := &Result{CycleID: c.id}

	err := c.phase(ctx, domain.PhaseLegacy, func(v ports.Vertex) error {
		result.Legacy = resolver.ExpandLegacy(c.registry.DrainLegacy())
		for _, s := range result.Legacy {
			if err := c.emitter.EmitRaw(s.Path, s.Order, s.Location); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to emit script"), "path", s.Path)
			}
		}
		v.Log(domain.LogLevelInfo, fmt.Sprintf("%d legacy scripts", len(result.Legacy)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = c.phase(ctx, domain.PhaseResolve, func(v ports.Vertex) error {
		res, err := c.resolver.Resolve(c.registry.Requests())
		if err != nil {
			return err
		}
		result.Libraries = res.Libraries
		result.Collisions = res.Collisions
		for _, col := range res.Collisions {
			c.report(collisionDiagnostic(col))
		}
		v.Log(domain.LogLevelInfo, fmt.Sprintf("%d libraries, %d collisions", len(res.Libraries), len(res.Collisions)))
		return nil
	})
	if err != nil {
		return nil, zerr.With(err, "url", c.url)
	}

	err = c.phase(ctx, domain.PhaseEmit, func(_ ports.Vertex) error {
		for _, lib := range result.Libraries {
			order := int(lib.PackageID) + domain.LibraryOrderOffset
			if err := c.emitter.Emit(lib, order, lib.Location); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to emit library"), "library", lib.Key())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Diagnostics = c.Diagnostics()
	return result, nil
}

func (c *Cycle) phase(ctx context.Context, p domain.CyclePhase, fn func(ports.Vertex) error) error {
	_, v := c.telemetry.Record(ctx, fmt.Sprintf("%s %s [%s]", p, c.url, c.id))
	err := fn(v)
	v.Complete(err)
	return err
}

func (c *Cycle) report(d domain.Diagnostic) {
	d.CycleID = c.id
	d.Time = c.now()
	c.diagnostics = append(c.diagnostics, d)
	c.sink.Report(d)
}

func collisionDiagnostic(col domain.CollisionEvent) domain.Diagnostic {
	return domain.Diagnostic{
		Kind:    domain.DiagnosticCollision,
		Library: col.Name.String(),
		Version: versionString(col.Displaced.Version),
		Winner:  versionString(col.Winner.Version),
		Message: fmt.Sprintf("duplicate scripts requested: %s and %s, using %s",
			col.Displaced.Key(), col.Winner.Key(), col.Winner.Key()),
	}
}

func versionString(v *semver.Version) string {
	if v == nil {
		return ""
	}
	return v.String()
}
