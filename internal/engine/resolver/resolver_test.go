package resolver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports/mocks"
	"go.trai.ch/jsl/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func TestResolve_DuplicateRequestsCollapse(t *testing.T) {
	cat := newFakeCatalog(lib(1, "jQuery", "1.9.1"))

	res, err := resolver.New(cat).Resolve([]domain.LibraryID{1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"jQuery@1.9.1"}, keys(res.Libraries))
	assert.Empty(t, res.Collisions)
}

func TestResolve_UpgradeWins(t *testing.T) {
	cat := newFakeCatalog(lib(1, "X", "1.0.0"), lib(2, "X", "2.0.0"))

	res, err := resolver.New(cat).Resolve([]domain.LibraryID{1, 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"X@2.0.0"}, keys(res.Libraries))
	require.Len(t, res.Collisions, 1)
	assert.Equal(t, "X", res.Collisions[0].Name.String())
	assert.Equal(t, "X@1.0.0", res.Collisions[0].Displaced.Key())
	assert.Equal(t, "X@2.0.0", res.Collisions[0].Winner.Key())
}

func TestResolve_DowngradeIsSilent(t *testing.T) {
	cat := newFakeCatalog(lib(1, "X", "1.0.0"), lib(2, "X", "2.0.0"))

	res, err := resolver.New(cat).Resolve([]domain.LibraryID{2, 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"X@2.0.0"}, keys(res.Libraries))
	assert.Empty(t, res.Collisions)
}

func TestResolve_DependencyClosure(t *testing.T) {
	cat := newFakeCatalog(lib(1, "A", "1.0.0"), lib(2, "B", "1.0.0")).dependsOn(1, "B")

	res, err := resolver.New(cat).Resolve([]domain.LibraryID{1})
	require.NoError(t, err)

	assert.Equal(t, []string{"A@1.0.0", "B@1.0.0"}, keys(res.Libraries))
}

func TestResolve_TransitiveDependencies(t *testing.T) {
	// A -> B -> C, and C -> A closes a loop that must not be walked twice.
	cat := newFakeCatalog(
		lib(1, "A", "1.0.0"),
		lib(2, "B", "1.0.0"),
		lib(3, "C", "1.0.0"),
	).dependsOn(1, "B").dependsOn(2, "C").dependsOn(3, "A")

	res, err := resolver.New(cat).Resolve([]domain.LibraryID{1})
	require.NoError(t, err)

	assert.Equal(t, []string{"A@1.0.0", "B@1.0.0", "C@1.0.0"}, keys(res.Libraries))
}

func TestResolve_DependencyUsesLatestVersion(t *testing.T) {
	cat := newFakeCatalog(
		lib(1, "jQuery-UI", "1.11.3"),
		lib(2, "jQuery", "1.9.1"),
		lib(3, "jQuery", "1.11.1"),
		lib(4, "jQuery", "1.10.2"),
	).dependsOn(1, "jQuery")

	res, err := resolver.New(cat).Resolve([]domain.LibraryID{1})
	require.NoError(t, err)

	assert.Equal(t, []string{"jQuery-UI@1.11.3", "jQuery@1.11.1"}, keys(res.Libraries))
}

func TestResolve_DependencyUpgradesDirectRequest(t *testing.T) {
	// A direct request for an old jQuery is displaced by the latest version pulled in
	// as a dependency, and the survivor takes the dependency's position.
	cat := newFakeCatalog(
		lib(1, "jQuery", "1.9.1"),
		lib(2, "jQuery", "1.11.1"),
		lib(3, "Knockout", "3.1.0"),
		lib(4, "jQuery-UI", "1.11.3"),
	).dependsOn(4, "jQuery")

	res, err := resolver.New(cat).Resolve([]domain.LibraryID{1, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, []string{"Knockout@3.1.0", "jQuery-UI@1.11.3", "jQuery@1.11.1"}, keys(res.Libraries))
	require.Len(t, res.Collisions, 1)
	assert.Equal(t, "jQuery@1.9.1", res.Collisions[0].Displaced.Key())
	assert.Equal(t, "jQuery@1.11.1", res.Collisions[0].Winner.Key())
}

func TestResolve_StableFirstAppearanceOrder(t *testing.T) {
	cat := newFakeCatalog(lib(1, "A", "1.0.0"), lib(2, "B", "1.0.0"), lib(3, "C", "1.0.0"))

	res, err := resolver.New(cat).Resolve([]domain.LibraryID{3, 1, 3, 2, 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"C@1.0.0", "A@1.0.0", "B@1.0.0"}, keys(res.Libraries))
}

func TestResolve_UnknownID(t *testing.T) {
	cat := newFakeCatalog(lib(1, "A", "1.0.0"))

	_, err := resolver.New(cat).Resolve([]domain.LibraryID{1, 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLibraryNotFound)
}

func TestResolve_DependencyNotInstalled(t *testing.T) {
	cat := newFakeCatalog(lib(1, "A", "1.0.0")).dependsOn(1, "Missing")

	_, err := resolver.New(cat).Resolve([]domain.LibraryID{1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyNotInstalled)
}

func TestResolve_EmptyRequests(t *testing.T) {
	res, err := resolver.New(newFakeCatalog()).Resolve(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Libraries)
	assert.Empty(t, res.Collisions)
}

func TestResolve_CatalogFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)
	boom := errors.New("database is locked")

	a := lib(1, "A", "1.0.0")
	cat.EXPECT().ByID(domain.LibraryID(1)).Return(&a, nil)
	cat.EXPECT().PackageDependencies(domain.PackageID(1)).Return(nil, boom)

	_, err := resolver.New(cat).Resolve([]domain.LibraryID{1})
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "catalog query failed")
}
