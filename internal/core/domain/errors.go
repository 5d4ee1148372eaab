package domain

import "go.trai.ch/zerr"

var (
	// ErrLibraryNotFound is returned when a registered library id is not present in the catalog.
	ErrLibraryNotFound = zerr.New("library not found")

	// ErrDependencyNotInstalled is returned when a package declares a dependency on a library
	// name that has no record in the catalog.
	ErrDependencyNotInstalled = zerr.New("dependency library not installed")

	// ErrLibraryNotInstalled is returned when the latest version of a library is requested
	// but no version of it is installed.
	ErrLibraryNotInstalled = zerr.New("library not installed")

	// ErrNoMatchingVersion is returned by the version selector when no record satisfies the policy.
	ErrNoMatchingVersion = zerr.New("no library version matches the requested policy")

	// ErrMissingVersion is returned when a version-constrained policy is used without a version.
	ErrMissingVersion = zerr.New("version is required for this policy")

	// ErrUnknownPolicy is returned when a version policy cannot be parsed.
	ErrUnknownPolicy = zerr.New("unknown version policy")

	// ErrUnknownLocation is returned when a script location cannot be parsed.
	ErrUnknownLocation = zerr.New("unknown script location")

	// ErrCycleFinalized is returned when a registration or finalize call is made on a cycle
	// that has already been finalized.
	ErrCycleFinalized = zerr.New("request cycle already finalized")

	// ErrDuplicateLibrary is returned when a catalog contains the same library id, or the same
	// name and version, more than once.
	ErrDuplicateLibrary = zerr.New("duplicate library in catalog")

	// ErrUnknownPackage is returned when a library references a package the catalog does not define.
	ErrUnknownPackage = zerr.New("library references unknown package")

	// ErrNoPagesSpecified is returned when resolve is invoked without any page request files.
	ErrNoPagesSpecified = zerr.New("no page request files specified")

	// ErrResolutionFailed is returned when at least one page failed to resolve.
	// The individual failures have already been reported to the user.
	ErrResolutionFailed = zerr.New("resolution failed")
)
