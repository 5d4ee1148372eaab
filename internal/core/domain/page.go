package domain

import "github.com/Masterminds/semver/v3"

// Registration is a single script request made by a page component.
type Registration struct {
	Name string
	// Version is nil for a bare name registration.
	Version *semver.Version
	// Policy is only meaningful when HasPolicy is set; a versioned registration
	// without a policy is an exact request.
	Policy    VersionPolicy
	HasPolicy bool
}

// Page is a recorded request: its URL and the registrations its components made,
// in the order they were made.
type Page struct {
	Source        string
	URL           string
	Registrations []Registration
}

// CatalogSnapshot is a complete, in-memory description of the installed packages and libraries.
type CatalogSnapshot struct {
	Packages  []Package
	Libraries []Library
}
