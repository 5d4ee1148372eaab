package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// LibraryID identifies a library record in the catalog.
type LibraryID int

// PackageID identifies the installed package a library was shipped in.
type PackageID int

// Library is a single installed version of a named script library.
// The pair (Name, Version) is unique within a catalog.
type Library struct {
	ID        LibraryID
	Name      InternedString
	Version   *semver.Version
	PackageID PackageID
	FileName  string
	Location  ScriptLocation
}

// Key returns the "name@version" form used in diagnostics and logs.
func (l Library) Key() string {
	if l.Version == nil {
		return l.Name.String()
	}
	return l.Name.String() + "@" + l.Version.String()
}

// Package is an installed extension package. Its dependency edges name other
// libraries that must be loaded whenever one of its libraries is.
type Package struct {
	ID           PackageID
	Name         InternedString
	Dependencies []PackageDependency
}

// PackageDependency is a dependency edge from a package to a library name.
type PackageDependency struct {
	Name InternedString
}

// ScriptLocation is the preferred place in the page a script is loaded.
type ScriptLocation int

const (
	// LocationBodyTop loads the script at the top of the page body.
	LocationBodyTop ScriptLocation = iota
	// LocationHead loads the script in the page header.
	LocationHead
	// LocationBodyBottom loads the script at the bottom of the page form.
	LocationBodyBottom
)

// String returns the configuration spelling of the location.
func (l ScriptLocation) String() string {
	switch l {
	case LocationHead:
		return "head"
	case LocationBodyBottom:
		return "bodybottom"
	default:
		return "bodytop"
	}
}

// Provider returns the name of the page provider that renders scripts at this location.
func (l ScriptLocation) Provider() string {
	switch l {
	case LocationHead:
		return "DnnPageHeaderProvider"
	case LocationBodyBottom:
		return "DnnFormBottomProvider"
	default:
		return "DnnBodyProvider"
	}
}

// ParseScriptLocation parses a location name. An empty string yields LocationBodyBottom,
// the default preferred location of catalog libraries.
func ParseScriptLocation(s string) (ScriptLocation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bodybottom", "body-bottom", "bottom":
		return LocationBodyBottom, nil
	case "head", "pagehead":
		return LocationHead, nil
	case "bodytop", "body-top", "body":
		return LocationBodyTop, nil
	default:
		return LocationBodyTop, zerr.With(ErrUnknownLocation, "location", s)
	}
}
