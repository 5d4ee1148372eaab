package domain

// Names of the script bundles that predate the library catalog.
const (
	LegacyJQuery     = "jQuery"
	LegacyJQueryUI   = "jQuery-UI"
	LegacyDnnPlugins = "DnnPlugins"
	LegacyFileUpload = "jQuery-File-Upload"
	LegacyHover      = "HoverIntent"
)

// Load order keys for raw scripts. Lower keys load first.
const (
	OrderJQuery        = 5
	OrderJQueryMigrate = 6
	OrderJQueryUI      = 10
	OrderHoverIntent   = 55
	OrderDefault       = 100

	// LibraryOrderOffset is added to a library's package id to form its order key,
	// placing catalog libraries after the built-in scripts.
	LibraryOrderOffset = 500
)

// LegacyScript is one file of an expanded legacy bundle.
type LegacyScript struct {
	Path     string
	Order    int
	Location ScriptLocation
}

// IsLegacyOnly reports whether a name is always served from the legacy bundles,
// regardless of the catalog.
func IsLegacyOnly(name string) bool {
	switch name {
	case LegacyDnnPlugins, LegacyHover, LegacyFileUpload:
		return true
	default:
		return false
	}
}
