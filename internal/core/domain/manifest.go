package domain

// EntryKind distinguishes catalog libraries from raw script paths in a manifest.
type EntryKind string

const (
	// EntryLibrary is a script emitted for a resolved catalog library.
	EntryLibrary EntryKind = "library"
	// EntryRaw is a script emitted by path, bypassing the catalog.
	EntryRaw EntryKind = "raw"
)

// ManifestEntry is one script registration handed to the page.
type ManifestEntry struct {
	Kind     EntryKind `json:"kind"`
	Library  string    `json:"library,omitempty"`
	Version  string    `json:"version,omitempty"`
	Path     string    `json:"path"`
	Order    int       `json:"order"`
	Location string    `json:"location"`
	Provider string    `json:"provider"`
}

// Manifest is the ordered set of scripts registered during one cycle.
type Manifest struct {
	Entries     []ManifestEntry `json:"entries"`
	Fingerprint string          `json:"fingerprint"`
}

// PageReport is everything a finalized cycle produced for one page.
type PageReport struct {
	CycleID     string       `json:"cycle_id"`
	Source      string       `json:"source,omitempty"`
	URL         string       `json:"url"`
	InstallMode bool         `json:"install_mode"`
	Manifest    Manifest     `json:"manifest"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}
