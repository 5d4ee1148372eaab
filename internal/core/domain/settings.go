package domain

import "time"

// Settings are the tool-wide options loaded from the settings file and environment.
type Settings struct {
	CatalogPath        string
	CacheTTL           time.Duration
	InstallURLPatterns []string
	EventLogPath       string
	EventLogEnabled    bool
	JSONLogs           bool
	OutputFormat       string
	Concurrency        int
}

// Default settings values.
const (
	DefaultCatalogPath  = "catalog.yaml"
	DefaultCacheTTL     = 5 * time.Minute
	DefaultEventLogPath = ".jsl/events.json"
	DefaultOutputFormat = "auto"
)

// DefaultInstallURLPatterns are the request paths that mark a cycle as running the installer.
func DefaultInstallURLPatterns() []string {
	return []string{"/install.aspx", "/installwizard.aspx"}
}
