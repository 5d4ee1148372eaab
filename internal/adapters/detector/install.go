// Package detector classifies requests and the output environment.
package detector

import "strings"

// InstallDetector implements ports.InstallDetector by matching URL fragments.
type InstallDetector struct {
	patterns []string
}

// NewInstallDetector creates a detector matching any of the given fragments,
// case-insensitively. Empty fragments are ignored.
func NewInstallDetector(patterns []string) *InstallDetector {
	d := &InstallDetector{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			d.patterns = append(d.patterns, p)
		}
	}
	return d
}

// IsInstallRequest reports whether url contains one of the install fragments.
func (d *InstallDetector) IsInstallRequest(url string) bool {
	lower := strings.ToLower(url)
	for _, p := range d.patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
