package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jsl/internal/adapters/detector"
	"go.trai.ch/jsl/internal/core/domain"
)

func TestInstallDetector(t *testing.T) {
	d := detector.NewInstallDetector(domain.DefaultInstallURLPatterns())

	tests := []struct {
		url  string
		want bool
	}{
		{"/Install/Install.aspx?mode=install", true},
		{"/install/installwizard.aspx", true},
		{"/INSTALL/INSTALLWIZARD.ASPX", true},
		{"/Default.aspx", false},
		{"/Admin/Extensions.aspx", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, d.IsInstallRequest(tt.url))
		})
	}
}

func TestInstallDetector_EmptyPatterns(t *testing.T) {
	d := detector.NewInstallDetector([]string{"", "  "})
	assert.False(t, d.IsInstallRequest("/install.aspx"))
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.FormatJSON, detector.DetectEnvironment())

	t.Setenv("CI", "1")
	assert.Equal(t, detector.FormatJSON, detector.DetectEnvironment())
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputFormat
		userFlag     string
		expected     detector.OutputFormat
	}{
		{"auto keeps text", detector.FormatText, "auto", detector.FormatText},
		{"auto keeps json", detector.FormatJSON, "auto", detector.FormatJSON},
		{"empty keeps detection", detector.FormatText, "", detector.FormatText},
		{"json overrides", detector.FormatText, "json", detector.FormatJSON},
		{"text overrides", detector.FormatJSON, "text", detector.FormatText},
		{"html overrides", detector.FormatJSON, "HTML", detector.FormatHTML},
		{"unknown falls back", detector.FormatJSON, "xml", detector.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveFormat(tt.autoDetected, tt.userFlag))
		})
	}
}
