package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/engine/resolver"
)

func paths(scripts []domain.LegacyScript) []string {
	out := make([]string, 0, len(scripts))
	for _, s := range scripts {
		out = append(out, s.Path)
	}
	return out
}

func TestExpandLegacy(t *testing.T) {
	const (
		jq      = "~/Resources/Shared/Scripts/jquery/jquery.min.js"
		migrate = "~/Resources/Shared/Scripts/jquery/jquery-migrate.min.js"
		ui      = "~/Resources/Shared/Scripts/jquery/jquery-ui.min.js"
		hover   = "~/Resources/Shared/Scripts/jquery/jquery.hoverIntent.min.js"
		plugins = "~/Resources/Shared/Scripts/dnn.jquery.js"
		iframe  = "~/Resources/Shared/Scripts/jquery/jquery.iframe-transport.js"
		upload  = "~/Resources/Shared/Scripts/jquery/jquery.fileupload.js"
	)

	tests := []struct {
		name     string
		expected []string
	}{
		{domain.LegacyJQuery, []string{jq, migrate}},
		{domain.LegacyJQueryUI, []string{jq, migrate, ui}},
		{domain.LegacyDnnPlugins, []string{jq, migrate, ui, hover, plugins}},
		{domain.LegacyFileUpload, []string{iframe, upload}},
		{domain.LegacyHover, []string{hover}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, paths(resolver.ExpandLegacy([]string{tt.name})))
			assert.True(t, resolver.HasLegacyBundle(tt.name))
		})
	}
}

func TestExpandLegacy_OrderKeysAndLocations(t *testing.T) {
	got := resolver.ExpandLegacy([]string{domain.LegacyDnnPlugins})

	assert.Equal(t, []domain.LegacyScript{
		{Path: "~/Resources/Shared/Scripts/jquery/jquery.min.js", Order: 5, Location: domain.LocationHead},
		{Path: "~/Resources/Shared/Scripts/jquery/jquery-migrate.min.js", Order: 6, Location: domain.LocationHead},
		{Path: "~/Resources/Shared/Scripts/jquery/jquery-ui.min.js", Order: 10, Location: domain.LocationHead},
		{Path: "~/Resources/Shared/Scripts/jquery/jquery.hoverIntent.min.js", Order: 55, Location: domain.LocationBodyTop},
		{Path: "~/Resources/Shared/Scripts/dnn.jquery.js", Order: 100, Location: domain.LocationBodyTop},
	}, got)
}

func TestExpandLegacy_UnknownAndMultiple(t *testing.T) {
	assert.Empty(t, resolver.ExpandLegacy([]string{"Knockout"}))
	assert.False(t, resolver.HasLegacyBundle("Knockout"))

	got := resolver.ExpandLegacy([]string{domain.LegacyHover, "Knockout", domain.LegacyJQuery})
	assert.Equal(t, []string{
		"~/Resources/Shared/Scripts/jquery/jquery.hoverIntent.min.js",
		"~/Resources/Shared/Scripts/jquery/jquery.min.js",
		"~/Resources/Shared/Scripts/jquery/jquery-migrate.min.js",
	}, paths(got))
}
