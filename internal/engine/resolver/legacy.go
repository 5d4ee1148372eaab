package resolver

import "go.trai.ch/jsl/internal/core/domain"

const (
	scriptsDir = "~/Resources/Shared/Scripts/"
	jqueryDir  = scriptsDir + "jquery/"
)

var (
	jqueryBundle = []domain.LegacyScript{
		{Path: jqueryDir + "jquery.min.js", Order: domain.OrderJQuery, Location: domain.LocationHead},
		{Path: jqueryDir + "jquery-migrate.min.js", Order: domain.OrderJQueryMigrate, Location: domain.LocationHead},
	}

	jqueryUIBundle = concat(jqueryBundle, []domain.LegacyScript{
		{Path: jqueryDir + "jquery-ui.min.js", Order: domain.OrderJQueryUI, Location: domain.LocationHead},
	})

	hoverIntentBundle = []domain.LegacyScript{
		{Path: jqueryDir + "jquery.hoverIntent.min.js", Order: domain.OrderHoverIntent, Location: domain.LocationBodyTop},
	}

	legacyBundles = map[string][]domain.LegacyScript{
		domain.LegacyJQuery:   jqueryBundle,
		domain.LegacyJQueryUI: jqueryUIBundle,
		domain.LegacyDnnPlugins: concat(jqueryUIBundle, hoverIntentBundle, []domain.LegacyScript{
			{Path: scriptsDir + "dnn.jquery.js", Order: domain.OrderDefault, Location: domain.LocationBodyTop},
		}),
		domain.LegacyFileUpload: {
			{Path: jqueryDir + "jquery.iframe-transport.js", Order: domain.OrderDefault, Location: domain.LocationBodyTop},
			{Path: jqueryDir + "jquery.fileupload.js", Order: domain.OrderDefault, Location: domain.LocationBodyTop},
		},
		domain.LegacyHover: hoverIntentBundle,
	}
)

func concat(parts ...[]domain.LegacyScript) []domain.LegacyScript {
	var out []domain.LegacyScript
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// ExpandLegacy maps legacy bundle names to the raw scripts they stand for, in the
// order the names are given. Names without a bundle expand to nothing.
func ExpandLegacy(names []string) []domain.LegacyScript {
	var out []domain.LegacyScript
	for _, name := range names {
		out = append(out, legacyBundles[name]...)
	}
	return out
}

// HasLegacyBundle reports whether name has a legacy expansion.
func HasLegacyBundle(name string) bool {
	_, ok := legacyBundles[name]
	return ok
}
