// Package render writes page reports as text, JSON or HTML.
package render

import (
	"go.trai.ch/jsl/internal/adapters/detector"
	"go.trai.ch/jsl/internal/core/ports"
	"go.trai.ch/zerr"
)

// New returns the renderer for format. FormatAuto must be resolved by the caller.
func New(format detector.OutputFormat) (ports.Renderer, error) {
	switch format {
	case detector.FormatText:
		return NewText(), nil
	case detector.FormatJSON:
		return NewJSON(), nil
	case detector.FormatHTML:
		return NewHTML(), nil
	default:
		return nil, zerr.With(zerr.New("unsupported output format"), "format", string(format))
	}
}
