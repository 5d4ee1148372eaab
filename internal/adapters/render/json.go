package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/zerr"
)

// JSON renders reports as an indented JSON array.
type JSON struct{}

// NewJSON creates a new JSON renderer.
func NewJSON() *JSON { return &JSON{} }

// Render writes reports to w.
func (JSON) Render(w io.Writer, reports []domain.PageReport) error {
	if reports == nil {
		reports = []domain.PageReport{}
	}
	for i := range reports {
		if reports[i].Diagnostics == nil {
			reports[i].Diagnostics = []domain.Diagnostic{}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return zerr.Wrap(err, "failed to encode reports")
	}
	return nil
}
