package render

import (
	"html/template"
	"io"
	"strings"

	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/zerr"
)

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"src": scriptSource,
}).Parse(`{{range .}}<div data-page="{{.URL}}" data-cycle="{{.CycleID}}" data-fingerprint="{{.Manifest.Fingerprint}}">
{{range .Manifest.Entries}}<script src="{{src .Path}}" data-provider="{{.Provider}}" data-order="{{.Order}}"></script>
{{end}}</div>
{{end}}`))

// HTML renders the script tags each page would contain.
type HTML struct{}

// NewHTML creates a new HTML renderer.
func NewHTML() *HTML { return &HTML{} }

// Render writes the script tags of each report inside a div carrying the page metadata.
func (HTML) Render(w io.Writer, reports []domain.PageReport) error {
	if err := pageTemplate.Execute(w, reports); err != nil {
		return zerr.Wrap(err, "failed to render script tags")
	}
	return nil
}

// scriptSource turns an application-relative path into a site-absolute one.
func scriptSource(path string) string {
	return strings.TrimPrefix(path, "~")
}
