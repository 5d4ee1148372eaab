package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/ui/output"
	"go.trai.ch/jsl/internal/ui/style"
)

// Text renders reports as styled, human-readable text.
type Text struct{}

// NewText creates a new Text renderer.
func NewText() *Text { return &Text{} }

// Render writes reports to w, one block per page.
func (Text) Render(w io.Writer, reports []domain.PageReport) error {
	re := lipgloss.NewRenderer(w)
	re.SetColorProfile(output.ColorProfile())

	title := re.NewStyle().Bold(true).Foreground(style.Iris)
	muted := re.NewStyle().Foreground(style.Slate)
	ok := re.NewStyle().Foreground(style.Green)
	warn := re.NewStyle().Foreground(style.Yellow)

	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		header := style.Dot + " " + r.URL
		if r.Source != "" {
			header += " (" + r.Source + ")"
		}
		b.WriteString(title.Render(header) + "\n")

		meta := "cycle " + r.CycleID + "  fingerprint " + r.Manifest.Fingerprint
		if r.InstallMode {
			meta += "  install mode"
		}
		b.WriteString("  " + muted.Render(meta) + "\n")

		location := ""
		for _, e := range r.Manifest.Entries {
			if e.Location != location {
				location = e.Location
				b.WriteString("  " + muted.Render(location+" "+style.Arrow+" "+e.Provider) + "\n")
			}
			name := e.Path
			if e.Kind == domain.EntryLibrary {
				name = e.Library + "@" + e.Version + "  " + muted.Render(e.Path)
			}
			fmt.Fprintf(&b, "    %s %4d  %s\n", ok.Render(style.Check), e.Order, name)
		}

		for _, d := range r.Diagnostics {
			b.WriteString("  " + warn.Render(style.Warning+" "+string(d.Kind)+": "+d.Message) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
