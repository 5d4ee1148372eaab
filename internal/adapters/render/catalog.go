package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/jsl/internal/adapters/catalog"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/ui/output"
	"go.trai.ch/jsl/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CatalogTable writes the libraries of snapshot as a table, in snapshot order.
func CatalogTable(w io.Writer, snapshot *domain.CatalogSnapshot) error {
	re := lipgloss.NewRenderer(w)
	re.SetColorProfile(output.ColorProfile())
	header := re.NewStyle().Bold(true).Foreground(style.Iris).Padding(0, 1)
	cell := re.NewStyle().Padding(0, 1)

	packages := make(map[domain.PackageID]domain.Package, len(snapshot.Packages))
	for _, p := range snapshot.Packages {
		packages[p.ID] = p
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(style.Slate)).
		Headers("ID", "NAME", "VERSION", "PACKAGE", "FILE", "LOCATION", "DEPENDS ON").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, lib := range snapshot.Libraries {
		pkg := packages[lib.PackageID]
		deps := make([]string, 0, len(pkg.Dependencies))
		for _, d := range pkg.Dependencies {
			deps = append(deps, d.Name.String())
		}
		t.Row(
			strconv.Itoa(int(lib.ID)),
			lib.Name.String(),
			lib.Version.String(),
			pkg.Name.String(),
			lib.FileName,
			lib.Location.String(),
			strings.Join(deps, ", "),
		)
	}

	_, err := io.WriteString(w, t.String()+"\n")
	return err
}

// CatalogYAML writes snapshot in the catalog file format, so the output can be loaded again.
func CatalogYAML(w io.Writer, snapshot *domain.CatalogSnapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalog.ToFile(snapshot)); err != nil {
		return zerr.Wrap(err, "failed to encode catalog")
	}
	return enc.Close()
}
