package ports

import (
	"io"

	"go.trai.ch/jsl/internal/core/domain"
)

// Renderer writes page reports in a presentation format.
type Renderer interface {
	Render(w io.Writer, reports []domain.PageReport) error
}
