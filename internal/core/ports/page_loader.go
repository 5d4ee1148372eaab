package ports

import "go.trai.ch/jsl/internal/core/domain"

// PageLoader reads recorded page requests.
//
//go:generate mockgen -source=page_loader.go -destination=mocks/mock_page_loader.go -package=mocks
type PageLoader interface {
	// Load reads the page request file at path.
	Load(path string) (*domain.Page, error)
}
