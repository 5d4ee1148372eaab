// Package config loads tool settings and recorded page request files.
package config

import (
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultPageURL is used for page files that do not name a URL.
const DefaultPageURL = "/Default.aspx"

// FilePageLoader implements ports.PageLoader using YAML files.
type FilePageLoader struct{}

// NewPageLoader creates a new FilePageLoader.
func NewPageLoader() *FilePageLoader {
	return &FilePageLoader{}
}

// Load reads the page request file at path.
func (l *FilePageLoader) Load(path string) (*domain.Page, error) {
	return LoadPage(path)
}

// LoadPage reads a page request file from the given path and returns a domain.Page.
func LoadPage(path string) (*domain.Page, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read page file"), "path", path)
	}

	var file PageFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse page file"), "path", path)
	}

	page := &domain.Page{
		Source:        path,
		URL:           strings.TrimSpace(file.URL),
		Registrations: make([]domain.Registration, 0, len(file.Requests)),
	}
	if page.URL == "" {
		page.URL = DefaultPageURL
	}

	for i, dto := range file.Requests {
		reg, err := dto.toDomain()
		if err != nil {
			err = zerr.With(err, "path", path)
			return nil, zerr.With(err, "request", i)
		}
		page.Registrations = append(page.Registrations, reg)
	}

	return page, nil
}

func (dto RequestDTO) toDomain() (domain.Registration, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return domain.Registration{}, zerr.New("library name is empty")
	}
	reg := domain.Registration{Name: name}

	if dto.Version != "" {
		v, err := semver.NewVersion(dto.Version)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "invalid library version"), "library", name)
			return domain.Registration{}, zerr.With(err, "version", dto.Version)
		}
		reg.Version = v
	}

	if dto.Policy != "" {
		policy, err := domain.ParseVersionPolicy(dto.Policy)
		if err != nil {
			return domain.Registration{}, zerr.With(err, "library", name)
		}
		if policy != domain.PolicyLatest && reg.Version == nil {
			err := zerr.Wrap(domain.ErrMissingVersion, "invalid registration")
			err = zerr.With(err, "library", name)
			return domain.Registration{}, zerr.With(err, "policy", policy.String())
		}
		reg.Policy = policy
		reg.HasPolicy = true
	}

	return reg, nil
}
