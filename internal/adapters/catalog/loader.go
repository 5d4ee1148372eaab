package catalog

import (
	"os"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML catalog file and returns its content.
func LoadFile(path string) (*domain.CatalogSnapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read catalog file"), "path", path)
	}

	snapshot, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return snapshot, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*domain.CatalogSnapshot, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse catalog file")
	}

	snapshot := &domain.CatalogSnapshot{
		Packages:  make([]domain.Package, 0, len(file.Packages)),
		Libraries: make([]domain.Library, 0, len(file.Libraries)),
	}

	for _, dto := range file.Packages {
		if dto.Name == "" {
			return nil, zerr.With(zerr.New("package name is empty"), "package_id", dto.ID)
		}
		pkg := domain.Package{
			ID:   domain.PackageID(dto.ID),
			Name: domain.NewInternedString(dto.Name),
		}
		for _, dep := range dto.Dependencies {
			pkg.Dependencies = append(pkg.Dependencies, domain.PackageDependency{Name: domain.NewInternedString(dep)})
		}
		snapshot.Packages = append(snapshot.Packages, pkg)
	}

	for _, dto := range file.Libraries {
		lib, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		snapshot.Libraries = append(snapshot.Libraries, lib)
	}

	return snapshot, nil
}

func (dto LibraryDTO) toDomain() (domain.Library, error) {
	if dto.Name == "" {
		return domain.Library{}, zerr.With(zerr.New("library name is empty"), "library_id", dto.ID)
	}

	version, err := semver.NewVersion(dto.Version)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "invalid library version"), "library", dto.Name)
		return domain.Library{}, zerr.With(err, "version", dto.Version)
	}

	location, err := domain.ParseScriptLocation(dto.Location)
	if err != nil {
		return domain.Library{}, zerr.With(err, "library", dto.Name)
	}

	return domain.Library{
		ID:        domain.LibraryID(dto.ID),
		Name:      domain.NewInternedString(dto.Name),
		Version:   version,
		PackageID: domain.PackageID(dto.Package),
		FileName:  dto.File,
		Location:  location,
	}, nil
}

// ToFile converts a snapshot back into its YAML document form.
func ToFile(snapshot *domain.CatalogSnapshot) File {
	file := File{
		Packages:  make([]PackageDTO, 0, len(snapshot.Packages)),
		Libraries: make([]LibraryDTO, 0, len(snapshot.Libraries)),
	}
	for _, pkg := range snapshot.Packages {
		dto := PackageDTO{ID: int(pkg.ID), Name: pkg.Name.String()}
		for _, dep := range pkg.Dependencies {
			dto.Dependencies = append(dto.Dependencies, dep.Name.String())
		}
		file.Packages = append(file.Packages, dto)
	}
	for _, lib := range snapshot.Libraries {
		file.Libraries = append(file.Libraries, LibraryDTO{
			ID:       int(lib.ID),
			Name:     lib.Name.String(),
			Version:  lib.Version.Original(),
			Package:  int(lib.PackageID),
			File:     lib.FileName,
			Location: lib.Location.String(),
		})
	}
	return file
}
