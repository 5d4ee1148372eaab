package catalog

// File represents the structure of a YAML catalog file.
type File struct {
	Packages  []PackageDTO `yaml:"packages"`
	Libraries []LibraryDTO `yaml:"libraries"`
}

// PackageDTO represents an installed package in the catalog file.
type PackageDTO struct {
	ID           int      `yaml:"id"`
	Name         string   `yaml:"name"`
	Dependencies []string `yaml:"dependencies"`
}

// LibraryDTO represents an installed library version in the catalog file.
type LibraryDTO struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	Package  int    `yaml:"package"`
	File     string `yaml:"file"`
	Location string `yaml:"location"`
}
