package catalog

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	_ "github.com/ncruces/go-sqlite3/driver" // registers the sqlite3 database/sql driver
	_ "github.com/ncruces/go-sqlite3/embed"  // embeds the SQLite build
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/zerr"
)

const schema = `
CREATE TABLE IF NOT EXISTS packages (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS package_dependencies (
	package_id INTEGER NOT NULL REFERENCES packages(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	PRIMARY KEY (package_id, position)
);

CREATE TABLE IF NOT EXISTS libraries (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	version TEXT NOT NULL,
	package_id INTEGER NOT NULL REFERENCES packages(id),
	file_name TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT 'bodybottom',
	UNIQUE (name, version)
);

CREATE INDEX IF NOT EXISTS libraries_by_name ON libraries (name, id);
`

const selectLibrary = `SELECT id, name, version, package_id, file_name, location FROM libraries`

// SQLite is a catalog stored in a SQLite database. Snapshots are validated like a
// Memory catalog before import, so stored (name, version) pairs are unique under
// semver precedence.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens, and creates if needed, the SQLite catalog at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create catalog directory"), "path", path)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open catalog database"), "path", path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to connect to catalog database"), "path", path)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to migrate catalog database"), "path", path)
	}

	return &SQLite{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Import replaces the catalog content with snapshot in a single transaction.
func (s *SQLite) Import(ctx context.Context, snapshot *domain.CatalogSnapshot) (err error) {
	// Validate before touching the database.
	if _, err := NewMemory(snapshot); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, "failed to begin catalog import")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range []string{
		`DELETE FROM libraries`,
		`DELETE FROM package_dependencies`,
		`DELETE FROM packages`,
	} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return zerr.Wrap(err, "failed to clear catalog")
		}
	}

	for _, pkg := range snapshot.Packages {
		if _, err = tx.ExecContext(ctx, `INSERT INTO packages (id, name) VALUES (?, ?)`,
			int(pkg.ID), pkg.Name.String()); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to insert package"), "package", pkg.Name.String())
		}
		for pos, dep := range pkg.Dependencies {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO package_dependencies (package_id, position, name) VALUES (?, ?, ?)`,
				int(pkg.ID), pos, dep.Name.String()); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to insert package dependency"), "package", pkg.Name.String())
			}
		}
	}

	for _, lib := range snapshot.Libraries {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO libraries (id, name, version, package_id, file_name, location) VALUES (?, ?, ?, ?, ?, ?)`,
			int(lib.ID), lib.Name.String(), lib.Version.String(), int(lib.PackageID),
			lib.FileName, lib.Location.String()); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to insert library"), "library", lib.Key())
		}
	}

	if err = tx.Commit(); err != nil {
		return zerr.Wrap(err, "failed to commit catalog import")
	}
	return nil
}

// ByID returns the library with the given id.
func (s *SQLite) ByID(id domain.LibraryID) (*domain.Library, error) {
	return s.queryOne(selectLibrary+` WHERE id = ?`, int(id))
}

// ByName returns every installed version of name in ascending id order.
func (s *SQLite) ByName(name string) ([]domain.Library, error) {
	return s.queryMany(selectLibrary+` WHERE name = ? ORDER BY id`, name)
}

// ByNameAndVersion returns the library of name whose version equals version.
// Versions are stored as text, so equality is decided in Go: build metadata is ignored.
func (s *SQLite) ByNameAndVersion(name string, version *semver.Version) (*domain.Library, error) {
	return s.firstByName(name, version.Equal)
}

// ByMajorAtLeast returns the first library of name whose major version is at least major.
func (s *SQLite) ByMajorAtLeast(name string, major uint64) (*domain.Library, error) {
	return s.firstByName(name, func(v *semver.Version) bool { return v.Major() >= major })
}

// ByMinorAtLeast returns the first library of name whose minor version is at least minor.
func (s *SQLite) ByMinorAtLeast(name string, minor uint64) (*domain.Library, error) {
	return s.firstByName(name, func(v *semver.Version) bool { return v.Minor() >= minor })
}

// PackageDependencies returns the dependency edges of a package in declaration order.
func (s *SQLite) PackageDependencies(id domain.PackageID) ([]domain.PackageDependency, error) {
	rows, err := s.db.Query(`SELECT name FROM package_dependencies WHERE package_id = ? ORDER BY position`, int(id))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query package dependencies")
	}
	defer func() { _ = rows.Close() }()

	var deps []domain.PackageDependency
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, zerr.Wrap(err, "failed to scan package dependency")
		}
		deps = append(deps, domain.PackageDependency{Name: domain.NewInternedString(name)})
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read package dependencies")
	}
	return deps, nil
}

// Snapshot returns the full catalog content in ascending id order.
func (s *SQLite) Snapshot() (*domain.CatalogSnapshot, error) {
	rows, err := s.db.Query(`SELECT id, name FROM packages ORDER BY id`)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query packages")
	}
	defer func() { _ = rows.Close() }()

	snapshot := &domain.CatalogSnapshot{}
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, zerr.Wrap(err, "failed to scan package")
		}
		snapshot.Packages = append(snapshot.Packages, domain.Package{
			ID:   domain.PackageID(id),
			Name: domain.NewInternedString(name),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read packages")
	}

	for i := range snapshot.Packages {
		deps, err := s.PackageDependencies(snapshot.Packages[i].ID)
		if err != nil {
			return nil, err
		}
		snapshot.Packages[i].Dependencies = deps
	}

	snapshot.Libraries, err = s.queryMany(selectLibrary + ` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *SQLite) firstByName(name string, match func(*semver.Version) bool) (*domain.Library, error) {
	libs, err := s.ByName(name)
	if err != nil {
		return nil, err
	}
	for i := range libs {
		if match(libs[i].Version) {
			return &libs[i], nil
		}
	}
	return nil, nil
}

func (s *SQLite) queryOne(query string, args ...any) (*domain.Library, error) {
	lib, err := scanLibrary(s.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lib, nil
}

func (s *SQLite) queryMany(query string, args ...any) ([]domain.Library, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query libraries")
	}
	defer func() { _ = rows.Close() }()

	var libs []domain.Library
	for rows.Next() {
		lib, err := scanLibrary(rows)
		if err != nil {
			return nil, err
		}
		libs = append(libs, lib)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read libraries")
	}
	return libs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLibrary(row scanner) (domain.Library, error) {
	var (
		id, pkg                          int
		name, version, file, locationStr string
	)
	if err := row.Scan(&id, &name, &version, &pkg, &file, &locationStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Library{}, err
		}
		return domain.Library{}, zerr.Wrap(err, "failed to scan library")
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return domain.Library{}, zerr.With(zerr.Wrap(err, "invalid library version in catalog"), "library", name)
	}
	location, err := domain.ParseScriptLocation(locationStr)
	if err != nil {
		return domain.Library{}, zerr.With(err, "library", name)
	}

	return domain.Library{
		ID:        domain.LibraryID(id),
		Name:      domain.NewInternedString(name),
		Version:   v,
		PackageID: domain.PackageID(pkg),
		FileName:  file,
		Location:  location,
	}, nil
}
