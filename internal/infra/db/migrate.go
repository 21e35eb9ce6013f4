package db

import (
	"embed"
	"errors"
	"fmt"

	"bikepacking-api/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// RequiredSchemaVersion is the migration version this build expects.
// Bump it together with every new migration file.
const RequiredSchemaVersion uint = 5

var (
	ErrSchemaDirty    = errs.New("database schema is dirty")
	ErrSchemaOutdated = errs.New("database schema is older than required")
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func NewMigrator(databaseURL string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, errs.Wrap(err, "failed to create migration source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create migrator")
	}

	return m, nil
}

// RunMigrations applies every pending migration. Already up to date is not an error.
func RunMigrations(databaseURL string) error {
	m, err := NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "failed to run migrations")
	}
	return nil
}

// RollbackMigrations reverts the last n migrations; n <= 0 reverts everything.
func RollbackMigrations(databaseURL string, n int) error {
	m, err := NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if n > 0 {
		err = m.Steps(-n)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "failed to roll back migrations")
	}
	return nil
}

// SchemaVersion returns the applied version; 0 means no migration has run.
func SchemaVersion(databaseURL string) (uint, bool, error) {
	m, err := NewMigrator(databaseURL)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errs.Wrap(err, "failed to read schema version")
	}
	return version, dirty, nil
}

func CheckSchemaVersion(databaseURL string) error {
	version, dirty, err := SchemaVersion(databaseURL)
	if err != nil {
		return err
	}
	return compareSchemaVersion(version, dirty)
}

func compareSchemaVersion(version uint, dirty bool) error {
	if dirty {
		return errs.Mark(fmt.Errorf("schema version %d is dirty, fix it and rerun migrate", version), ErrSchemaDirty)
	}
	if version < RequiredSchemaVersion {
		return errs.Mark(fmt.Errorf("schema version %d, required %d: run `bikepacking-api migrate up`", version, RequiredSchemaVersion), ErrSchemaOutdated)
	}
	return nil
}
