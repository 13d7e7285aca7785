package database

import (
	"context"
	"embed"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/Ayushpund/Acharya/core"
)

const driverName = "sqlite3"

//go:embed migrations/*.sql
var migrations embed.FS

var (
	gooseUpFunc  = goose.Up         // mockable
	gooseRunFunc = goose.RunContext // mockable
)

// Open opens (creating it if needed) the local SQLite database at path and migrates it.
func Open(path string) (*sqlx.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, errors.Wrap(err, "creating database directory")
		}
	}

	db, err := sqlx.Connect(driverName, path+"?_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	// a single writer; sqlite serializes anyway
	db.SetMaxOpenConns(1)

	if err = Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenFromConfig resolves store.path against the working directory and opens it.
func OpenFromConfig(conf *core.Config) (*sqlx.DB, error) {
	path := conf.Store.Path
	if path != ":memory:" && !filepath.IsAbs(path) {
		path = filepath.Join(conf.WorkDir, path)
	}
	return Open(path)
}

func Migrate(db *sqlx.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(driverName); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	if err := gooseUpFunc(db.DB, "migrations"); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}

// RunMigrations runs a goose command (up, down, status, version...) against the embedded migrations.
func RunMigrations(ctx context.Context, db *sqlx.DB, command string, args ...string) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(driverName); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	return gooseRunFunc(ctx, command, db.DB, "migrations", args...)
}
