package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core"
)

// errDBClosed is the message database/sql returns once the pool is closed; it has no exported sentinel.
const errDBClosed = "sql: database is closed"

type kvStore struct {
	db *sqlx.DB
}

var _ core.KVStore = (*kvStore)(nil)

// NewKVStore returns a core.KVStore persisting to the kv table of db.
func NewKVStore(db *sqlx.DB) core.KVStore {
	return &kvStore{db: db}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return "", core.ErrKeyNotFound
	}
	if err != nil {
		return "", storeError(err, "selecting "+key)
	}
	return value, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	q := `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, q, key, value, time.Now().UTC()); err != nil {
		return storeError(err, "upserting "+key)
	}
	return nil
}

func (s *kvStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	q, args, err := sqlx.In(`DELETE FROM kv WHERE key IN (?)`, keys)
	if err != nil {
		return errors.Wrap(err, "building delete query")
	}
	if _, err = s.db.ExecContext(ctx, s.db.Rebind(q), args...); err != nil {
		return storeError(err, "deleting keys")
	}
	return nil
}

func (s *kvStore) Close() error {
	return s.db.Close()
}

// storeError wraps err with op, marking it unrecoverable when the database is gone or damaged.
func storeError(err error, op string) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrCorrupt, sqlite3.ErrNotADB, sqlite3.ErrIoErr, sqlite3.ErrCantOpen:
			return core.NewShutdownError(op, err)
		}
	}
	if errors.Is(err, sql.ErrConnDone) || err.Error() == errDBClosed {
		return core.NewShutdownError(op, err)
	}
	return errors.Wrap(err, op)
}
