package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/sentenizer/pkg/sentenizer/abbrev"
	"github.com/cognicore/sentenizer/pkg/sentenizer/internalerr"
	"github.com/cognicore/sentenizer/pkg/sentenizer/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates the
// abbreviations table if needed.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS abbreviations (
	class TEXT NOT NULL,
	term TEXT NOT NULL,
	PRIMARY KEY(class, term)
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertTable replaces the keys of one class in a single transaction.
// Keys are validated and normalized the same way abbrev.NewTables does.
func (s *sqliteStore) UpsertTable(ctx context.Context, class abbrev.Class, keys []string) error {
	tables, err := abbrev.NewTables(map[abbrev.Class][]string{class: keys})
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM abbreviations WHERE class=?`, class.String()); err != nil {
		return err
	}

	normalized := tables.Keys(class)
	if len(normalized) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO abbreviations (class, term) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, key := range normalized {
			if _, err := stmt.ExecContext(ctx, class.String(), key); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Keys returns the sorted keys of one class.
func (s *sqliteStore) Keys(ctx context.Context, class abbrev.Class) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT term FROM abbreviations WHERE class=? ORDER BY term`, class.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// LoadTables reads every class and builds immutable tables.
func (s *sqliteStore) LoadTables(ctx context.Context) (*abbrev.Tables, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT class, term FROM abbreviations ORDER BY class, term`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	entries := make(map[abbrev.Class][]string)
	total := 0
	for rows.Next() {
		var name, key string
		if err := rows.Scan(&name, &key); err != nil {
			return nil, err
		}
		class, err := abbrev.ParseClass(name)
		if err != nil {
			return nil, err
		}
		entries[class] = append(entries[class], key)
		total++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fmt.Errorf("abbreviation tables: %w", internalerr.ErrNotFound)
	}

	return abbrev.NewTables(entries)
}
