package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
	"github.com/Rejzi-dich/RytonStore/internal/storage"
)

// sqliteStorage implements the Store interface for SQLite.
// Records are kept as JSON documents in store order, preserving the
// full-list read/overwrite contract of the file backend.
type sqliteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (storage.Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	s := &sqliteStorage{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}

	return s, nil
}

// migrate creates the schema if it does not exist
func (s *sqliteStorage) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS packages (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		github_url TEXT NOT NULL,
		data TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_packages_id ON packages(id);
	CREATE INDEX IF NOT EXISTS idx_packages_github_url ON packages(github_url);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// LoadAll returns every package record in store order
func (s *sqliteStorage) LoadAll(ctx context.Context) ([]domain.Package, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM packages ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}

		var pkg domain.Package
		if err := json.Unmarshal([]byte(data), &pkg); err != nil {
			return nil, fmt.Errorf("failed to decode package record: %w", err)
		}
		packages = append(packages, pkg)
	}
	return packages, rows.Err()
}

// SaveAll replaces the whole catalog in a single transaction
func (s *sqliteStorage) SaveAll(ctx context.Context, packages []domain.Package) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM packages`); err != nil {
		return fmt.Errorf("failed to clear packages: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO packages (position, id, github_url, data)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, pkg := range packages {
		data, err := json.Marshal(pkg)
		if err != nil {
			return fmt.Errorf("failed to encode package %s: %w", pkg.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, i, pkg.ID, pkg.GitHubURL, string(data)); err != nil {
			return fmt.Errorf("failed to insert package %s: %w", pkg.Name, err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}
