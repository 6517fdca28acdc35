package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
	"github.com/Rejzi-dich/RytonStore/internal/storage"
)

// postgresStorage implements the Store interface for PostgreSQL.
// Same full-list read/overwrite contract as the other backends.
type postgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage creates a new PostgreSQL storage instance
func NewPostgresStorage(connStr string) (storage.Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &postgresStorage{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}

	return s, nil
}

// migrate creates the schema if it does not exist
func (s *postgresStorage) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS packages (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		github_url TEXT NOT NULL,
		data JSONB NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_packages_id ON packages(id);
	CREATE INDEX IF NOT EXISTS idx_packages_github_url ON packages(github_url);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// LoadAll returns every package record in store order
func (s *postgresStorage) LoadAll(ctx context.Context) ([]domain.Package, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM packages ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}

		var pkg domain.Package
		if err := json.Unmarshal(data, &pkg); err != nil {
			return nil, fmt.Errorf("failed to decode package record: %w", err)
		}
		packages = append(packages, pkg)
	}
	return packages, rows.Err()
}

// SaveAll replaces the whole catalog in a single transaction
func (s *postgresStorage) SaveAll(ctx context.Context, packages []domain.Package) error {
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
		VALUES ($1, $2, $3, $4)
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
		if _, err := stmt.ExecContext(ctx, i, pkg.ID, pkg.GitHubURL, data); err != nil {
			return fmt.Errorf("failed to insert package %s: %w", pkg.Name, err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection
func (s *postgresStorage) Close() error {
	return s.db.Close()
}
