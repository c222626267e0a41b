// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"
	"miocouple/internal/config"
	"miocouple/internal/db/migrations"
	"miocouple/internal/logging"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/pressly/goose/v3"
)

// Repository is the single point of access to the on-disk SQLite database.
// One instance is created at process startup and shared by all requests;
// SQLite's own file locking serializes concurrent writers.
type Repository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens (or creates) the database file.
func NewRepository(cfg *config.Config) (*Repository, error) {
	// busy_timeout makes concurrent writers wait instead of failing
	// immediately with SQLITE_BUSY.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_fk=1", cfg.Database.Path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Database.Path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database.Path, err)
	}

	return &Repository{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the underlying database connection.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// EnsureSchemaBootstrapped applies all embedded migrations. Callers must
// treat an error as fatal at startup: serving requests against a missing
// schema is never correct.
func (s *Repository) EnsureSchemaBootstrapped() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logging.Log.Debug("Database schema is up to date")
	return nil
}

// BeginTx starts a transaction wrapped in our Tx helper.
func (s *Repository) BeginTx() (*Tx, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{tx}, nil
}
