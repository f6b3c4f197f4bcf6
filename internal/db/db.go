package db

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// New creates a new database connection from the provided connection string
func New(connectionString string) (*DB, error) {
	if connectionString == "" {
		return nil, fmt.Errorf("database connection string is required")
	}

	sqlDB, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		// Try with SSL disabled if connection fails and SSL mode not specified
		if !strings.Contains(strings.ToLower(connectionString), "sslmode") {
			log.Warn().Msg("retrying database connection with SSL disabled")
			sqlDB.Close()
			retry := connectionString
			if strings.Contains(retry, "?") {
				retry += "&sslmode=disable"
			} else {
				retry += "?sslmode=disable"
			}
			sqlDB, err = sql.Open("postgres", retry)
			if err != nil {
				return nil, fmt.Errorf("failed to open database: %w", err)
			}
		}
		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return &DB{DB: sqlDB}, nil
}

// HealthCheck verifies the database connection is healthy
func (db *DB) HealthCheck() error {
	return db.Ping()
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// RunMigrations executes all SQL migration files in the migrations directory
func (db *DB) RunMigrations(migrationsDir string) error {
	migrations, err := readMigrations(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	if len(migrations) == 0 {
		log.Warn().Str("dir", migrationsDir).Msg("no migrations found")
		return nil
	}

	if err := db.createMigrationTable(); err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}

	for _, migration := range migrations {
		applied, err := db.isMigrationApplied(migration.Number)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if applied {
			log.Debug().Int("version", migration.Number).Msg("migration already applied, skipping")
			continue
		}

		log.Info().Int("version", migration.Number).Str("name", migration.Name).Msg("applying migration")

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		if _, err := tx.Exec(migration.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %d: %w", migration.Number, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES ($1, $2)",
			migration.Number,
			migration.Name,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration: %w", err)
		}
	}

	return nil
}

// Migration represents a single migration file
type Migration struct {
	Number int
	Name   string
	SQL    string
}

// readMigrations reads all migration files from the migrations directory
func readMigrations(migrationsDir string) ([]Migration, error) {
	var migrations []Migration

	err := filepath.WalkDir(migrationsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".sql") {
			return nil
		}

		filename := d.Name()
		// Parse migration number from filename (e.g., "001_initial_schema.sql" -> 1)
		parts := strings.Split(filename, "_")
		if len(parts) < 2 {
			return nil
		}
		number, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil
		}

		sqlBytes, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", filename, err)
		}

		migrations = append(migrations, Migration{
			Number: number,
			Name:   strings.TrimSuffix(strings.Join(parts[1:], "_"), ".sql"),
			SQL:    string(sqlBytes),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Number < migrations[j].Number
	})

	return migrations, nil
}

func (db *DB) createMigrationTable() error {
	createTableSQL := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT NOW()
		)
	`
	_, err := db.Exec(createTableSQL)
	return err
}

func (db *DB) isMigrationApplied(number int) (bool, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = $1",
		number,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
