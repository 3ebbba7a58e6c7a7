package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migration represents a single database migration loaded from a SQL file.
type Migration struct {
	Version   int
	Name      string
	SQL       string
	AppliedAt time.Time
}

// MigrationStatus represents the status of a migration (applied or pending).
type MigrationStatus struct {
	Version   int
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

// Migrator reads numbered SQL files from a directory and applies the pending
// ones in version order.
type Migrator struct {
	pool *pgxpool.Pool
	dir  string
}

// NewMigrator creates a Migrator that reads migration files from migrationsDir
// and applies them using the provided connection pool.
func NewMigrator(pool *pgxpool.Pool, migrationsDir string) *Migrator {
	return &Migrator{
		pool: pool,
		dir:  migrationsDir,
	}
}

// EnsureMigrationsTable creates the _migrations tracking table if it does not
// already exist.
func (m *Migrator) EnsureMigrationsTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS _migrations (
    version INTEGER PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    applied_at TIMESTAMPTZ DEFAULT NOW()
)`)
	if err != nil {
		return fmt.Errorf("create _migrations table: %w", err)
	}
	return nil
}

// LoadMigrations reads all .sql files from the migrations directory, parses
// the version number from the filename prefix (e.g., "001_core.sql" -> 1),
// and returns them sorted by version. Files without a numeric prefix are
// silently skipped.
func (m *Migrator) LoadMigrations() ([]Migration, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations directory %s: %w", m.dir, err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}

		parts := strings.SplitN(name, "_", 2)
		if len(parts) < 2 {
			continue
		}

		version, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}

		content, err := os.ReadFile(filepath.Join(m.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read migration file %s: %w", name, err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// AppliedVersions returns the set of migration versions already applied.
func (m *Migrator) AppliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := m.pool.Query(ctx, `SELECT version FROM _migrations`)
	if err != nil {
		return nil, fmt.Errorf("query applied versions: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan migration version: %w", err)
		}
		applied[v] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applied versions: %w", err)
	}

	return applied, nil
}

// Up applies all pending migrations in version order. Each migration runs in
// its own transaction. Returns the count of applied migrations.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if err := m.EnsureMigrationsTable(ctx); err != nil {
		return 0, err
	}

	migrations, err := m.LoadMigrations()
	if err != nil {
		return 0, err
	}

	applied, err := m.AppliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range migrations {
		if applied[mig.Version] {
			continue
		}

		if err := m.applyMigration(ctx, mig); err != nil {
			return count, fmt.Errorf("apply migration %d (%s): %w", mig.Version, mig.Name, err)
		}
		count++
	}

	return count, nil
}

// applyMigration runs a single migration in a transaction and records it in
// the _migrations table.
func (m *Migrator) applyMigration(ctx context.Context, mig Migration) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, mig.SQL); err != nil {
		return fmt.Errorf("execute SQL: %w", err)
	}

	if _, err := tx.Exec(ctx,
		"INSERT INTO _migrations (version, name) VALUES ($1, $2)",
		mig.Version, mig.Name,
	); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}

	return tx.Commit(ctx)
}

// Status returns the status of all known migrations, applied and pending.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	if err := m.EnsureMigrationsTable(ctx); err != nil {
		return nil, err
	}

	migrations, err := m.LoadMigrations()
	if err != nil {
		return nil, err
	}

	rows, err := m.pool.Query(ctx, `SELECT version, applied_at FROM _migrations`)
	if err != nil {
		return nil, fmt.Errorf("query migration status: %w", err)
	}
	defer rows.Close()

	appliedMap := make(map[int]time.Time)
	for rows.Next() {
		var v int
		var at time.Time
		if err := rows.Scan(&v, &at); err != nil {
			return nil, fmt.Errorf("scan migration status: %w", err)
		}
		appliedMap[v] = at
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate migration status: %w", err)
	}

	var statuses []MigrationStatus
	for _, mig := range migrations {
		status := MigrationStatus{
			Version: mig.Version,
			Name:    mig.Name,
		}
		if at, ok := appliedMap[mig.Version]; ok {
			status.Applied = true
			appliedAt := at
			status.AppliedAt = &appliedAt
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}
