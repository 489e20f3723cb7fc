// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration applies the schema migrations with golang-migrate.
//
// Migrations are read from the SQL files embedded in the binary, unless a
// directory on disk is given, which takes precedence.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers the "pgx5" scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/taibuivan/feedback/data/migrations"
)

// RunUp applies all pending up migrations to the database at dsn.
//
// dir may be empty, in which case the embedded migrations are used.
func RunUp(dsn, dir string, logger *slog.Logger) error {
	migrator, source, err := newMigrator(dsn, dir)
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceErr, dbErr := migrator.Close()
		if sourceErr != nil {
			logger.Error("migration_source_close_failed", slog.Any("error", sourceErr))
		}
		if dbErr != nil {
			logger.Error("migration_db_close_failed", slog.Any("error", dbErr))
		}
	}()

	migrator.Log = &migrateLogger{logger: logger}

	from, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to get current version: %w", err)
	}
	if dirty {
		return fmt.Errorf("migration: database is dirty at version %d, fix it with the migrate CLI", from)
	}

	logger.Info("migration_started", slog.String("source", source), slog.Uint64("current_version", uint64(from)))

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	to, _, _ := migrator.Version()
	logger.Info("migration_successful",
		slog.Uint64("from_version", uint64(from)),
		slog.Uint64("to_version", uint64(to)),
	)
	return nil
}

func newMigrator(dsn, dir string) (*migrate.Migrate, string, error) {
	databaseURL := toPgx5DSN(dsn)

	if dir != "" {
		sourceURL := "file://" + dir
		migrator, err := migrate.New(sourceURL, databaseURL)
		return migrator, sourceURL, err
	}

	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, "", err
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", driver, databaseURL)
	return migrator, "embedded", err
}

// toPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5://
// scheme golang-migrate expects. Other DSNs are returned unchanged.
func toPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts migrate.Logger to slog.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)), slog.String("component", "migrate"))
}

func (l *migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
