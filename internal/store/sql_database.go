// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-tracker-config/internal/config"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/migrations"
)

// ErrorClassification tells whether a failed statement may succeed on retry.
type ErrorClassification int

const (
	// NonRetryable errors will fail again without intervention.
	NonRetryable ErrorClassification = iota
	// Retryable errors are transient: lost connections, lock contention,
	// serialization failures.
	Retryable
)

// ErrorClassificator classifies driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps *sql.DB with the driver-specific bits the attribute store needs.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Connect opens and pings the database selected by cfg.Driver.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Driver returns config.DriverPostgres or config.DriverSQLite.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	dialect := "postgres"
	if db.driver == config.DriverSQLite {
		dialect = "sqlite3"
	}
	return migrations.Migrate(ctx, db.DB, dialect)
}

// CheckConnection runs query and discards the result. Retryable failures
// wrap ErrTemporarilyUnavailable.
func (db *DB) CheckConnection(ctx context.Context, query string) error {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		if db.classify(err) == Retryable {
			return fmt.Errorf("%w: %w", ErrTemporarilyUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return rows.Close()
}

func (db *DB) placeholders() sq.PlaceholderFormat {
	if db.driver == config.DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
