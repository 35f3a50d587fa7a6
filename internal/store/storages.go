// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-tracker-config/internal/config"
	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/keys/catalog"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
)

// Storages is the assembled backing store of the server.
//
// Read order within a tier: environment overlay, writable layer, key files.
// The writable layer is the SQL attribute store when a database is
// configured, otherwise remote when given, otherwise an in-memory store.
type Storages struct {
	Store    *LayeredStore
	Writable keys.Store
	Files    *FileStore
	Env      *EnvStore

	db *DB
}

// NewStorages opens and migrates the database if one is configured. remote
// may be nil.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, remote keys.Store, log *logger.Logger) (*Storages, error) {
	files, err := LoadFiles(cfg.Keys.Files...)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error loading key files")
		return nil, err
	}
	log.Info().Strs("files", files.Sources()).Int("keys", files.Len()).Msg("key files loaded")

	s := &Storages{Files: files}

	switch {
	case cfg.Storage.DB.Driver != "":
		db, err := Connect(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(ctx); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			db.Close()
			return nil, err
		}
		s.db = db
		s.Writable = NewAttributeStore(db, log)
	case remote != nil:
		s.Writable = remote
	default:
		log.Warn().Msg("no database configured, overrides are kept in memory")
		s.Writable = NewMemoryStore()
	}

	layers := make([]keys.Store, 0, 3)
	if cfg.Keys.UseEnvironment {
		s.Env = NewEnvStore(cfg.Keys.EnvPrefix, os.Environ(), catalog.Registry())
		layers = append(layers, s.Env)
	}
	layers = append(layers, s.Writable, files)
	s.Store = NewLayeredStore(s.Writable, layers...)

	return s, nil
}

// Database returns the attribute database, or nil when none is configured.
func (s *Storages) Database() *DB {
	return s.db
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
