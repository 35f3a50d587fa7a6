// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
)

// ErrTemporarilyUnavailable wraps driver errors classified as Retryable.
var ErrTemporarilyUnavailable = errors.New("storage temporarily unavailable")

// AttributeStore keeps scoped key values in the config_attributes table.
// Values are stored as their canonical text form.
type AttributeStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewAttributeStore constructs an AttributeStore over db.
func NewAttributeStore(db *DB, logger *logger.Logger) *AttributeStore {
	logger.Debug().Msg("creating attribute store")
	return &AttributeStore{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *AttributeStore) GetRaw(ctx context.Context, scope keys.KeyType, identity, name string) (any, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAttributeQuery(s.db.placeholders(), scope, identity, name)
	if err != nil {
		log.Err(err).Str("func", "*AttributeStore.GetRaw").Msg("error building query")
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*AttributeStore.GetRaw").Str("key", name).Msg("error reading attribute")
		return nil, false, s.wrap(err)
	}

	return value, true, nil
}

func (s *AttributeStore) SetRaw(ctx context.Context, scope keys.KeyType, identity, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertAttributeQuery(s.db.placeholders(), scope, identity, name, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "*AttributeStore.SetRaw").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*AttributeStore.SetRaw").Str("key", name).Msg("error saving attribute")
		return s.wrap(err)
	}

	return nil
}

// DeleteRaw removes one value. Removing an absent value is not an error.
func (s *AttributeStore) DeleteRaw(ctx context.Context, scope keys.KeyType, identity, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAttributeQuery(s.db.placeholders(), scope, identity, name)
	if err != nil {
		log.Err(err).Str("func", "*AttributeStore.DeleteRaw").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*AttributeStore.DeleteRaw").Str("key", name).Msg("error deleting attribute")
		return s.wrap(err)
	}

	return nil
}

func (s *AttributeStore) ListRaw(ctx context.Context, scope keys.KeyType, identity string) (map[string]any, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAttributesQuery(s.db.placeholders(), scope, identity)
	if err != nil {
		log.Err(err).Str("func", "*AttributeStore.ListRaw").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*AttributeStore.ListRaw").Msg("error listing attributes")
		return nil, s.wrap(err)
	}
	defer rows.Close()

	out := make(map[string]any)
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			log.Err(err).Str("func", "*AttributeStore.ListRaw").Msg("error scanning attribute")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out[name] = value
	}
	if err = rows.Err(); err != nil {
		return nil, s.wrap(err)
	}

	return out, nil
}

func (s *AttributeStore) wrap(err error) error {
	if s.db.classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTemporarilyUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
