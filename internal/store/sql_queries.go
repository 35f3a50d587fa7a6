// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-tracker-config/internal/keys"
)

const attributesTable = "config_attributes"

const upsertAttributeConflict = "ON CONFLICT (scope, identity, name) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at"

// instanceOf matches every row of one tier instance.
func instanceOf(scope keys.KeyType, identity string) sq.And {
	return sq.And{
		sq.Eq{"scope": scope.String()},
		sq.Eq{"identity": identity},
	}
}

func buildSelectAttributeQuery(ph sq.PlaceholderFormat, scope keys.KeyType, identity, name string) (string, []any, error) {
	return sq.Select("value").
		From(attributesTable).
		Where(append(instanceOf(scope, identity), sq.Eq{"name": name})).
		PlaceholderFormat(ph).
		ToSql()
}

func buildUpsertAttributeQuery(ph sq.PlaceholderFormat, scope keys.KeyType, identity, name, value string, now time.Time) (string, []any, error) {
	return sq.Insert(attributesTable).
		Columns("scope", "identity", "name", "value", "updated_at").
		Values(scope.String(), identity, name, value, now).
		Suffix(upsertAttributeConflict).
		PlaceholderFormat(ph).
		ToSql()
}

func buildDeleteAttributeQuery(ph sq.PlaceholderFormat, scope keys.KeyType, identity, name string) (string, []any, error) {
	return sq.Delete(attributesTable).
		Where(append(instanceOf(scope, identity), sq.Eq{"name": name})).
		PlaceholderFormat(ph).
		ToSql()
}

func buildListAttributesQuery(ph sq.PlaceholderFormat, scope keys.KeyType, identity string) (string, []any, error) {
	return sq.Select("name", "value").
		From(attributesTable).
		Where(instanceOf(scope, identity)).
		OrderBy("name").
		PlaceholderFormat(ph).
		ToSql()
}
