package migrations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(context.Background(), db, "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting dialect")
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	body, err := embedMigrations.ReadFile("00001_config_attributes.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "config_attributes")
	assert.Contains(t, string(body), "PRIMARY KEY (scope, identity, name)")
}
