package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tracker-config/internal/config"
	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestAttributeStore(t *testing.T, driver string) (*AttributeStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	classifier := ErrorClassificator(NewPostgresErrorClassifier())
	if driver == config.DriverSQLite {
		classifier = SQLiteErrorClassifier{}
	}
	s := NewAttributeStore(&DB{
		DB:                 db,
		driver:             driver,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}, logger.Nop())
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── GetRaw ───────────────────────────────────────────────────────────────────

func TestAttributeStore_GetRaw(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantRaw   any
		wantFound bool
		wantErr   error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM config_attributes WHERE`).
					WithArgs("device", "42", "speedLimit").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("80.5"))
			},
			wantRaw:   "80.5",
			wantFound: true,
		},
		{
			name: "absent",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM config_attributes WHERE`).
					WithArgs("device", "42", "speedLimit").
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name: "connection lost is retryable",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM config_attributes WHERE`).
					WillReturnError(pgError(pgerrcode.ConnectionFailure))
			},
			wantErr: ErrTemporarilyUnavailable,
		},
		{
			name: "syntax error is not",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM config_attributes WHERE`).
					WillReturnError(pgError(pgerrcode.SyntaxError))
			},
			wantErr: ErrExecutingQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestAttributeStore(t, config.DriverPostgres)
			tt.setup(mock)

			raw, found, err := s.GetRaw(testContext(), keys.Device, "42", "speedLimit")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantFound, found)
				assert.Equal(t, tt.wantRaw, raw)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── SetRaw / DeleteRaw ───────────────────────────────────────────────────────

func TestAttributeStore_SetRaw_Upserts(t *testing.T) {
	s, mock := newTestAttributeStore(t, config.DriverPostgres)

	mock.ExpectExec(`INSERT INTO config_attributes \(scope,identity,name,value,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\) ON CONFLICT \(scope, identity, name\) DO UPDATE`).
		WithArgs("global", "", "web.port", "9000", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SetRaw(testContext(), keys.Global, "", "web.port", "9000"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeStore_SetRaw_SQLiteBusy(t *testing.T) {
	s, mock := newTestAttributeStore(t, config.DriverSQLite)

	mock.ExpectExec(`INSERT INTO config_attributes .* VALUES \(\?,\?,\?,\?,\?\)`).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	err := s.SetRaw(testContext(), keys.Protocol, "osmand", "osmand.port", "5055")
	require.ErrorIs(t, err, ErrTemporarilyUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeStore_DeleteRaw(t *testing.T) {
	s, mock := newTestAttributeStore(t, config.DriverPostgres)

	mock.ExpectExec(`DELETE FROM config_attributes WHERE`).
		WithArgs("device", "42", "speedLimit").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DeleteRaw(testContext(), keys.Device, "42", "speedLimit"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeStore_DeleteRaw_Error(t *testing.T) {
	s, mock := newTestAttributeStore(t, config.DriverPostgres)

	mock.ExpectExec(`DELETE FROM config_attributes WHERE`).
		WillReturnError(errors.New("disk full"))

	err := s.DeleteRaw(testContext(), keys.Device, "42", "speedLimit")
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── ListRaw ──────────────────────────────────────────────────────────────────

func TestAttributeStore_ListRaw(t *testing.T) {
	s, mock := newTestAttributeStore(t, config.DriverPostgres)

	mock.ExpectQuery(`SELECT name, value FROM config_attributes WHERE .* ORDER BY name`).
		WithArgs("device", "42").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).
			AddRow("filter.enable", "true").
			AddRow("speedLimit", "80.5"))

	got, err := s.ListRaw(testContext(), keys.Device, "42")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"filter.enable": "true", "speedLimit": "80.5"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeStore_ListRaw_ScanError(t *testing.T) {
	s, mock := newTestAttributeStore(t, config.DriverPostgres)

	mock.ExpectQuery(`SELECT name, value FROM config_attributes`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("speedLimit"))

	_, err := s.ListRaw(testContext(), keys.Device, "42")
	require.ErrorIs(t, err, ErrScanningRow)
}

// ── through the resolver ─────────────────────────────────────────────────────

func TestAttributeStore_DeviceOverrideResolves(t *testing.T) {
	s, mock := newTestAttributeStore(t, config.DriverPostgres)
	limit := keys.MustKey[float64]("speedLimit", "Speed limit.", keys.Scopes(keys.Device, keys.Global))
	reg, err := keys.NewRegistry(limit)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT value FROM config_attributes`).
		WithArgs("device", "42", "speedLimit").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("80.5"))

	v, err := keys.Resolve(testContext(), keys.NewResolver(reg, s), limit, keys.DeviceTarget("42"))
	require.NoError(t, err)
	assert.Equal(t, 80.5, v.Or(0))
	assert.Equal(t, keys.Device, v.Source().Scope)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── CheckConnection ──────────────────────────────────────────────────────────

func TestDB_CheckConnection(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		err     error
		wantErr error
	}{
		{name: "ok", driver: config.DriverPostgres},
		{name: "connection lost", driver: config.DriverPostgres, err: pgError(pgerrcode.ConnectionFailure), wantErr: ErrTemporarilyUnavailable},
		{name: "bad query", driver: config.DriverPostgres, err: pgError(pgerrcode.SyntaxError), wantErr: ErrExecutingQuery},
		{name: "sqlite busy", driver: config.DriverSQLite, err: sqlite3.Error{Code: sqlite3.ErrBusy}, wantErr: ErrTemporarilyUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestAttributeStore(t, tt.driver)
			expect := mock.ExpectQuery("SELECT 1")
			if tt.err != nil {
				expect.WillReturnError(tt.err)
			} else {
				expect.WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
			}

			err := s.db.CheckConnection(testContext(), "SELECT 1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
