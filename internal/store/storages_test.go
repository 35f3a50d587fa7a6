package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-tracker-config/internal/config"
	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_MemoryFallback(t *testing.T) {
	ctx := context.Background()
	t.Setenv("TEST_WEB_PATH", "/from/env")

	cfg := &config.StructuredConfig{
		Keys: config.Keys{
			Files:          []string{writeFile(t, "traccar.properties", "web.port=9000\nweb.path=./web\n")},
			UseEnvironment: true,
			EnvPrefix:      "TEST_",
		},
	}

	s, err := NewStorages(ctx, cfg, nil, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.IsType(t, &MemoryStore{}, s.Writable)
	require.NotNil(t, s.Env)

	raw, ok, err := s.Store.GetRaw(ctx, keys.Global, "", "web.path")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/from/env", raw)

	// an override in the writable layer shadows the file
	require.NoError(t, s.Store.SetRaw(ctx, keys.Global, "", "web.port", "9100"))
	raw, _, _ = s.Store.GetRaw(ctx, keys.Global, "", "web.port")
	assert.Equal(t, "9100", raw)
}

func TestNewStorages_RemoteWritable(t *testing.T) {
	remote := NewMemoryStore()
	s, err := NewStorages(context.Background(), &config.StructuredConfig{}, remote, logger.Nop())
	require.NoError(t, err)

	assert.Same(t, remote, s.Writable)
	assert.Nil(t, s.Env)
	assert.NoError(t, s.Close())
}

func TestNewStorages_BadFile(t *testing.T) {
	cfg := &config.StructuredConfig{Keys: config.Keys{Files: []string{writeFile(t, "x.ini", "a=b")}}}
	_, err := NewStorages(context.Background(), cfg, nil, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	cfg := &config.StructuredConfig{Storage: config.Storage{DB: config.DB{Driver: "mysql", DSN: "x"}}}
	_, err := NewStorages(context.Background(), cfg, nil, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}
