package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// ── formats ──────────────────────────────────────────────────────────────────

func TestLoadFiles_Formats(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want map[string]any
	}{
		{
			name: "xml properties",
			file: "traccar.xml",
			body: `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE properties SYSTEM "http://java.sun.com/dtd/properties.dtd">
<properties>
    <entry key="web.port">9000</entry>
    <entry key="database.url"> jdbc:h2:./data/database </entry>
</properties>`,
			want: map[string]any{"web.port": "9000", "database.url": "jdbc:h2:./data/database"},
		},
		{
			name: "properties",
			file: "traccar.properties",
			body: "# comment\n! also comment\nweb.port = 9000\ngeocoder.format: %h %r, \\\n  %t\n\n",
			want: map[string]any{"web.port": "9000", "geocoder.format": "%h %r, %t"},
		},
		{
			name: "json nested",
			file: "traccar.json",
			body: `{"web": {"port": 9000, "path": "./web"}, "database": {"maxPoolSize": 9223372036854775807}, "x": null}`,
			want: map[string]any{"web.port": "9000", "web.path": "./web", "database.maxPoolSize": "9223372036854775807"},
		},
		{
			name: "yaml nested with list",
			file: "traccar.yaml",
			body: "web:\n  port: 9000\nfilter:\n  enable: true\nstatus:\n  ignoreOffline: [gt06, osmand]\n",
			want: map[string]any{"web.port": 9000, "filter.enable": true, "status.ignoreOffline": "gt06,osmand"},
		},
		{
			name: "toml",
			file: "traccar.toml",
			body: "[web]\nport = 9000\n\n[speedLimit]\nthreshold = 0.5\n",
			want: map[string]any{"web.port": int64(9000), "speedLimit.threshold": 0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := LoadFiles(writeFile(t, tt.file, tt.body))
			require.NoError(t, err)

			got, err := fs.ListRaw(context.Background(), keys.Global, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFiles_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr error
	}{
		{"unsupported extension", "traccar.ini", "a=b", ErrUnsupportedFormat},
		{"broken json", "traccar.json", "{", ErrParsingFile},
		{"bad unicode escape", "traccar.properties", "web.path=\\uZZZZ", ErrParsingFile},
		{"xml entry without key", "traccar.xml", `<properties><entry>1</entry></properties>`, ErrParsingFile},
		{"dangling continuation", "traccar.properties", "a=b\\", ErrParsingFile},
		{"yaml name defined twice", "traccar.yaml", "web.port: 1\nweb:\n  port: 2\n", ErrParsingFile},
		{"json name defined twice", "traccar.json", `{"web.port": 1, "web": {"port": 2}}`, ErrParsingFile},
		{"toml name defined twice", "traccar.toml", "\"web.port\" = 1\n\n[web]\nport = 2\n", ErrParsingFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFiles(writeFile(t, tt.file, tt.body))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── properties escapes ───────────────────────────────────────────────────────

func TestLoadFiles_PropertiesEscapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]any
	}{
		{
			name: "escaped backslash does not continue the line",
			body: "web.path=C:\\\\\nweb.port=9000\n",
			want: map[string]any{"web.path": `C:\`, "web.port": "9000"},
		},
		{
			name: "whitespace separator",
			body: "web.port 9000\n",
			want: map[string]any{"web.port": "9000"},
		},
		{
			name: "unicode escape",
			body: "geocoder.format=\\u0041%h\n",
			want: map[string]any{"geocoder.format": "A%h"},
		},
		{
			name: "escaped separators in key",
			body: "a\\=b\\:c=d\n",
			want: map[string]any{"a=b:c": "d"},
		},
		{
			name: "continuation drops leading whitespace",
			body: "geocoder.format=%h, \\\n    %t\n",
			want: map[string]any{"geocoder.format": "%h, %t"},
		},
		{
			name: "references are not expanded",
			body: "web.path=${HOME}/web\n",
			want: map[string]any{"web.path": "${HOME}/web"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := LoadFiles(writeFile(t, "traccar.properties", tt.body))
			require.NoError(t, err)

			got, err := fs.ListRaw(context.Background(), keys.Global, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── name collisions ──────────────────────────────────────────────────────────

func TestLoadFiles_CollisionIsDeterministic(t *testing.T) {
	path := writeFile(t, "traccar.yaml", "web.port: 1\nweb:\n  port: 2\n  path: ./web\n")

	for i := 0; i < 20; i++ {
		fs, err := LoadFiles(path)
		require.ErrorIs(t, err, ErrParsingFile)
		assert.Contains(t, err.Error(), `"web.port"`)
		assert.Nil(t, fs)
	}
}

func TestNewFileStore_PanicsOnCollision(t *testing.T) {
	assert.Panics(t, func() {
		NewFileStore(map[string]any{"web.port": "1", "web": map[string]any{"port": "2"}})
	})
	assert.NotPanics(t, func() {
		NewFileStore(map[string]any{"web.port": nil, "web": map[string]any{"port": "2"}})
	})
}

func TestLoadFiles_MissingFile(t *testing.T) {
	_, err := LoadFiles(filepath.Join(t.TempDir(), "absent.xml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFiles_LaterFileOverrides(t *testing.T) {
	base := writeFile(t, "default.xml", `<properties>
<entry key="web.port">8082</entry>
<entry key="web.path">./web</entry>
</properties>`)
	site := writeFile(t, "site.yaml", "web:\n  port: 9000\n")

	fs, err := LoadFiles(base, site)
	require.NoError(t, err)
	assert.Equal(t, []string{base, site}, fs.Sources())
	assert.Equal(t, 2, fs.Len())

	ctx := context.Background()
	raw, ok, err := fs.GetRaw(ctx, keys.Global, "", "web.port")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 9000, raw)

	raw, ok, _ = fs.GetRaw(ctx, keys.Global, "", "web.path")
	require.True(t, ok)
	assert.Equal(t, "./web", raw)
}

func TestFileStore_GlobalOnlyAndReadOnly(t *testing.T) {
	ctx := context.Background()
	fs := NewFileStore(map[string]any{"web": map[string]any{"port": "8082"}})

	_, ok, err := fs.GetRaw(ctx, keys.Device, "42", "web.port")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := fs.ListRaw(ctx, keys.Protocol, "osmand")
	require.NoError(t, err)
	assert.Empty(t, got)

	err = fs.SetRaw(ctx, keys.Global, "", "web.port", "1")
	assert.ErrorIs(t, err, keys.ErrReadOnly)
}

func TestFileStore_ValuesResolveThroughKeys(t *testing.T) {
	ctx := context.Background()
	port := keys.MustKey[int]("web.port", "Web server port.", keys.Scopes(keys.Global), keys.WithDefault(8082))
	reg, err := keys.NewRegistry(port)
	require.NoError(t, err)

	fs, err := LoadFiles(writeFile(t, "site.toml", "[web]\nport = 9000\n"))
	require.NoError(t, err)

	v, err := keys.Resolve(ctx, keys.NewResolver(reg, fs), port, keys.GlobalTarget())
	require.NoError(t, err)
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 9000, got)
}
