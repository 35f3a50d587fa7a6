package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-tracker-config/internal/keys/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Markdown(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(nil, &out))

	assert.Contains(t, out.String(), "# Configuration reference")
	assert.Contains(t, out.String(), "## `web.port`")
	assert.Contains(t, out.String(), "## `<protocol>.port`")
}

func TestRun_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.json")

	require.NoError(t, run([]string{"-format", "json", "-out", path}, &bytes.Buffer{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Len(t, entries, len(catalog.All()))
}

func TestRun_UnknownFormat(t *testing.T) {
	err := run([]string{"-format", "html"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `unknown format "html"`)
}
