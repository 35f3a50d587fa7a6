// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// FileStore serves the global tier from one or more key files. It is
// read-only and never changes after loading.
type FileStore struct {
	values  map[string]any
	sources []string
}

// LoadFiles reads paths in order. A key present in several files takes the
// value from the last one, so a site file can override shipped defaults.
func LoadFiles(paths ...string) (*FileStore, error) {
	values, err := readKeyFiles(paths)
	if err != nil {
		return nil, err
	}
	return &FileStore{values: values, sources: paths}, nil
}

func readKeyFiles(paths []string) (map[string]any, error) {
	merged := make(map[string]any)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading key file %s: %w", path, err)
		}

		doc, err := decodeKeyFile(filepath.Ext(path), data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		// doc is flat; later files override per key
		maps.Copy(merged, doc)
	}
	return merged, nil
}

// NewFileStore wraps already decoded values, e.g. for tests. It panics if
// two entries flatten to the same name.
func NewFileStore(values map[string]any) *FileStore {
	flat, err := flatten(values)
	if err != nil {
		panic(err)
	}
	return &FileStore{values: flat}
}

// Sources returns the files the store was loaded from.
func (f *FileStore) Sources() []string {
	return f.sources
}

// Len returns the number of keys loaded.
func (f *FileStore) Len() int {
	return len(f.values)
}

func (f *FileStore) GetRaw(_ context.Context, scope keys.KeyType, _ string, name string) (any, bool, error) {
	if scope != keys.Global {
		return nil, false, nil
	}
	v, ok := f.values[name]
	return v, ok, nil
}

func (f *FileStore) SetRaw(_ context.Context, _ keys.KeyType, _, name, _ string) error {
	return fmt.Errorf("%w: key files are read-only, cannot set %q", keys.ErrReadOnly, name)
}

func (f *FileStore) ListRaw(_ context.Context, scope keys.KeyType, _ string) (map[string]any, error) {
	if scope != keys.Global {
		return map[string]any{}, nil
	}
	return maps.Clone(f.values), nil
}

func decodeKeyFile(ext string, data []byte) (map[string]any, error) {
	var (
		doc map[string]any
		err error
	)

	switch strings.ToLower(ext) {
	case ".xml":
		doc, err = parseXMLProperties(data)
	case ".properties":
		doc, err = parseProperties(data)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingFile, err)
	}
	return flatten(doc)
}

// xmlProperties is the java.util.Properties XML layout:
//
//	<properties><entry key="web.port">8082</entry></properties>
type xmlProperties struct {
	XMLName xml.Name `xml:"properties"`
	Entries []struct {
		Key   string `xml:"key,attr"`
		Value string `xml:",chardata"`
	} `xml:"entry"`
}

func parseXMLProperties(data []byte) (map[string]any, error) {
	var props xmlProperties
	if err := xml.Unmarshal(data, &props); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(props.Entries))
	for _, e := range props.Entries {
		if e.Key == "" {
			return nil, fmt.Errorf("entry without key")
		}
		out[e.Key] = strings.TrimSpace(e.Value)
	}
	return out, nil
}

// parseProperties reads the java.util.Properties text format, escapes and
// line continuations included. ${...} references are kept verbatim.
func parseProperties(data []byte) (map[string]any, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, props.Len())
	for k, v := range props.Map() {
		out[k] = v
	}
	return out, nil
}
