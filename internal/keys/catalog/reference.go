// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
)

// Entry is one row of the generated configuration reference.
type Entry struct {
	Name        string         `json:"name"`
	Suffix      bool           `json:"suffix"`
	Type        string         `json:"type"`
	Scopes      []keys.KeyType `json:"scopes"`
	Default     *string        `json:"default,omitempty"`
	Description string         `json:"description"`
}

// NewEntry describes a single declaration.
func NewEntry(d keys.Descriptor) Entry {
	e := Entry{
		Name:        d.Name(),
		Suffix:      d.IsSuffix(),
		Type:        d.ValueType().String(),
		Scopes:      d.Scopes(),
		Description: d.Description(),
	}
	if v, ok := d.DefaultValue(); ok {
		if text, err := keys.Format(d.ValueType(), v); err == nil {
			e.Default = &text
		}
	}
	return e
}

// Reference lists every declaration of r in registration order.
func Reference(r *keys.Registry) []Entry {
	all := r.All()
	entries := make([]Entry, 0, len(all))
	for _, d := range all {
		entries = append(entries, NewEntry(d))
	}
	return entries
}

// WriteJSON writes entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// WriteMarkdown writes entries as a markdown document, one section per key.
func WriteMarkdown(w io.Writer, entries []Entry) error {
	var b strings.Builder
	b.WriteString("# Configuration reference\n")
	for _, e := range entries {
		name := e.Name
		if e.Suffix {
			name = "<protocol>" + e.Name
		}
		fmt.Fprintf(&b, "\n## `%s`\n\n", name)
		fmt.Fprintf(&b, "- type: %s\n", e.Type)

		scopes := make([]string, 0, len(e.Scopes))
		for _, s := range e.Scopes {
			scopes = append(scopes, s.String())
		}
		fmt.Fprintf(&b, "- scopes: %s\n", strings.Join(scopes, ", "))
		if e.Default != nil {
			fmt.Fprintf(&b, "- default: `%s`\n", *e.Default)
		}
		if e.Description != "" {
			fmt.Fprintf(&b, "\n%s\n", e.Description)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
