// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
)

// RawValue is the result of a raw store read, GET /api/raw/{scope}/{name}.
// Value is the canonical text of what the store holds.
type RawValue struct {
	Name     string       `json:"name"`
	Scope    keys.KeyType `json:"scope"`
	Identity string       `json:"identity,omitempty"`
	Found    bool         `json:"found"`
	Value    string       `json:"value,omitempty"`
}

// RawValues lists every value stored for one tier instance,
// GET /api/raw/{scope}.
type RawValues struct {
	Scope    keys.KeyType      `json:"scope"`
	Identity string            `json:"identity,omitempty"`
	Values   map[string]string `json:"values"`
}

// WriteRequest is the body of PUT /api/values/{name}.
type WriteRequest struct {
	Value TextValue `json:"value"`
}

// TextValue is a JSON scalar kept as text. Strings are unquoted, numbers
// and booleans keep their literal form: {"value":9000} and {"value":"9000"}
// both decode to "9000".
type TextValue string

func (v *TextValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
	case c == 't' || c == 'f' || c == '-' || (c >= '0' && c <= '9'):
		*v = TextValue(data)
	default:
		return fmt.Errorf("value must be a string, number or boolean, got %s", data)
	}
	return nil
}

// ValueResponse is a resolution with its provenance.
type ValueResponse struct {
	keys.Resolution
	Type     string `json:"type"`
	Protocol string `json:"protocol,omitempty"`
	Device   string `json:"device,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// Slot addresses one stored value: a concrete key name at one tier
// instance. Identity is empty for the global tier.
type Slot struct {
	Name     string       `json:"name"`
	Scope    keys.KeyType `json:"scope"`
	Identity string       `json:"identity,omitempty"`
}

// Assignment is a write of Value into Slot.
type Assignment struct {
	Slot
	Value string `json:"value"`
}
