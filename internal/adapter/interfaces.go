// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets one instance use another instance's HTTP API as its
// backing store.
//
// [HTTPStore] implements [keys.Store] and [keys.Deleter]: reads go to the raw
// endpoints and return the value exactly as the remote store holds it, writes
// go through the remote's typed value endpoints so the remote registry
// validates them as well. Non-2xx responses are mapped to the sentinel errors
// in errors.go.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
)

// Lister matches store.Lister without importing the store package.
type Lister interface {
	ListRaw(ctx context.Context, scope keys.KeyType, identity string) (map[string]any, error)
}

var (
	_ keys.Store   = (*HTTPStore)(nil)
	_ keys.Deleter = (*HTTPStore)(nil)
	_ Lister       = (*HTTPStore)(nil)
)
