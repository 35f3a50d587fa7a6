// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
)

// Lister is implemented by stores that can enumerate the values held for one
// tier instance, e.g. every override of device "42".
type Lister interface {
	ListRaw(ctx context.Context, scope keys.KeyType, identity string) (map[string]any, error)
}

var (
	_ keys.Store   = (*MemoryStore)(nil)
	_ keys.Deleter = (*MemoryStore)(nil)
	_ Lister       = (*MemoryStore)(nil)
	_ keys.Store   = (*FileStore)(nil)
	_ Lister       = (*FileStore)(nil)
	_ keys.Store   = (*EnvStore)(nil)
	_ keys.Store   = (*LayeredStore)(nil)
	_ keys.Deleter = (*LayeredStore)(nil)
	_ Lister       = (*LayeredStore)(nil)
	_ keys.Store   = (*AttributeStore)(nil)
	_ keys.Deleter = (*AttributeStore)(nil)
	_ Lister       = (*AttributeStore)(nil)
)
