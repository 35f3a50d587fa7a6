// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
)

// LayeredStore consults read layers in order and sends writes to a single
// writable layer. Within one tier the first layer holding a value wins.
type LayeredStore struct {
	layers   []keys.Store
	writable keys.Store
}

// NewLayeredStore builds a store from layers in priority order. writable may
// be nil; when set it is expected to appear among layers as well.
func NewLayeredStore(writable keys.Store, layers ...keys.Store) *LayeredStore {
	return &LayeredStore{layers: layers, writable: writable}
}

func (l *LayeredStore) GetRaw(ctx context.Context, scope keys.KeyType, identity, name string) (any, bool, error) {
	for i, layer := range l.layers {
		raw, ok, err := layer.GetRaw(ctx, scope, identity, name)
		if err != nil {
			return nil, false, fmt.Errorf("layer %d: %w", i, err)
		}
		if ok {
			return raw, true, nil
		}
	}
	return nil, false, nil
}

func (l *LayeredStore) SetRaw(ctx context.Context, scope keys.KeyType, identity, name, value string) error {
	if l.writable == nil {
		return fmt.Errorf("%w: %w", keys.ErrReadOnly, ErrNoWritableLayer)
	}
	return l.writable.SetRaw(ctx, scope, identity, name, value)
}

func (l *LayeredStore) DeleteRaw(ctx context.Context, scope keys.KeyType, identity, name string) error {
	deleter, ok := l.writable.(keys.Deleter)
	if !ok {
		return fmt.Errorf("%w: writable layer cannot delete", keys.ErrReadOnly)
	}
	return deleter.DeleteRaw(ctx, scope, identity, name)
}

// ListRaw merges the listings of every layer that supports it; earlier
// layers win.
func (l *LayeredStore) ListRaw(ctx context.Context, scope keys.KeyType, identity string) (map[string]any, error) {
	out := make(map[string]any)
	for i := len(l.layers) - 1; i >= 0; i-- {
		lister, ok := l.layers[i].(Lister)
		if !ok {
			continue
		}
		values, err := lister.ListRaw(ctx, scope, identity)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		for k, v := range values {
			out[k] = v
		}
	}
	return out, nil
}
