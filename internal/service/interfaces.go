// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service sits between the HTTP handlers and the key resolver. It
// turns names and targets from requests into resolver calls, converts raw
// store values to their wire form and logs every write with its operator.
package service

import (
	"context"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/keys/catalog"
	"github.com/MKhiriev/go-tracker-config/models"
)

// KeyService exposes the declarations of the registry.
type KeyService interface {
	ListKeys(ctx context.Context) []catalog.Entry
	// GetKey accepts a declared name or a suffix instantiation such as
	// "osmand.port".
	GetKey(ctx context.Context, name string) (catalog.Entry, error)
}

// ValueService reads and writes values through the resolver.
type ValueService interface {
	Resolve(ctx context.Context, name string, target keys.Target) (models.ValueResponse, error)
	Set(ctx context.Context, assignment models.Assignment) error
	Unset(ctx context.Context, slot models.Slot) error

	// GetRaw and ListRaw bypass coercion and defaults; they serve remote
	// instances that use this one as their store.
	GetRaw(ctx context.Context, slot models.Slot) (models.RawValue, error)
	ListRaw(ctx context.Context, scope keys.KeyType, identity string) (models.RawValues, error)
}

type AuthService interface {
	// Enabled reports whether write tokens can be verified at all.
	Enabled() bool
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// ValueServiceWrapper decorates a ValueService, e.g. with validation.
type ValueServiceWrapper interface {
	Wrap(ValueService) ValueService
}
