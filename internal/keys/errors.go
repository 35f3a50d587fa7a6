// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import "errors"

// Sentinel errors returned by declaration, registry, resolution and write
// operations. Callers should match them with [errors.Is]; every returned
// error wraps exactly one of these with the offending key name attached.
var (
	// ErrInvalidDeclaration is returned when a key or suffix is declared with
	// a malformed name, an empty scope list, or an invalid or repeated scope.
	ErrInvalidDeclaration = errors.New("invalid key declaration")

	// ErrDuplicateKey is returned when a name is registered twice.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnknownKey is returned when a name is not declared in the registry.
	ErrUnknownKey = errors.New("unknown key")

	// ErrTypeMismatch is returned when a stored raw value cannot be coerced
	// to the declared value type of its key.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIllegalScope is returned when a write targets a tier the key does
	// not declare. The backing store is not touched.
	ErrIllegalScope = errors.New("illegal scope")

	// ErrInvalidScope is returned when a scope name cannot be parsed or a
	// zero KeyType is used.
	ErrInvalidScope = errors.New("invalid scope")

	// ErrMissingIdentity is returned when a protocol or device write has no
	// instance identity, or a global write carries one.
	ErrMissingIdentity = errors.New("missing or unexpected scope identity")

	// ErrReadOnly is returned when a removal is requested from a store that
	// cannot delete values.
	ErrReadOnly = errors.New("store is read-only")
)
