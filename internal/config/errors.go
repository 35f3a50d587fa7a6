// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetStructuredConfig].
var (
	// ErrInvalidStorageConfigs indicates an unknown driver, a missing DSN,
	// or more than one writable backend.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates a remote store URL that is not an
	// absolute http(s) URL.
	ErrInvalidRemoteConfigs = errors.New("invalid remote store configuration")
	// ErrInvalidServerConfigs indicates negative server timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	ErrInvalidAuthConfigs   = errors.New("invalid auth configuration")
	ErrInvalidKeysConfigs   = errors.New("invalid key source configuration")
)
