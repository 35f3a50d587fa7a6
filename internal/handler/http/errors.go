// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the auth middleware when parsing the
// "Authorization" header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidScopeParam is returned for a scope path or query parameter
	// that names no tier.
	ErrInvalidScopeParam = errors.New("invalid `scope` parameter")

	// ErrInvalidBody is returned when a write body cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")
)
