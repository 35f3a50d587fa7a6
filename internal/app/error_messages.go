// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the HTTP handlers
// and middleware.
//
// Messages for domain errors come from the errors themselves; the ones here
// describe transport-level failures that have no error value of their own.
package app

const (
	// MsgNotFound is returned for paths that match no route.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is a format string taking the request method. It
	// is returned when the path exists but not for that method.
	MsgMethodNotAllowed = "method %s not allowed"

	// MsgInternalServerError replaces the message of unexpected errors so
	// that store and driver details do not leak to clients.
	MsgInternalServerError = "internal server error"

	// MsgInvalidGzipData is returned when a request declares gzip encoding
	// but its body cannot be decompressed.
	MsgInvalidGzipData = "invalid gzip data"
)
