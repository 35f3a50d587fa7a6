// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Key source errors.
var (
	// ErrUnsupportedFormat is returned for a key file whose extension is not
	// one of .xml, .properties, .json, .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("unsupported key file format")

	// ErrParsingFile is returned when a key file cannot be decoded.
	ErrParsingFile = errors.New("error parsing key file")

	// ErrNoWritableLayer is returned by a layered store without a writable layer.
	ErrNoWritableLayer = errors.New("no writable layer configured")
)

// SQL errors.
var (
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRow = errors.New("failed to scan attribute row")
)
