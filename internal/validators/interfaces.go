// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request shapes before they reach the resolver:
// name and identity lengths match the attribute table columns, identities
// carry no whitespace, values fit the value column.
//
// Typing and scope legality are not checked here; the resolver owns them.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
