// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keys declares typed, scoped configuration keys and resolves their
// effective values against a backing Store.
//
// A key is declared once with a dotted name, a Go scalar type, the tiers it
// may be set in and an optional default:
//
//	var WebPort = keys.MustKey[int]("web.port", "HTTP listen port.",
//		keys.Scopes(keys.Global), keys.WithDefault(8082))
//
// Suffix keys (".port", ".timeout") are templates instantiated per protocol
// by prepending the protocol name. Declarations are collected into an
// immutable Registry at startup; a Resolver then walks the declared tiers of
// a key from most to least specific for a given Target, falling back to the
// default and finally reporting absence.
//
// Writes go through the same Resolver so that a key can never be stored in a
// tier it does not declare.
package keys
