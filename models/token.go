// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a write token. Its subject names the operator and is recorded in
// the logs of every write made with it.
type Token struct {
	// Token is the parsed JWT; nil for tokens that were only generated.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent as a bearer token.
	SignedString string `json:"-"`
}

// Operator returns the subject claim.
func (t *Token) Operator() string {
	return t.Subject
}

// String returns the compact JWS form.
func (t *Token) String() string {
	return t.SignedString
}
