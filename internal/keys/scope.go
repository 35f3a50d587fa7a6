// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"fmt"
	"strings"
)

// KeyType tags the storage tier in which a configuration key may legally be
// set. The set is closed: adding a tier is a code change.
type KeyType uint8

const (
	// Global is the server-wide configuration tier.
	Global KeyType = iota + 1
	// Protocol is the per-protocol-instance tier (e.g. "osmand", "gt06").
	Protocol
	// Device is the per-device attribute tier.
	Device
)

// String returns the lower-case tier name.
func (t KeyType) String() string {
	switch t {
	case Global:
		return "global"
	case Protocol:
		return "protocol"
	case Device:
		return "device"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the declared tiers.
func (t KeyType) Valid() bool {
	return t >= Global && t <= Device
}

// specificity orders tiers: a higher value overrides a lower one.
func (t KeyType) specificity() int {
	return int(t)
}

// ParseKeyType converts a tier name into its KeyType. Matching is
// case-insensitive.
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global":
		return Global, nil
	case "protocol":
		return Protocol, nil
	case "device":
		return Device, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidScope, s)
	}
}

// MarshalText encodes the tier by name.
func (t KeyType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScope, t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier name.
func (t *KeyType) UnmarshalText(b []byte) error {
	parsed, err := ParseKeyType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scopes is a small helper for declarations: Scopes(Device, Global).
func Scopes(types ...KeyType) []KeyType {
	return types
}
