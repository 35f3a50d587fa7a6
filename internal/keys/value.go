// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

// Origin tells where a resolved value came from.
type Origin uint8

const (
	// OriginAbsent means no tier held a value and no default was declared.
	OriginAbsent Origin = iota
	// OriginStore means the value was read from the backing store.
	OriginStore
	// OriginDefault means the declared default was used.
	OriginDefault
)

func (o Origin) String() string {
	switch o {
	case OriginStore:
		return "store"
	case OriginDefault:
		return "default"
	default:
		return "absent"
	}
}

// MarshalText encodes the origin by name.
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Source describes the provenance of a resolved value. Scope and Identity
// are set only for OriginStore.
type Source struct {
	Origin   Origin  `json:"origin"`
	Scope    KeyType `json:"scope,omitempty"`
	Identity string  `json:"identity,omitempty"`
	Name     string  `json:"name"`
}

// Value is the outcome of a typed resolution. Absence is a normal outcome
// and is distinct from any zero value.
type Value[T Scalar] struct {
	value  T
	source Source
}

// Get returns the value and whether one was found or defaulted.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.Present()
}

// Present reports whether the value came from the store or a default.
func (v Value[T]) Present() bool {
	return v.source.Origin != OriginAbsent
}

// Or returns the value, or fallback when absent.
func (v Value[T]) Or(fallback T) T {
	if !v.Present() {
		return fallback
	}
	return v.value
}

// Source returns where the value came from.
func (v Value[T]) Source() Source {
	return v.source
}
