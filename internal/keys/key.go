// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

// Key is an immutable, typed configuration key such as "web.port".
type Key[T Scalar] struct {
	*keySpec
}

// NewKey declares a key. It fails with ErrInvalidDeclaration when name is not
// a dotted identifier or scopes is empty or invalid.
func NewKey[T Scalar](name, description string, scopes []KeyType, opts ...Option[T]) (*Key[T], error) {
	s, err := newSpec(name, description, scopes, false, opts)
	if err != nil {
		return nil, err
	}
	return &Key[T]{keySpec: s}, nil
}

// MustKey is NewKey for package-level declarations; it panics on an invalid
// declaration so a broken catalogue stops the process at start.
func MustKey[T Scalar](name, description string, scopes []KeyType, opts ...Option[T]) *Key[T] {
	k, err := NewKey(name, description, scopes, opts...)
	if err != nil {
		panic(err)
	}
	return k
}

// Default returns the typed default and whether one was declared.
func (k *Key[T]) Default() (T, bool) {
	if !k.hasDefault {
		var zero T
		return zero, false
	}
	return k.def.(T), true
}
