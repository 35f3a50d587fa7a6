// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import "fmt"

// Suffix is a key template shared by many instances, e.g. ".port" combined
// with the protocol name "osmand" yields "osmand.port". Instantiations share
// no state.
type Suffix[T Scalar] struct {
	*keySpec
}

// NewSuffix declares a suffix key. suffix must start with a dot.
func NewSuffix[T Scalar](suffix, description string, scopes []KeyType, opts ...Option[T]) (*Suffix[T], error) {
	s, err := newSpec(suffix, description, scopes, true, opts)
	if err != nil {
		return nil, err
	}
	return &Suffix[T]{keySpec: s}, nil
}

// MustSuffix is NewSuffix for package-level declarations.
func MustSuffix[T Scalar](suffix, description string, scopes []KeyType, opts ...Option[T]) *Suffix[T] {
	s, err := NewSuffix(suffix, description, scopes, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Suffix returns the dotted fragment, including its leading dot.
func (s *Suffix[T]) Suffix() string {
	return s.name
}

// Resolve returns the concrete key name for prefix.
func (s *Suffix[T]) Resolve(prefix string) (string, error) {
	if !validName(prefix) {
		return "", fmt.Errorf("%w: malformed prefix %q for %q", ErrUnknownKey, prefix, s.name)
	}
	return prefix + s.name, nil
}

// Default returns the typed default and whether one was declared.
func (s *Suffix[T]) Default() (T, bool) {
	if !s.hasDefault {
		var zero T
		return zero, false
	}
	return s.def.(T), true
}
