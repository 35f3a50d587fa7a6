// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"fmt"
	"slices"
)

// Descriptor is the untyped view of a declared key or suffix. It is
// implemented only by [Key] and [Suffix].
type Descriptor interface {
	// Name returns the dotted key name, or the suffix (".port") of a suffix key.
	Name() string
	ValueType() ValueType
	// Scopes returns the tiers the key may be set in, most specific first.
	Scopes() []KeyType
	Description() string
	// DefaultValue returns the declared default; ok is false when none was declared.
	DefaultValue() (v any, ok bool)
	IsSuffix() bool
	// Allows reports whether the key may be set in tier t.
	Allows(t KeyType) bool

	spec() *keySpec
}

// keySpec holds the immutable fields shared by Key and Suffix.
type keySpec struct {
	name        string
	valueType   ValueType
	scopes      []KeyType
	description string
	def         any
	hasDefault  bool
	suffix      bool
}

func (s *keySpec) Name() string         { return s.name }
func (s *keySpec) ValueType() ValueType { return s.valueType }
func (s *keySpec) Description() string  { return s.description }
func (s *keySpec) IsSuffix() bool       { return s.suffix }
func (s *keySpec) spec() *keySpec       { return s }

func (s *keySpec) Scopes() []KeyType {
	return slices.Clone(s.scopes)
}

func (s *keySpec) DefaultValue() (any, bool) {
	return s.def, s.hasDefault
}

func (s *keySpec) Allows(t KeyType) bool {
	return slices.Contains(s.scopes, t)
}

// Option configures an optional part of a declaration.
type Option[T Scalar] func(*options[T])

type options[T Scalar] struct {
	def        T
	hasDefault bool
}

// WithDefault declares the value returned when no tier holds one.
func WithDefault[T Scalar](v T) Option[T] {
	return func(o *options[T]) {
		o.def = v
		o.hasDefault = true
	}
}

func newSpec[T Scalar](name, description string, scopes []KeyType, suffix bool, opts []Option[T]) (*keySpec, error) {
	valid := validName(name)
	if suffix {
		valid = validSuffix(name)
	}
	if !valid {
		return nil, fmt.Errorf("%w: malformed name %q", ErrInvalidDeclaration, name)
	}

	normalized, err := normalizeScopes(scopes)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDeclaration, name, err)
	}

	var o options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	s := &keySpec{
		name:        name,
		valueType:   valueTypeOf[T](),
		scopes:      normalized,
		description: description,
		suffix:      suffix,
	}
	if o.hasDefault {
		s.def = o.def
		s.hasDefault = true
	}
	return s, nil
}

// normalizeScopes rejects empty, invalid and repeated tiers and returns a
// copy ordered from most to least specific.
func normalizeScopes(scopes []KeyType) ([]KeyType, error) {
	if len(scopes) == 0 {
		return nil, fmt.Errorf("no scopes declared")
	}
	out := make([]KeyType, 0, len(scopes))
	for _, t := range scopes {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidScope, t)
		}
		if slices.Contains(out, t) {
			return nil, fmt.Errorf("scope %s declared twice", t)
		}
		out = append(out, t)
	}
	slices.SortStableFunc(out, func(a, b KeyType) int {
		return b.specificity() - a.specificity()
	})
	return out, nil
}

// validName accepts dotted identifiers: segments of [A-Za-z][A-Za-z0-9_-]*
// joined by single dots.
func validName(name string) bool {
	if name == "" {
		return false
	}
	segmentStart := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '.':
			if segmentStart {
				return false
			}
			segmentStart = true
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			segmentStart = false
		case c >= '0' && c <= '9', c == '_', c == '-':
			if segmentStart {
				return false
			}
		default:
			return false
		}
	}
	return !segmentStart
}

func validSuffix(suffix string) bool {
	return len(suffix) > 1 && suffix[0] == '.' && validName(suffix[1:])
}
