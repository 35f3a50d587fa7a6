// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"fmt"
	"slices"
	"strings"
)

// Builder collects declarations at startup. It is not safe for concurrent
// use; Build produces the immutable Registry used afterwards.
type Builder struct {
	byName map[string]Descriptor
	order  []Descriptor
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byName: make(map[string]Descriptor)}
}

// Register adds d. A name (or suffix) that is already present fails with
// ErrDuplicateKey and leaves the builder unchanged.
func (b *Builder) Register(d Descriptor) error {
	if d == nil || d.spec() == nil {
		return fmt.Errorf("%w: nil descriptor", ErrInvalidDeclaration)
	}
	name := d.Name()
	if _, exists := b.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, name)
	}
	b.byName[name] = d
	b.order = append(b.order, d)
	return nil
}

// RegisterAll adds every descriptor or none of them.
func (b *Builder) RegisterAll(ds ...Descriptor) error {
	seen := make(map[string]struct{}, len(ds))
	for _, d := range ds {
		if d == nil || d.spec() == nil {
			return fmt.Errorf("%w: nil descriptor", ErrInvalidDeclaration)
		}
		name := d.Name()
		if _, exists := b.byName[name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, name)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, name)
		}
		seen[name] = struct{}{}
	}
	for _, d := range ds {
		b.byName[d.Name()] = d
		b.order = append(b.order, d)
	}
	return nil
}

// Build returns a Registry holding the declarations registered so far. Later
// registrations on b do not affect it.
func (b *Builder) Build() *Registry {
	r := &Registry{
		byName: make(map[string]Descriptor, len(b.byName)),
		all:    slices.Clone(b.order),
	}
	for name, d := range b.byName {
		r.byName[name] = d
	}
	return r
}

// Registry is the read-only catalogue of declared keys and suffixes. It has
// no mutating methods and is safe for concurrent use without locking.
type Registry struct {
	byName map[string]Descriptor
	all    []Descriptor
}

// NewRegistry builds a Registry from ds in one step.
func NewRegistry(ds ...Descriptor) (*Registry, error) {
	b := NewBuilder()
	if err := b.RegisterAll(ds...); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Lookup returns the plain key declared under name.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	d, ok := r.byName[name]
	if !ok || d.IsSuffix() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return d, nil
}

// LookupSuffix returns the suffix key declared under suffix (".port").
func (r *Registry) LookupSuffix(suffix string) (Descriptor, error) {
	d, ok := r.byName[suffix]
	if !ok || !d.IsSuffix() {
		return nil, fmt.Errorf("%w: suffix %q", ErrUnknownKey, suffix)
	}
	return d, nil
}

// Match finds the declaration behind a concrete name. A plain key wins;
// otherwise the longest declared suffix with a non-empty, well-formed prefix
// is used and the prefix is returned alongside it.
func (r *Registry) Match(name string) (Descriptor, string, error) {
	if d, err := r.Lookup(name); err == nil {
		return d, "", nil
	}
	for i := strings.IndexByte(name, '.'); i > 0; {
		prefix, suffix := name[:i], name[i:]
		if d, err := r.LookupSuffix(suffix); err == nil && validName(prefix) {
			return d, prefix, nil
		}
		next := strings.IndexByte(name[i+1:], '.')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return nil, "", fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// All returns every declaration in registration order.
func (r *Registry) All() []Descriptor {
	return slices.Clone(r.all)
}

// Len returns the number of declarations.
func (r *Registry) Len() int {
	return len(r.all)
}

// contains reports whether d itself (not merely its name) is registered.
func (r *Registry) contains(d Descriptor) bool {
	registered, ok := r.byName[d.Name()]
	return ok && registered.spec() == d.spec()
}
