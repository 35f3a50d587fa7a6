// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tracker-config/internal/logger"
)

// Resolver computes effective values of declared keys against a Store. It
// holds no mutable state and is safe for concurrent use.
type Resolver struct {
	registry *Registry
	store    Store
}

// NewResolver binds a registry to a backing store.
func NewResolver(registry *Registry, store Store) *Resolver {
	return &Resolver{registry: registry, store: store}
}

// Registry returns the registry the resolver validates keys against.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Probe records one store lookup made during resolution.
type Probe struct {
	Scope    KeyType `json:"scope"`
	Identity string  `json:"identity,omitempty"`
	Found    bool    `json:"found"`
	Raw      any     `json:"raw,omitempty"`
}

// Resolution is the untyped outcome of resolving a concrete name, including
// every tier probed on the way.
type Resolution struct {
	Name       string     `json:"name"`
	Descriptor Descriptor `json:"-"`
	Value      any        `json:"value,omitempty"`
	Source     Source     `json:"source"`
	Probes     []Probe    `json:"probes"`
}

// Present reports whether a value or default was found.
func (r Resolution) Present() bool {
	return r.Source.Origin != OriginAbsent
}

// Resolve returns the effective value of key for target: the most specific
// tier holding a value wins, then the declared default, then absence.
func Resolve[T Scalar](ctx context.Context, r *Resolver, key *Key[T], target Target) (Value[T], error) {
	if key == nil {
		return Value[T]{}, fmt.Errorf("%w: nil key", ErrUnknownKey)
	}
	if !r.registry.contains(key) {
		return Value[T]{}, fmt.Errorf("%w: %q is not registered", ErrUnknownKey, key.Name())
	}
	res, err := r.resolve(ctx, key, key.Name(), target)
	if err != nil {
		return Value[T]{}, err
	}
	return valueOf[T](res), nil
}

// ResolveSuffix resolves the instantiation prefix+suffix exactly like a key
// declared with the suffix's scopes and default.
func ResolveSuffix[T Scalar](ctx context.Context, r *Resolver, suffix *Suffix[T], prefix string, target Target) (Value[T], error) {
	if suffix == nil {
		return Value[T]{}, fmt.Errorf("%w: nil suffix", ErrUnknownKey)
	}
	if !r.registry.contains(suffix) {
		return Value[T]{}, fmt.Errorf("%w: suffix %q is not registered", ErrUnknownKey, suffix.Name())
	}
	name, err := suffix.Resolve(prefix)
	if err != nil {
		return Value[T]{}, err
	}
	res, err := r.resolve(ctx, suffix, name, target)
	if err != nil {
		return Value[T]{}, err
	}
	return valueOf[T](res), nil
}

// ResolveName resolves any declared key or suffix instantiation by its
// concrete name ("web.port", "osmand.port").
func (r *Resolver) ResolveName(ctx context.Context, name string, target Target) (Resolution, error) {
	d, _, err := r.registry.Match(name)
	if err != nil {
		return Resolution{}, err
	}
	return r.resolve(ctx, d, name, target)
}

func (r *Resolver) resolve(ctx context.Context, d Descriptor, name string, target Target) (Resolution, error) {
	s := d.spec()
	res := Resolution{
		Name:       name,
		Descriptor: d,
		Probes:     make([]Probe, 0, len(s.scopes)),
	}

	for _, scope := range s.scopes {
		identity, ok := target.Identity(scope)
		if !ok {
			continue
		}

		raw, found, err := r.store.GetRaw(ctx, scope, identity, name)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "Resolver.resolve").
				Str("key", name).
				Str("scope", scope.String()).
				Msg("error reading backing store")
			return Resolution{}, fmt.Errorf("reading %q at %s tier: %w", name, scope, err)
		}
		res.Probes = append(res.Probes, Probe{Scope: scope, Identity: identity, Found: found, Raw: raw})
		if !found {
			continue
		}

		v, err := Coerce(s.valueType, raw)
		if err != nil {
			return Resolution{}, fmt.Errorf("%q at %s tier: %w", name, scope, err)
		}
		res.Value = v
		res.Source = Source{Origin: OriginStore, Scope: scope, Identity: identity, Name: name}
		return res, nil
	}

	if s.hasDefault {
		res.Value = s.def
		res.Source = Source{Origin: OriginDefault, Name: name}
		return res, nil
	}

	res.Source = Source{Origin: OriginAbsent, Name: name}
	return res, nil
}

// Set writes value for key at the given tier. identity must be empty for
// Global and set for Protocol and Device.
func Set[T Scalar](ctx context.Context, r *Resolver, key *Key[T], scope KeyType, identity string, value T) error {
	if key == nil {
		return fmt.Errorf("%w: nil key", ErrUnknownKey)
	}
	if !r.registry.contains(key) {
		return fmt.Errorf("%w: %q is not registered", ErrUnknownKey, key.Name())
	}
	return r.write(ctx, key, key.Name(), scope, identity, value)
}

// SetSuffix writes value for the instantiation prefix+suffix.
func SetSuffix[T Scalar](ctx context.Context, r *Resolver, suffix *Suffix[T], prefix string, scope KeyType, identity string, value T) error {
	if suffix == nil {
		return fmt.Errorf("%w: nil suffix", ErrUnknownKey)
	}
	if !r.registry.contains(suffix) {
		return fmt.Errorf("%w: suffix %q is not registered", ErrUnknownKey, suffix.Name())
	}
	name, err := suffix.Resolve(prefix)
	if err != nil {
		return err
	}
	return r.write(ctx, suffix, name, scope, identity, value)
}

// SetRaw validates raw against the declared type of name and stores its
// canonical form.
func (r *Resolver) SetRaw(ctx context.Context, name string, scope KeyType, identity, raw string) error {
	d, _, err := r.registry.Match(name)
	if err != nil {
		return err
	}
	if err = checkSlot(d, name, scope, identity); err != nil {
		return err
	}
	v, err := Coerce(d.ValueType(), raw)
	if err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	return r.write(ctx, d, name, scope, identity, v)
}

// Unset removes the value stored for name at the given tier.
func (r *Resolver) Unset(ctx context.Context, name string, scope KeyType, identity string) error {
	d, _, err := r.registry.Match(name)
	if err != nil {
		return err
	}
	if err = checkSlot(d, name, scope, identity); err != nil {
		return err
	}
	deleter, ok := r.store.(Deleter)
	if !ok {
		return fmt.Errorf("%w: cannot remove %q", ErrReadOnly, name)
	}
	if err = deleter.DeleteRaw(ctx, scope, identity, name); err != nil {
		return fmt.Errorf("removing %q at %s tier: %w", name, scope, err)
	}
	return nil
}

func (r *Resolver) write(ctx context.Context, d Descriptor, name string, scope KeyType, identity string, value any) error {
	if err := checkSlot(d, name, scope, identity); err != nil {
		return err
	}
	text, err := Format(d.ValueType(), value)
	if err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	if err = r.store.SetRaw(ctx, scope, identity, name, text); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Resolver.write").
			Str("key", name).
			Str("scope", scope.String()).
			Msg("error writing backing store")
		return fmt.Errorf("writing %q at %s tier: %w", name, scope, err)
	}
	return nil
}

// checkSlot enforces the declared scopes of d before any store access.
func checkSlot(d Descriptor, name string, scope KeyType, identity string) error {
	if !scope.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidScope, scope)
	}
	if !d.Allows(scope) {
		return fmt.Errorf("%w: %q cannot be set at %s tier", ErrIllegalScope, name, scope)
	}
	if (scope == Global) != (identity == "") {
		return fmt.Errorf("%w: %q at %s tier with identity %q", ErrMissingIdentity, name, scope, identity)
	}
	return nil
}

func valueOf[T Scalar](res Resolution) Value[T] {
	v := Value[T]{source: res.Source}
	if res.Present() {
		v.value = res.Value.(T)
	}
	return v
}
