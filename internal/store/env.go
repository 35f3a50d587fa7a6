// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/caarlos0/env/v11"
)

// EnvStore overlays the global tier with environment variables. A key name
// maps to its variable by splitting camel case and dots:
//
//	database.checkConnection -> DATABASE_CHECK_CONNECTION
//
// The mapping loses case, so listing needs the registry to turn variables
// back into key names.
type EnvStore struct {
	prefix   string
	vars     map[string]string
	registry *keys.Registry
}

// NewEnvStore snapshots environ (usually os.Environ()). registry may be nil,
// in which case ListRaw reports nothing.
func NewEnvStore(prefix string, environ []string, registry *keys.Registry) *EnvStore {
	return &EnvStore{prefix: prefix, vars: env.ToMap(environ), registry: registry}
}

// VariableName returns the environment variable consulted for name.
func (e *EnvStore) VariableName(name string) string {
	return e.prefix + EnvironmentName(name)
}

func (e *EnvStore) GetRaw(_ context.Context, scope keys.KeyType, _ string, name string) (any, bool, error) {
	if scope != keys.Global {
		return nil, false, nil
	}
	v, ok := e.vars[e.VariableName(name)]
	return v, ok, nil
}

func (e *EnvStore) SetRaw(_ context.Context, _ keys.KeyType, _, name, _ string) error {
	return fmt.Errorf("%w: %s comes from the environment", keys.ErrReadOnly, e.VariableName(name))
}

// ListRaw reports the registered keys set through the environment. Protocol
// keys are found as <PROTOCOL>_<SUFFIX>, e.g. OSMAND_PORT for osmand.port.
func (e *EnvStore) ListRaw(_ context.Context, scope keys.KeyType, _ string) (map[string]any, error) {
	out := make(map[string]any)
	if scope != keys.Global || e.registry == nil {
		return out, nil
	}

	for _, d := range e.registry.All() {
		if !d.IsSuffix() {
			if v, ok := e.vars[e.VariableName(d.Name())]; ok {
				out[d.Name()] = v
			}
			continue
		}

		tail := EnvironmentName(d.Name())
		for variable, v := range e.vars {
			head, ok := strings.CutPrefix(variable, e.prefix)
			if !ok {
				continue
			}
			protocol, ok := strings.CutSuffix(head, tail)
			if !ok || protocol == "" || strings.Contains(protocol, "_") {
				continue
			}
			name := strings.ToLower(protocol) + d.Name()
			if matched, _, err := e.registry.Match(name); err != nil || matched.Name() != d.Name() {
				continue
			}
			out[name] = v
		}
	}
	return out, nil
}

// EnvironmentName converts a dotted camel-case key name to UPPER_SNAKE.
func EnvironmentName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 8)

	var prev rune
	for i, r := range name {
		switch {
		case r == '.' || r == '-':
			b.WriteByte('_')
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			b.WriteByte('_')
			b.WriteRune(r)
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
		prev = r
	}
	return b.String()
}
