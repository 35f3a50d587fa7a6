package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Key ──────────────────────────────────────────────────────────────────────

// TestNewKey_Fields verifies a declaration exposes its name, type, scopes,
// description and default.
func TestNewKey_Fields(t *testing.T) {
	k, err := NewKey[int]("web.port", "Web interface port.", Scopes(Global), WithDefault(8082))
	require.NoError(t, err)

	assert.Equal(t, "web.port", k.Name())
	assert.Equal(t, TypeInteger, k.ValueType())
	assert.Equal(t, []KeyType{Global}, k.Scopes())
	assert.Equal(t, "Web interface port.", k.Description())
	assert.False(t, k.IsSuffix())

	def, ok := k.Default()
	assert.True(t, ok)
	assert.Equal(t, 8082, def)

	raw, ok := k.DefaultValue()
	assert.True(t, ok)
	assert.Equal(t, 8082, raw)
}

// TestNewKey_NoDefault verifies a key without a default reports none, even
// for types whose zero value is meaningful.
func TestNewKey_NoDefault(t *testing.T) {
	k, err := NewKey[bool]("filter.enable", "", Scopes(Global))
	require.NoError(t, err)

	_, ok := k.Default()
	assert.False(t, ok)
	_, ok = k.DefaultValue()
	assert.False(t, ok)
}

// TestNewKey_ScopesNormalized verifies scopes are ordered most specific first
// regardless of declaration order.
func TestNewKey_ScopesNormalized(t *testing.T) {
	k, err := NewKey[string]("geocoder.format", "", Scopes(Global, Device, Protocol))
	require.NoError(t, err)
	assert.Equal(t, []KeyType{Device, Protocol, Global}, k.Scopes())
	assert.True(t, k.Allows(Protocol))

	scopes := k.Scopes()
	scopes[0] = Global
	assert.Equal(t, Device, k.Scopes()[0], "Scopes must return a copy")
}

// TestNewKey_Invalid verifies malformed declarations fail with
// ErrInvalidDeclaration.
func TestNewKey_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		scopes []KeyType
	}{
		{name: "empty name", key: "", scopes: Scopes(Global)},
		{name: "leading dot", key: ".port", scopes: Scopes(Global)},
		{name: "trailing dot", key: "web.", scopes: Scopes(Global)},
		{name: "double dot", key: "web..port", scopes: Scopes(Global)},
		{name: "space", key: "web port", scopes: Scopes(Global)},
		{name: "digit first", key: "1web.port", scopes: Scopes(Global)},
		{name: "no scopes", key: "web.port", scopes: nil},
		{name: "zero scope", key: "web.port", scopes: []KeyType{0}},
		{name: "repeated scope", key: "web.port", scopes: Scopes(Global, Global)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKey[int](tt.key, "", tt.scopes)
			assert.ErrorIs(t, err, ErrInvalidDeclaration)
		})
	}
}

// TestMustKey_Panics verifies MustKey panics on an invalid declaration.
func TestMustKey_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustKey[int]("bad name", "", Scopes(Global))
	})
	assert.NotPanics(t, func() {
		MustKey[int64]("database.maxPoolSize", "", Scopes(Global))
	})
}

// ── Suffix ───────────────────────────────────────────────────────────────────

// TestSuffix_Resolve verifies instantiation by prefix.
func TestSuffix_Resolve(t *testing.T) {
	s, err := NewSuffix[int](".port", "Protocol port.", Scopes(Global))
	require.NoError(t, err)
	assert.True(t, s.IsSuffix())
	assert.Equal(t, ".port", s.Suffix())

	name, err := s.Resolve("osmand")
	require.NoError(t, err)
	assert.Equal(t, "osmand.port", name)

	_, err = s.Resolve("")
	assert.ErrorIs(t, err, ErrUnknownKey)
	_, err = s.Resolve("bad prefix")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

// TestNewSuffix_Invalid verifies a suffix must begin with one dot.
func TestNewSuffix_Invalid(t *testing.T) {
	for _, suffix := range []string{"port", ".", "..port", ".port."} {
		_, err := NewSuffix[int](suffix, "", Scopes(Global))
		assert.ErrorIs(t, err, ErrInvalidDeclaration, suffix)
	}
}

// TestSuffix_Default verifies suffix defaults are typed.
func TestSuffix_Default(t *testing.T) {
	s := MustSuffix[int64](".timeout", "", Scopes(Protocol, Global), WithDefault[int64](600))
	def, ok := s.Default()
	assert.True(t, ok)
	assert.Equal(t, int64(600), def)
	assert.Equal(t, []KeyType{Protocol, Global}, s.Scopes())
}
