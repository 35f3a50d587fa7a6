package store

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, ok, err := m.GetRaw(ctx, keys.Global, "", "web.port")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.SetRaw(ctx, keys.Global, "", "web.port", "9000"))
	raw, ok, err := m.GetRaw(ctx, keys.Global, "", "web.port")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "9000", raw)

	// other tiers are separate slots
	_, ok, _ = m.GetRaw(ctx, keys.Device, "42", "web.port")
	assert.False(t, ok)

	require.NoError(t, m.DeleteRaw(ctx, keys.Global, "", "web.port"))
	_, ok, _ = m.GetRaw(ctx, keys.Global, "", "web.port")
	assert.False(t, ok)

	// deleting an absent value is fine
	require.NoError(t, m.DeleteRaw(ctx, keys.Global, "", "web.port"))
}

func TestMemoryStore_ListRaw(t *testing.T) {
	m := NewMemoryStore()
	m.Put(keys.Device, "42", "speedLimit", 80.5)
	m.Put(keys.Device, "42", "filter.enable", true)
	m.Put(keys.Device, "7", "speedLimit", 60.0)
	m.Put(keys.Global, "", "web.port", "8082")

	got, err := m.ListRaw(context.Background(), keys.Device, "42")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"speedLimit": 80.5, "filter.enable": true}, got)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.SetRaw(ctx, keys.Global, "", "web.port", "9000")
		}()
		go func() {
			defer wg.Done()
			_, _, _ = m.GetRaw(ctx, keys.Global, "", "web.port")
		}()
	}
	wg.Wait()

	raw, ok, _ := m.GetRaw(ctx, keys.Global, "", "web.port")
	assert.True(t, ok)
	assert.Equal(t, "9000", raw)
}
