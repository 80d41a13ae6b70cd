package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.Get("flights")
	require.False(t, ok)

	require.NoError(t, s.Set("flights", `[{"a":1}]`))
	v, ok := s.Get("flights")
	require.True(t, ok)
	require.Equal(t, `[{"a":1}]`, v)

	require.NoError(t, s.Set("flights", `[]`))
	v, _ = s.Get("flights")
	require.Equal(t, `[]`, v)

	require.ErrorIs(t, s.Set("", "x"), ErrEmptyKey)
	require.NoError(t, s.Close())
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := "itinerary"
			if i%2 == 0 {
				key = "flights"
			}
			_ = s.Set(key, "[]")
			_, _ = s.Get(key)
		}(i)
	}
	wg.Wait()

	_, ok := s.Get("flights")
	require.True(t, ok)
	_, ok = s.Get("itinerary")
	require.True(t, ok)
}
