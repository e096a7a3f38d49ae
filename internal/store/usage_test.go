package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsage_EmptyStore(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		u, err := s.Usage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Usage{}, u)
	})
}

func TestUsage_CountsUTF16Units(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()

		// Thai characters are one UTF-16 unit each, three UTF-8 bytes each.
		require.NoError(t, s.backend.Put(ctx, "k", []byte("\"\u0e19\u0e49\u0e33\"")))

		u, err := s.Usage(ctx)
		require.NoError(t, err)
		// key 1 + value 5 (two quotes + three runes), two bytes each.
		assert.Equal(t, 12, u.Bytes)
	})
}

func TestNewUsage_RoundsAndCaps(t *testing.T) {
	u := newUsage(1024 * 1024)
	assert.Equal(t, 1.0, u.SizeMB)
	assert.Equal(t, 20.0, u.Percentage)

	u = newUsage(12 * 1024 * 1024)
	assert.Equal(t, 12.0, u.SizeMB)
	assert.Equal(t, 100.0, u.Percentage)

	u = newUsage(1536 * 1024)
	assert.Equal(t, 1.5, u.SizeMB)
	assert.Equal(t, 30.0, u.Percentage)
}
