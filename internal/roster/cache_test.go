package roster

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "nested", "cache.db"))
	require.NoError(t, err)
	defer cache.Close()

	_, _, err = cache.Payload(ctx)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, cache.Store(ctx, []byte(`[]`)))
	payload, fetchedAt, err := cache.Payload(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), payload)
	assert.WithinDuration(t, time.Now(), fetchedAt, time.Minute)

	// A second store replaces the single cached row.
	require.NoError(t, cache.Store(ctx, []byte(`[1]`)))
	payload, _, err = cache.Payload(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), payload)
}

func TestDefaultCachePathOverride(t *testing.T) {
	t.Setenv("PTNDLE_CACHE_DB", "/tmp/somewhere/cache.db")
	assert.Equal(t, "/tmp/somewhere/cache.db", DefaultCachePath())
}
