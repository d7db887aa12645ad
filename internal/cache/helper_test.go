package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAsideFetchesOnMissAndCaches(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	var got []string
	fetch := func() error {
		calls++
		got = []string{"go", "sql"}
		return nil
	}

	require.NoError(t, Aside(ctx, "k", &got, time.Minute, fetch))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"go", "sql"}, got)

	// Second call should be served from cache.
	var again []string
	require.NoError(t, Aside(ctx, "k", &again, time.Minute, func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"go", "sql"}, again)
}

func TestAsidePropagatesFetchError(t *testing.T) {
	setupMiniredis(t)

	wantErr := errors.New("boom")
	var dest string
	err := Aside(context.Background(), "missing", &dest, time.Minute, func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestAsideWithoutClientStillFetches(t *testing.T) {
	SetClient(nil)

	var dest int
	require.NoError(t, Aside(context.Background(), "k", &dest, time.Minute, func() error {
		dest = 7
		return nil
	}))
	assert.Equal(t, 7, dest)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, ProfileListKey(), []string{"a"}, time.Minute))
	require.True(t, mr.Exists(ProfileListKey()))

	InvalidateProfileList(ctx)
	assert.False(t, mr.Exists(ProfileListKey()))
}
