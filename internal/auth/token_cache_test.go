package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// advancingClock returns a clock that moves forward one second per call.
func advancingClock(start time.Time) func() time.Time {
	var (
		mu    sync.Mutex
		calls int
	)

	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()

		calls++

		return start.Add(time.Duration(calls) * time.Second)
	}
}

func TestTokenCache_Generate(t *testing.T) {
	t.Parallel()

	t.Run("reuses a valid token", func(t *testing.T) {
		t.Parallel()

		cache := NewTokenCache()
		cache.now = advancingClock(time.Now())

		first, err := cache.Generate("eu1-secret", "user-42")
		require.NoError(t, err)

		second, err := cache.Generate("eu1-secret", "user-42")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		claims := parse(t, first, "eu1-secret")
		assert.Equal(t, "user-42", claims.Name)
	})

	t.Run("separates credentials", func(t *testing.T) {
		t.Parallel()

		cache := NewTokenCache()

		first, err := cache.Generate("eu1-secret", "user-1")
		require.NoError(t, err)

		second, err := cache.Generate("eu1-secret", "user-2")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
		assert.Equal(t, "user-2", parse(t, second, "eu1-secret").Name)
	})

	t.Run("signs a new token once the cached one expires", func(t *testing.T) {
		t.Parallel()

		cache := NewTokenCache()
		cache.now = func() time.Time { return time.Now().Add(-2 * TokenTTL) }

		expired, err := cache.Generate("eu1-secret", "user-42")
		require.NoError(t, err)

		cache.now = time.Now

		fresh, err := cache.Generate("eu1-secret", "user-42")
		require.NoError(t, err)
		assert.NotEqual(t, expired, fresh)
		assert.True(t, cache.store(credentials{apiToken: "eu1-secret", userID: "user-42"}).Get().ValidAt(time.Now()))
	})

	t.Run("renews when the cached token enters the expiry buffer", func(t *testing.T) {
		t.Parallel()

		issued := time.Now().Truncate(time.Second)
		reuseUntil := issued.Add(TokenTTL - ExpiryBuffer)

		var (
			mu  sync.Mutex
			now = issued
		)

		cache := NewTokenCache()
		cache.now = func() time.Time {
			mu.Lock()
			defer mu.Unlock()

			return now
		}
		setNow := func(value time.Time) {
			mu.Lock()
			defer mu.Unlock()

			now = value
		}

		first, err := cache.Generate("eu1-secret", "user-42")
		require.NoError(t, err)

		setNow(reuseUntil.Add(-time.Second))

		reused, err := cache.Generate("eu1-secret", "user-42")
		require.NoError(t, err)
		assert.Equal(t, first, reused)

		setNow(reuseUntil)

		renewed, err := cache.Generate("eu1-secret", "user-42")
		require.NoError(t, err)
		assert.NotEqual(t, first, renewed)
		assert.Equal(t, reuseUntil.Add(TokenTTL), cache.store(credentials{apiToken: "eu1-secret", userID: "user-42"}).Get().ExpiresAt)
	})

	t.Run("does not cache failures", func(t *testing.T) {
		t.Parallel()

		cache := NewTokenCache()

		_, err := cache.Generate("", "user-42")
		require.ErrorIs(t, err, ErrSigningKeyRequired)
		assert.Nil(t, cache.store(credentials{userID: "user-42"}).Get())
	})

	t.Run("concurrent callers", func(t *testing.T) {
		t.Parallel()

		cache := NewTokenCache()

		var wg sync.WaitGroup

		for range 10 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				token, err := cache.Generate("eu1-secret", "user-42")
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}()
		}

		wg.Wait()
	})
}
