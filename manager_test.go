package cookiekit_test

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit"
)

func TestManager_AddGetRemove(t *testing.T) {
	t.Parallel()

	manager := cookiekit.NewManager(nil)
	c := mustCookie(t, "key", "value")
	manager.Add(c)

	got, ok := manager.Get("key")
	require.True(t, ok)
	assert.Equal(t, c, got)

	manager.Remove("key")
	_, ok = manager.Get("key")
	assert.False(t, ok)
}

func TestManager_SetIsAddAlias(t *testing.T) {
	t.Parallel()

	manager := cookiekit.NewManager(nil)
	manager.Set(mustCookie(t, "key", "value"))

	got, ok := manager.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got.Value)
}

func TestManager_SetCookieHeaders(t *testing.T) {
	t.Parallel()

	t.Run("request lifecycle", func(t *testing.T) {
		t.Parallel()

		manager := cookiekit.NewManager(cookiekit.ParseJar("session=abc123; theme=dark"))
		manager.Remove("theme")
		manager.Add(mustCookie(t, "lang", "en"))

		headers, err := manager.SetCookieHeaders()
		require.NoError(t, err)
		require.Len(t, headers, 2)

		// Name order: lang before theme; session produced no header
		// because the client already has it.
		assert.Equal(t, "lang=en", headers[0])
		assert.True(t, strings.HasPrefix(headers[1], "theme="), headers[1])
		assert.Contains(t, headers[1], "Max-Age=0")
		for _, h := range headers {
			assert.NotContains(t, h, "session")
		}
	})

	t.Run("no changes yields no headers", func(t *testing.T) {
		t.Parallel()

		manager := cookiekit.NewManager(cookiekit.ParseJar("session=abc123"))
		headers, err := manager.SetCookieHeaders()
		require.NoError(t, err)
		assert.Empty(t, headers)
	})

	t.Run("serialization failure fails whole export", func(t *testing.T) {
		t.Parallel()

		manager := cookiekit.NewManager(nil)
		manager.Add(mustCookie(t, "good", "v"))
		manager.Add(mustCookie(t, "broken", "v",
			cookiekit.WithSameSite(http.SameSiteNoneMode)))

		headers, err := manager.SetCookieHeaders()
		require.ErrorIs(t, err, cookiekit.ErrInvalidAttributeCombination)
		assert.Nil(t, headers)
	})
}

func TestManager_Cookies(t *testing.T) {
	t.Parallel()

	manager := cookiekit.NewManager(cookiekit.ParseJar("b=2; a=1"))
	seq := manager.Cookies()

	manager.Remove("a")

	var names []string
	for c := range seq {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestManager_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	manager := cookiekit.NewManager(cookiekit.ParseJar("seed=1"))

	const numGoroutines = 50
	const numOperations = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()

			name := fmt.Sprintf("c%d", id)
			for range numOperations {
				manager.Add(cookiekit.Cookie{Name: name, Value: "v"})
				if _, ok := manager.Get(name); !ok {
					t.Errorf("cookie %s disappeared between Add and Get", name)
					return
				}
				_ = slices.Collect(manager.Cookies())
				if _, err := manager.SetCookieHeaders(); err != nil {
					t.Errorf("export failed: %v", err)
					return
				}
				manager.Remove(name)
			}
		}(i)
	}

	wg.Wait()

	_, ok := manager.Get("seed")
	assert.True(t, ok)
}
