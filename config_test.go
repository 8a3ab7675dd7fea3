package cookiekit_test

import (
	"net/http"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := cookiekit.DefaultConfig()
	assert.Equal(t, "lenient", cfg.ParseMode)
	assert.Equal(t, "/", cfg.Path)
	assert.True(t, cfg.HttpOnly)
	assert.False(t, cfg.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cfg.SameSite)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, cookiekit.ModeLenient, mode)
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("COOKIE_PARSE_MODE", "strict")
	t.Setenv("COOKIE_DOMAIN", "example.com")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_MAX_AGE", "7200")

	var cfg cookiekit.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "strict", cfg.ParseMode)
	assert.Equal(t, "example.com", cfg.Domain)
	assert.True(t, cfg.Secure)
	assert.Equal(t, 7200, cfg.MaxAge)
	// Untouched fields keep their env defaults.
	assert.Equal(t, "/", cfg.Path)
	assert.True(t, cfg.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cfg.SameSite)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, cookiekit.ModeStrict, mode)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	cfg := cookiekit.Config{
		Path:     "/app",
		Domain:   "example.com",
		MaxAge:   3600,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	c, err := cookiekit.New("session", "abc", cfg.Options()...)
	require.NoError(t, err)

	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, 3600, c.MaxAge)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}

func TestMiddlewareFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid mode", func(t *testing.T) {
		t.Parallel()

		cfg := cookiekit.DefaultConfig()
		cfg.ParseMode = "strict"

		mw, err := cookiekit.MiddlewareFromConfig(cfg)
		require.NoError(t, err)
		require.NotNil(t, mw)
	})

	t.Run("invalid mode", func(t *testing.T) {
		t.Parallel()

		cfg := cookiekit.DefaultConfig()
		cfg.ParseMode = "bogus"

		mw, err := cookiekit.MiddlewareFromConfig(cfg)
		require.ErrorIs(t, err, cookiekit.ErrInvalidParseMode)
		assert.Nil(t, mw)
	})
}
