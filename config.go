package cookiekit

import "net/http"

// Config holds cookie engine configuration for the integration layer.
type Config struct {
	ParseMode string        `env:"COOKIE_PARSE_MODE" envDefault:"lenient"`
	Path      string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain    string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge    int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure    bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly  bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite  http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// DefaultConfig returns the default cookie configuration: lenient
// parsing and Lax, HttpOnly response cookies.
func DefaultConfig() Config {
	return Config{
		ParseMode: "lenient",
		Path:      "/",
		Domain:    "",
		MaxAge:    0,
		Secure:    false,
		HttpOnly:  true,
		SameSite:  http.SameSiteLaxMode,
	}
}

// Mode parses the configured parse mode.
func (c Config) Mode() (Mode, error) {
	return ModeFromString(c.ParseMode)
}

// Options converts the non-zero attribute fields into cookie options,
// for use as application-wide defaults when constructing cookies:
//
//	c, err := cookiekit.New("session", id, cfg.Options()...)
func (c Config) Options() []Option {
	opts := make([]Option, 0, 6)

	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.MaxAge != 0 {
		opts = append(opts, WithMaxAge(c.MaxAge))
	}
	if c.Secure {
		opts = append(opts, WithSecure(c.Secure))
	}
	if c.HttpOnly {
		opts = append(opts, WithHTTPOnly(c.HttpOnly))
	}
	if c.SameSite != 0 {
		opts = append(opts, WithSameSite(c.SameSite))
	}

	return opts
}

// MiddlewareFromConfig builds the cookie middleware from the provided
// Config. Additional options are applied after the config-derived
// ones.
func MiddlewareFromConfig(cfg Config, opts ...MiddlewareOption) (func(http.Handler) http.Handler, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}

	configOpts := append([]MiddlewareOption{WithMode(mode)}, opts...)
	return Middleware(configOpts...), nil
}
