package cookiekit

import (
	"net/http"
	"time"
)

// Option configures an attribute on a Cookie under construction.
type Option func(*Cookie)

func WithPath(path string) Option {
	return func(c *Cookie) {
		c.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(c *Cookie) {
		c.Domain = domain
	}
}

func WithExpires(t time.Time) Option {
	return func(c *Cookie) {
		c.Expires = t
	}
}

func WithMaxAge(seconds int) Option {
	return func(c *Cookie) {
		c.MaxAge = seconds
	}
}

func WithSecure(secure bool) Option {
	return func(c *Cookie) {
		c.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(c *Cookie) {
		c.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(c *Cookie) {
		c.SameSite = sameSite
	}
}

// applyOptions copies the base cookie and applies the option functions
// to the copy, leaving the base untouched.
func applyOptions(base Cookie, opts []Option) Cookie {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
