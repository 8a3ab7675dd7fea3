package cookiekit

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// SetCookieHeader renders the cookie as a Set-Cookie header value:
// name=value followed by the attributes that are present, always in
// the order Domain, Path, Expires, Max-Age, Secure, HttpOnly,
// SameSite, so output is deterministic.
//
// The value is percent-encoded where it contains bytes the cookie
// grammar forbids, in a form ParseCookieHeader decodes back to the
// original. SameSite=None without Secure is rejected with
// ErrInvalidAttributeCombination since browsers discard such cookies.
func (c Cookie) SetCookieHeader() (string, error) {
	if !isValidName(c.Name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, c.Name)
	}
	if c.SameSite == http.SameSiteNoneMode && !c.Secure {
		return "", fmt.Errorf("%w: SameSite=None requires Secure", ErrInvalidAttributeCombination)
	}

	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(encodeValue(c.Value))

	if c.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.Domain)
	}
	if c.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.Path)
	}
	if !c.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(c.Expires.UTC().Format(http.TimeFormat))
	}
	switch {
	case c.MaxAge > 0:
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(c.MaxAge))
	case c.MaxAge < 0:
		b.WriteString("; Max-Age=0")
	}
	if c.Secure {
		b.WriteString("; Secure")
	}
	if c.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	switch c.SameSite {
	case http.SameSiteStrictMode:
		b.WriteString("; SameSite=Strict")
	case http.SameSiteLaxMode:
		b.WriteString("; SameSite=Lax")
	case http.SameSiteNoneMode:
		b.WriteString("; SameSite=None")
	}

	return b.String(), nil
}

// encodeValue leaves cookie-octet bytes untouched and percent-encodes
// everything else. '%' itself is always encoded so decoding is
// unambiguous and serialize-then-parse returns the original value.
func encodeValue(value string) string {
	safe := true
	for i := 0; i < len(value); i++ {
		if b := value[i]; !isCookieOctet(b) || b == '%' {
			safe = false
			break
		}
	}
	if safe {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 2*3)
	for i := 0; i < len(value); i++ {
		if v := value[i]; isCookieOctet(v) && v != '%' {
			b.WriteByte(v)
		} else {
			fmt.Fprintf(&b, "%%%02X", value[i])
		}
	}
	return b.String()
}
