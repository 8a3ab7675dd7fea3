package cookiekit

import (
	"fmt"
	"net/http"
	"time"
)

// Cookie represents a single HTTP cookie as carried by a Cookie request
// header (name and value only) or a Set-Cookie response header (name,
// value and attributes).
//
// The zero value of every attribute means "absent". MaxAge follows the
// net/http convention: 0 means no Max-Age attribute, a negative value
// means "expire now" (serialized as Max-Age=0), a positive value is the
// lifetime in seconds.
type Cookie struct {
	Name  string
	Value string

	Domain   string
	Path     string
	Expires  time.Time
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

// New creates a Cookie with the given name and value and applies the
// provided attribute options. The name must satisfy the RFC 6265 token
// grammar and the value must not contain control characters; violations
// are rejected here rather than at serialization time.
func New(name, value string, opts ...Option) (Cookie, error) {
	if !isValidName(name) {
		return Cookie{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !isValidValue(value) {
		return Cookie{}, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}

	c := Cookie{Name: name, Value: value}
	return applyOptions(c, opts), nil
}

// isValidName reports whether name is a non-empty RFC 6265 token:
// visible ASCII excluding the separator set ()<>@,;:\"/[]?={} and
// whitespace.
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isTokenByte(name[i]) {
			return false
		}
	}
	return true
}

func isTokenByte(b byte) bool {
	if b <= ' ' || b >= 0x7f {
		return false
	}
	switch b {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}':
		return false
	}
	return true
}

// isValidValue reports whether value is serializable: any byte is
// acceptable except ASCII control characters, which cannot appear on
// the wire even percent-encoded without surprising the receiver.
func isValidValue(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] == 0x7f {
			return false
		}
	}
	return true
}

// isCookieOctet reports whether b may appear raw in a cookie value per
// the RFC 6265 cookie-octet grammar: visible ASCII excluding DQUOTE,
// comma, semicolon and backslash.
func isCookieOctet(b byte) bool {
	return b == 0x21 ||
		(b >= 0x23 && b <= 0x2b) ||
		(b >= 0x2d && b <= 0x3a) ||
		(b >= 0x3c && b <= 0x5b) ||
		(b >= 0x5d && b <= 0x7e)
}
