package cookiekit

import (
	"fmt"
	"net/url"
	"strings"
)

// Mode selects the parsing grammar for a Cookie request header.
type Mode int

const (
	// ModeLenient skips malformed pairs and keeps going. This is the
	// default.
	ModeLenient Mode = iota
	// ModeStrict rejects the whole header on the first malformed pair.
	ModeStrict
)

// ModeFromString converts a configuration string to a Mode.
func ModeFromString(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lenient", "":
		return ModeLenient, nil
	case "strict":
		return ModeStrict, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidParseMode, s)
	}
}

func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "lenient"
}

// ParseCookieHeader parses a raw Cookie request header value into the
// ordered sequence of name/value pairs it carries. Pairs keep header
// order and duplicates are preserved; collapsing duplicates to the
// last occurrence is the jar's job.
//
// In ModeStrict any grammar violation fails the whole parse with
// ErrMalformedHeader and no pairs are returned. In ModeLenient
// malformed pairs are dropped individually, whitespace around ';' and
// '=' is trimmed, and a value whose percent-escapes do not decode is
// kept raw rather than dropped.
//
// An empty header yields no pairs and no error in either mode.
func ParseCookieHeader(header string, mode Mode) ([]Cookie, error) {
	if strings.TrimSpace(header) == "" {
		return nil, nil
	}

	var cookies []Cookie
	for i, segment := range strings.Split(header, ";") {
		c, err := parsePair(segment, mode)
		if err != nil {
			if mode == ModeStrict {
				return nil, fmt.Errorf("%w: pair %d: %v", ErrMalformedHeader, i+1, err)
			}
			continue
		}
		cookies = append(cookies, c)
	}
	return cookies, nil
}

func parsePair(segment string, mode Mode) (Cookie, error) {
	pair := strings.TrimSpace(segment)
	if pair == "" {
		return Cookie{}, fmt.Errorf("empty pair")
	}

	name, value, found := strings.Cut(pair, "=")
	if !found {
		return Cookie{}, fmt.Errorf("missing '=' in %q", pair)
	}
	if mode == ModeLenient {
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
	}
	if !isValidName(name) {
		return Cookie{}, fmt.Errorf("invalid name %q", name)
	}

	value, err := parseValue(value, mode)
	if err != nil {
		return Cookie{}, err
	}

	return Cookie{Name: name, Value: value}, nil
}

// parseValue unwraps an optional DQUOTE pair, enforces the
// cookie-octet grammar in strict mode, and percent-decodes the result.
func parseValue(raw string, mode Mode) (string, error) {
	value := raw
	switch {
	case len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"':
		value = value[1 : len(value)-1]
	case strings.HasPrefix(value, `"`) || strings.HasSuffix(value, `"`):
		if mode == ModeStrict {
			return "", fmt.Errorf("unbalanced quote in value %q", raw)
		}
		// Lenient keeps the lone quote as part of the value.
	}

	if mode == ModeStrict {
		for i := 0; i < len(value); i++ {
			if !isCookieOctet(value[i]) {
				return "", fmt.Errorf("illegal byte %q in value %q", value[i], raw)
			}
		}
	}

	if !strings.Contains(value, "%") {
		return value, nil
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		if mode == ModeStrict {
			return "", fmt.Errorf("invalid percent-escape in value %q", raw)
		}
		return value, nil
	}
	return decoded, nil
}
