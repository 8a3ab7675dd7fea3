package cookiekit

import "errors"

var (
	ErrMalformedHeader             = errors.New("cookiekit.malformed_header")
	ErrInvalidName                 = errors.New("cookiekit.invalid_name")
	ErrInvalidValue                = errors.New("cookiekit.invalid_value")
	ErrInvalidAttributeCombination = errors.New("cookiekit.invalid_attribute_combination")
	ErrNotInitialized              = errors.New("cookiekit.not_initialized")
	ErrInvalidParseMode            = errors.New("cookiekit.invalid_parse_mode")
)
