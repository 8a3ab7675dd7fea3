// Package cookiekit is a request-scoped cookie engine for Go HTTP services.
//
// It parses the Cookie header of an incoming request into a jar, lets handler
// code inspect and mutate that jar through a thread-safe manager, and turns
// the pending changes into Set-Cookie response headers when the request
// completes. It models only the wire-level Cookie/Set-Cookie contract: no
// session storage, no signing or encryption, no cross-request state.
//
// # Overview
//
// The `Cookie` value type carries a name, a value and the optional Set-Cookie
// attributes (Domain, Path, Expires, Max-Age, Secure, HttpOnly, SameSite).
// A `Jar` holds one request's cookies keyed by name and tracks what changed;
// a `Manager` wraps a jar behind a mutex so concurrent goroutines handling
// the same request can share it. The `Middleware` wires the three together:
// parse on the way in, expose the manager via the request context, append
// Set-Cookie headers on the way out.
//
// # Parsing modes
//
// Two grammars are supported. Lenient mode (the default) trims whitespace,
// skips malformed pairs and keeps the last occurrence of a duplicated name.
// Strict mode enforces the RFC 6265 token and cookie-octet grammars and
// rejects the whole header with `ErrMalformedHeader` on the first violation.
// By default a strict failure degrades to an empty jar so the request still
// runs; install an error handler to reject such requests instead.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiekit"
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    cookies := cookiekit.MustFromContext(r.Context())
//
//	    if _, ok := cookies.Get("session"); !ok {
//	        c, _ := cookiekit.New("session", newSessionID(),
//	            cookiekit.WithPath("/"),
//	            cookiekit.WithHTTPOnly(true),
//	        )
//	        cookies.Add(c)
//	    }
//	    cookies.Remove("legacy")
//	})
//
//	handler := cookiekit.Middleware()(mux)
//
// After the handler returns, the middleware emits one Set-Cookie header for
// `session`, one expiring header for `legacy`, and none for cookies that
// arrived with the request and were left alone.
//
// # Configuration
//
// The `Config` struct allows the engine to be configured from environment
// variables via github.com/caarlos0/env. `MiddlewareFromConfig` builds the
// middleware from it, and `Config.Options()` turns the attribute fields into
// application-wide defaults for cookie construction.
//
//	cfg := cookiekit.DefaultConfig()
//	_ = env.Parse(&cfg)
//	mw, _ := cookiekit.MiddlewareFromConfig(cfg)
//
// # Error Handling
//
// Package-level sentinel errors are returned for the failure scenarios —
// `ErrMalformedHeader`, `ErrInvalidName`, `ErrInvalidValue`,
// `ErrInvalidAttributeCombination` — so callers can use `errors.Is`.
// Lenient-mode parse problems are never surfaced; malformed pairs are
// dropped.
//
// # Concurrency
//
// A Manager is safe for concurrent use within one request. Every operation
// takes an exclusive lock for its duration only; nothing blocks on I/O. The
// manager's lifetime is bound to its request and it must not be retained
// across requests.
//
// # See Also
//
//   - net/http – the Cookie/Set-Cookie wire format this package models.
package cookiekit
