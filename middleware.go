package cookiekit

import (
	"log/slog"
	"net/http"
)

// ErrorHandler handles a strict-mode parse failure. The request has
// not been passed to the next handler yet, so it may write a response
// and stop the chain.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type middlewareConfig struct {
	mode         Mode
	logger       *slog.Logger
	errorHandler ErrorHandler
}

// MiddlewareOption configures the cookie middleware.
type MiddlewareOption func(*middlewareConfig)

// WithMode sets the parse mode for incoming Cookie headers.
func WithMode(mode Mode) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.mode = mode
	}
}

// WithStrict is shorthand for WithMode(ModeStrict).
func WithStrict() MiddlewareOption {
	return func(c *middlewareConfig) {
		c.mode = ModeStrict
	}
}

// WithLogger sets the logger used for parse and serialization
// failures. Without one, failures are silent.
func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.logger = logger
	}
}

// WithErrorHandler makes a strict-mode parse failure terminate the
// request through the given handler instead of degrading to an empty
// jar.
func WithErrorHandler(handler ErrorHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.errorHandler = handler
	}
}

// Middleware creates HTTP middleware that parses the request's Cookie
// header into a Manager, exposes it through the request context, and
// appends one Set-Cookie response header per change the handler made.
//
// A strict-mode parse failure degrades to an empty jar by default: the
// request still runs, as if no cookies were sent. Install an
// ErrorHandler to reject such requests instead.
func Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{mode: ModeLenient}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jar, err := parseRequestJar(r.Header.Get("Cookie"), cfg.mode)
			if err != nil {
				if cfg.errorHandler != nil {
					cfg.errorHandler(w, r, err)
					return
				}
				if cfg.logger != nil {
					cfg.logger.WarnContext(r.Context(), "dropping malformed Cookie header",
						"error", err, "mode", cfg.mode.String())
				}
				jar = NewJar()
			}

			manager := NewManager(jar)
			cw := &cookieResponseWriter{ResponseWriter: w, manager: manager, cfg: cfg, req: r}

			next.ServeHTTP(cw, r.WithContext(WithManager(r.Context(), manager)))

			// Handler may finish without writing anything; the server
			// then sends 200 with whatever headers are set, so the
			// cookies still have to go out here.
			cw.emitSetCookies()
		})
	}
}

func parseRequestJar(header string, mode Mode) (*Jar, error) {
	if mode == ModeStrict {
		return ParseJarStrict(header)
	}
	return ParseJar(header), nil
}

// cookieResponseWriter defers Set-Cookie emission until the response
// headers are about to be flushed, so mutations made at any point
// during the handler are captured.
type cookieResponseWriter struct {
	http.ResponseWriter
	manager *Manager
	cfg     *middlewareConfig
	req     *http.Request
	emitted bool
}

func (w *cookieResponseWriter) WriteHeader(statusCode int) {
	w.emitSetCookies()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *cookieResponseWriter) Write(b []byte) (int, error) {
	w.emitSetCookies()
	return w.ResponseWriter.Write(b)
}

func (w *cookieResponseWriter) emitSetCookies() {
	if w.emitted {
		return
	}
	w.emitted = true

	headers, err := w.manager.SetCookieHeaders()
	if err != nil {
		// Too late to fail the request; drop the batch rather than
		// emit a partial set.
		if w.cfg.logger != nil {
			w.cfg.logger.ErrorContext(w.req.Context(), "dropping Set-Cookie headers",
				"error", err)
		}
		return
	}
	for _, h := range headers {
		w.Header().Add("Set-Cookie", h)
	}
}
