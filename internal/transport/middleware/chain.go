package middleware

import (
	"log/slog"
	"net/http"
	"slices"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws into one Middleware. The first one is outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			h = mw(h)
		}
		return h
	}
}

// API is the chain every API route is served through. The request id is
// assigned first, so the access log and panic log both carry it; the body
// limit sits closest to the handler.
func API(logger *slog.Logger, maxBodyBytes int64) Middleware {
	return Chain(
		RequestID(),
		Logger(logger),
		Recovery(logger),
		BodyLimit(maxBodyBytes),
	)
}
