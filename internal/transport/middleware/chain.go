package middleware

import (
	"log/slog"
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(handler) results in mw1(mw2(handler)), so mw1 is outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Standard is the stack every route runs behind: Recovery, RequestID,
// Logger, Metrics. Recovery is outermost so a panic anywhere below still
// gets a response; Metrics is innermost so it sees the final route pattern.
func Standard(logger *slog.Logger) Middleware {
	return Chain(
		Recovery(logger),
		RequestID(),
		Logger(logger),
		Metrics(),
	)
}
