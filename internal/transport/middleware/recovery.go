package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/approveit/pkg/ctxutil"
)

const panicBody = `{"error":"internal server error"}` + "\n"

// Recovery returns middleware that recovers from panics, logs them with a
// stack trace and responds 500 with the same JSON error shape as handlers.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}
				if err == http.ErrAbortHandler {
					panic(err)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", err),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", requestIDOf(w, r)),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(panicBody))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// requestIDOf prefers the context value and falls back to the response
// header, which RequestID sets even when it runs inside Recovery.
func requestIDOf(w http.ResponseWriter, r *http.Request) string {
	if id := ctxutil.RequestIDFromCtx(r.Context()); id != "" {
		return id
	}
	return w.Header().Get(RequestIDHeader)
}
