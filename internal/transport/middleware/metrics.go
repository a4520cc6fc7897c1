package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/approveit/internal/metrics"
)

// Metrics records request count and duration per chi route pattern.
// Unmatched paths collapse into one label value to bound cardinality.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			path := "unmatched_route"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				path = rctx.RoutePattern()
			} else if status == http.StatusNotFound {
				path = "not_found"
			}

			code := strconv.Itoa(status)
			metrics.RequestsTotal.WithLabelValues(r.Method, path, code).Inc()
			metrics.RequestDuration.WithLabelValues(r.Method, path, code).Observe(time.Since(start).Seconds())
		})
	}
}
