package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/quickbite/quickbite-api/pkg/metrics"
)

// Metrics middleware records request counts and latency per route. The
// chi route pattern is used as the path label so parameterized routes do
// not explode label cardinality.
func Metrics(m *metrics.ServerMetrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				path = rctx.RoutePattern()
			}

			m.Requests.WithLabelValues(r.Method, path, strconv.Itoa(ww.Status())).Inc()
			m.LatencyMS.WithLabelValues(r.Method, path).Observe(float64(time.Since(start).Milliseconds()))
		})
	}
}
