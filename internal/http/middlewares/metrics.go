package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// WithMetrics instrumenta cada request con los collectors Prometheus.
// La etiqueta route usa el patrón de chi (p.ej. /members/{id}) para no
// explotar la cardinalidad con ids concretos.
func WithMetrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			metrics.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			metrics.RequestDuration.WithLabelValues(r.Method, route).
				Observe(float64(time.Since(start).Milliseconds()))
		})
	}
}
