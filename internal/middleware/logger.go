package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/tably-app/backoffice-service/internal/metrics"
)

// Logger logs HTTP requests and records their latency.
func Logger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lw := &loggingResponseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(lw, r)

			duration := time.Since(start)
			metrics.ObserveRequest(r.Method, strconv.Itoa(lw.statusCode), duration.Seconds())
			logger.Info().
				Str("remote", r.RemoteAddr).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", lw.statusCode).
				Dur("duration", duration).
				Msg("request")
		})
	}
}

// loggingResponseWriter is a wrapper around http.ResponseWriter to capture the status code
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code before calling the underlying ResponseWriter
func (lw *loggingResponseWriter) WriteHeader(code int) {
	lw.statusCode = code
	lw.ResponseWriter.WriteHeader(code)
}
