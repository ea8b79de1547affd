package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/portal-router/internal/logger"
	"github.com/jwebster45206/portal-router/internal/metrics"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// knownPaths bounds the path label on HTTP metrics.
var knownPaths = map[string]bool{
	"/health":       true,
	"/metrics":      true,
	"/v1/locations": true,
	"/v1/edges":     true,
	"/v1/route":     true,
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Logger assigns a request id, logs each request when it completes and
// records it in m when m is not nil.
func Logger(log *slog.Logger, m *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			logger.WithRequestID(log, requestID).Info("Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", duration)

			if m != nil {
				path := r.URL.Path
				if !knownPaths[path] {
					path = "other"
				}
				m.RecordHTTPRequest(r.Method, path, rec.status, duration)
			}
		})
	}
}
