// ABOUTME: Request logging middleware for API endpoints
// ABOUTME: Attaches a correlation ID to each request and logs timing information

package middleware

import (
	"context"
	"net/http"
	"time"

	"weightless-api/core/interfaces"

	"github.com/google/uuid"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.ResponseWriter.WriteHeader(code)
		rw.written = true
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// correlationIDKey is the context key for the request correlation ID
type correlationIDKey struct{}

// CorrelationID retrieves the correlation ID from ctx, or "" when absent
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestLoggingMiddleware generates a correlation ID per request, echoes it
// as X-Request-ID, stores it in the request context and logs request timing.
func RequestLoggingMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID := uuid.New().String()

			w.Header().Set("X-Request-ID", correlationID)
			ctx := context.WithValue(r.Context(), correlationIDKey{}, correlationID)
			r = r.WithContext(ctx)

			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			logger.Info("Request started", map[string]interface{}{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"remote_ip":      extractIP(r),
				"user_agent":     r.UserAgent(),
			})

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)

			logger.Info("Request completed", map[string]interface{}{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status":         wrapped.statusCode,
				"duration_ms":    duration.Milliseconds(),
			})

			if wrapped.statusCode >= 500 {
				logger.Error("Request failed with server error", map[string]interface{}{
					"correlation_id": correlationID,
					"method":         r.Method,
					"path":           r.URL.Path,
					"status":         wrapped.statusCode,
				})
			}
		})
	}
}
