package mockbox

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const requestIDKey contextKey = "requestID"

// RequestIDFromContext returns the request ID assigned by RequestID,
// or an empty string outside of a request.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// RequestID tags every request with a generated ID, echoed back in the
// X-Request-Id header and available to downstream handlers via the
// context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs one line per request with method, path, status,
// and latency.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
			next.ServeHTTP(rw, r)

			logger.Info("request served",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", rw.code),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", RequestIDFromContext(r.Context())),
			)
		})
	}
}

// CFAccess rejects requests that do not carry the expected Cloudflare
// Access header pair, mimicking a deployment behind an access proxy.
// Both expected values must be non-empty; mount the middleware only
// when they are.
func CFAccess(clientID, clientSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID := r.Header.Get("CF-Access-Client-Id")
			gotSecret := r.Header.Get("CF-Access-Client-Secret")

			if gotID != clientID || gotSecret != clientSecret {
				writeError(w, http.StatusUnauthorized, "missing or invalid Cloudflare Access credentials", "UNAUTHORIZED")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
