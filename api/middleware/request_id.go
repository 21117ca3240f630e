package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/gash-demo/api/validators"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

const (
	requestIDHeader = "X-Request-Id"
	maxRequestIDLen = 64
)

// RequestID echoes the caller's X-Request-Id, or mints one, and tags the log context
// with it. The dashboard client never sends one, so most ids are minted here.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := validators.SanitizeString(r.Header.Get(requestIDHeader), maxRequestIDLen)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			r.Header.Set(requestIDHeader, reqID)
			w.Header().Set(requestIDHeader, reqID)

			if logg != nil {
				r = r.WithContext(logg.WithRequestID(r.Context(), reqID))
			}
			next.ServeHTTP(w, r)
		})
	}
}
