package middleware

import (
	"net/http"
	"time"

	"github.com/angelmondragon/gash-demo/pkg/logger"
)

// Logging brackets every request with request.start and request.complete. Server
// errors complete at warn level so a failing mock stands out in the demo console.
func Logging(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if logg == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
			})
			if r.URL.RawQuery != "" {
				ctx = logg.WithField(ctx, "query", r.URL.RawQuery)
			}
			logg.Debug(ctx, "request.start")

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := defaultStatus(rec.status)
			ctx = logg.WithFields(ctx, map[string]any{
				"route":       routePattern(r),
				"status":      status,
				"duration_ms": time.Since(start).Milliseconds(),
			})
			if status >= http.StatusInternalServerError {
				logg.Warn(ctx, "request.complete")
				return
			}
			logg.Info(ctx, "request.complete")
		})
	}
}
