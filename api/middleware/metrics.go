package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/gash-demo/pkg/metrics"
)

type unmatchedKey struct{}

// MarkUnmatched flags the request as answered by the not-found handler.
func MarkUnmatched(r *http.Request) {
	if flag, ok := r.Context().Value(unmatchedKey{}).(*bool); ok {
		*flag = true
	}
}

// Metrics records every answered request by route pattern, or as unmatched when the
// not-found handler answered it.
func Metrics(m *metrics.MockMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			unmatched := false
			r = r.WithContext(context.WithValue(r.Context(), unmatchedKey{}, &unmatched))
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(rec, r)

			if unmatched {
				m.IncUnmatched(r.Method)
				return
			}
			m.ObserveRequest(routePattern(r), r.Method, defaultStatus(rec.status), time.Since(start))
		})
	}
}
