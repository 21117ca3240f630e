package middleware

import (
	"net/http"

	"github.com/angelmondragon/gash-demo/pkg/latency"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

// Latency runs the handler, then holds the finished response back for the strategy's
// delay. A client that goes away while waiting gets nothing.
func Latency(strategy latency.Strategy, logg *logger.Logger) func(http.Handler) http.Handler {
	if strategy == nil {
		strategy = latency.None
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capture := newResponseCapture()
			next.ServeHTTP(capture, r)

			if err := strategy.Wait(r.Context()); err != nil {
				if logg != nil {
					logg.Warn(logg.WithField(r.Context(), "error", err.Error()), "request.abandoned")
				}
				return
			}
			capture.flush(w)
		})
	}
}
