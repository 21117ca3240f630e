package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/gash-demo/api/controllers"
	"github.com/angelmondragon/gash-demo/api/middleware"
	"github.com/angelmondragon/gash-demo/api/responses"
	"github.com/angelmondragon/gash-demo/internal/demo"
	"github.com/angelmondragon/gash-demo/pkg/config"
	"github.com/angelmondragon/gash-demo/pkg/latency"
	"github.com/angelmondragon/gash-demo/pkg/logger"
	"github.com/angelmondragon/gash-demo/pkg/metrics"
)

// UnmatchedMessage is the body of every request no mock answers.
const UnmatchedMessage = "Mock not found for this endpoint"

// Params groups what the router needs.
type Params struct {
	Config   *config.Config
	Logger   *logger.Logger
	Env      *demo.Environment
	Metrics  *metrics.MockMetrics
	Gatherer prometheus.Gatherer
	Latency  latency.Strategy
	Storage  controllers.Pinger
}

// NewRouter serves the mock table under the configured prefix, plus health and metrics
// endpoints that are neither delayed nor counted.
func NewRouter(p Params) http.Handler {
	cfg, logg := p.Config, p.Logger
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.Storage))
	})
	if p.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	stack := []func(http.Handler) http.Handler{
		middleware.Metrics(p.Metrics),
		middleware.Latency(p.Latency, logg),
	}
	unmatched := Unmatched(logg)
	mount := func(m chi.Router) {
		m.Use(stack...)
		for _, route := range Table(p.Env, logg) {
			m.Method(route.Method, route.Pattern, route.Handler)
		}
		m.NotFound(unmatched)
		m.MethodNotAllowed(unmatched)
	}

	prefix := cfg.App.Prefix()
	if prefix == "" {
		r.Group(mount)
		return r
	}
	outside := chainHandler(stack, unmatched)
	r.NotFound(outside)
	r.MethodNotAllowed(outside)
	r.Route(prefix, mount)
	return r
}

// Unmatched answers any method and path no mock handles. A known path with the wrong
// method lands here too.
func Unmatched(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware.MarkUnmatched(r)
		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"method": r.Method,
				"url":    r.URL.String(),
			})
			logg.Warn(ctx, "mock.unmatched")
		}
		responses.WriteMessage(w, http.StatusNotFound, UnmatchedMessage)
	}
}

func chainHandler(stack []func(http.Handler) http.Handler, h http.HandlerFunc) http.HandlerFunc {
	var out http.Handler = h
	for i := len(stack) - 1; i >= 0; i-- {
		out = stack[i](out)
	}
	return out.ServeHTTP
}
