package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

// NewRouter wires the middleware chain and all API routes.
func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.I18N(cfg.DefaultLocale, lookup),
	)
	if app.Metrics != nil {
		r.Use(requestDuration(app.Metrics))
	}

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/readyz", app.Ready)
	r.Get("/v1/channels", app.ChannelsCatalog)
	r.Get("/v1/benchmarks", app.Benchmarks)
	r.Post("/v1/quotes", app.QuotesCompute)

	r.Route("/v1/proposals", func(r chi.Router) {
		r.Post("/", app.ProposalsCreate)
		r.Get("/", app.ProposalsList)
		r.Get("/{id}", app.ProposalsGet)
		r.Get("/{id}/report.csv", app.ProposalReport)
		r.Get("/{id}/invoice.csv", app.ProposalInvoice)
		r.Post("/{id}/exports", app.ExportsCreate)
	})
	r.Get("/v1/exports/{id}", app.ExportsGet)
	r.Get("/v1/exports/{id}/download", app.ExportsDownload)

	r.Get("/v1/stats/summary", app.StatsSummary)
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)

	if app.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.Metrics.Registry, promhttp.HandlerOpts{}))
	}

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// requestDuration observes per-route latency labelled by status class.
func requestDuration(m *infra.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			class := strconv.Itoa(rec.status/100) + "xx"
			m.RequestDuration.WithLabelValues(route, class).Observe(time.Since(start).Seconds())
		})
	}
}
