package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/portfolio-draft-seeder/internal/api/handlers"
	custommiddleware "github.com/ndewijer/portfolio-draft-seeder/internal/api/middleware"
	"github.com/ndewijer/portfolio-draft-seeder/internal/config"
	"github.com/ndewijer/portfolio-draft-seeder/internal/metrics"
	"github.com/ndewijer/portfolio-draft-seeder/internal/service"
)

// NewRouter creates and configures the HTTP router of the stub drafts API.
// Write routes require an API key and time token when cfg.Auth.InternalAPIKey is set.
func NewRouter(
	systemService *service.SystemService,
	draftService *service.PortfolioDraftService,
	m *metrics.Metrics,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(globalMiddleware(m, cfg)...)

	writeAuth := func(next http.Handler) http.Handler { return next }
	if cfg.Auth.InternalAPIKey != "" {
		writeAuth = custommiddleware.APIKeyMiddleware(cfg.Auth.InternalAPIKey)
	}

	systemHandler := handlers.NewSystemHandler(systemService)
	r.Get("/health", systemHandler.Health)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/portfolioDrafts", func(r chi.Router) {
		draftHandler := handlers.NewPortfolioDraftHandler(draftService)
		r.Get("/", draftHandler.PortfolioDrafts)
		r.With(writeAuth).Post("/", draftHandler.CreatePortfolioDraft)

		r.Route("/{portfolioDraftId}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateDraftIDMiddleware)
			r.Get("/", draftHandler.PortfolioDraft)
			r.With(writeAuth).Delete("/", draftHandler.DeletePortfolioDraft)
			r.Get("/portfolio", draftHandler.PortfolioStep)
			r.With(writeAuth).Post("/portfolio", draftHandler.CreatePortfolioStep)
		})
	})

	return r
}

// globalMiddleware returns the stack applied to every route, outermost first.
// Instrument and Logger sit outside Recoverer so recovered panics are logged and counted as 500s.
func globalMiddleware(m *metrics.Metrics, cfg *config.Config) []func(http.Handler) http.Handler {
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)

	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		custommiddleware.Logger,
		custommiddleware.Instrument(m),
		middleware.Recoverer,
		corsMiddleware.Handler,
	}
}
