package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/arjunsachdev/regretly/internal/auth"
	exportHandler "github.com/arjunsachdev/regretly/internal/http/export"
	"github.com/arjunsachdev/regretly/internal/http/importcsv"
	"github.com/arjunsachdev/regretly/internal/http/report"
	settingsHandler "github.com/arjunsachdev/regretly/internal/http/settings"
	spendHandler "github.com/arjunsachdev/regretly/internal/http/spend"
)

func New(
	spendsV1 *spendHandler.Handler,
	reportV1 *report.Handler,
	settingsV1 *settingsHandler.Handler,
	importV1 *importcsv.Handler,
	exportV1 *exportHandler.Handler,
	jwtSecret []byte,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		// Alternatives and the rate setting are identity-independent.
		r.Get("/alternatives/{category}", report.Alternatives)

		r.Route("/settings", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			settingsV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))

			r.Route("/spends", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				spendsV1.Routes(r)
			})

			r.Route("/report", reportV1.Routes)
			r.Route("/import", importV1.Routes)
			r.Route("/export", exportV1.Routes)
		})
	})

	return router
}
