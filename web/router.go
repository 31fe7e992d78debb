package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/unrolled/render"
	"github.com/victorres11/football-data-adhoc/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/games", func(r chi.Router) {
		r.Get("/", gamesHandler(ctrl, render))
		// Analyzing a game fetches it from ESPN, so allow extra time.
		r.With(middleware.Timeout(60 * time.Second)).Post("/", analyzeGameHandler(ctrl, render))
		r.Get("/{gameID:\\d+}", gameHandler(ctrl, render))
		r.Get("/{gameID:\\d+}/snapshot", snapshotHandler(ctrl, render))
	})

	r.Post("/snapshots", importSnapshotHandler(ctrl, render))
	r.Get("/season", seasonHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET"},
		}))

		r.Get("/games/{gameID:\\d+}", apiGameHandler(ctrl, render))
		r.Get("/teams/{team}/summary", apiSeasonHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("fd", map[string]string{"admin": "pa55word"})) // TODO: read from config instead
		r.Use(middleware.Timeout(5 * time.Minute))                                // Season imports make many upstream calls

		r.Post("/import", importSeasonHandler(ctrl, render))
	})

	return r
}
