package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/poindexter12/maxwells-wallet/internal/http/analyze"
	"github.com/poindexter12/maxwells-wallet/internal/http/parse"
)

func New(parseV1 *parse.Handler, analyzeV1 *analyze.Handler) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/parse", parseV1.Routes)
		r.Route("/analyze", analyzeV1.Routes)
		r.Get("/formats", parseV1.ListFormats)
	})

	return router
}
