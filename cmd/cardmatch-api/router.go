// Package main provides the API router setup.
package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cardmatch-ai/cardmatch/cmd/cardmatch-api/handlers"
	"github.com/cardmatch-ai/cardmatch/cmd/cardmatch-api/middleware"
	"github.com/cardmatch-ai/cardmatch/internal/observability"
	"github.com/cardmatch-ai/cardmatch/internal/recommend"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, engine *recommend.Engine) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"cardmatch"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ready"}`))
	})

	recommendHandler := handlers.NewRecommendHandler(logger, engine)
	cardsHandler := handlers.NewCardsHandler(logger, engine.Store())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommend", recommendHandler.Recommend)
		r.Get("/cards", cardsHandler.List)
		r.Get("/cards/{name}", cardsHandler.Get)
	})

	return r
}
