package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router returns a configured chi router with all routes.
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/groups", h.handleCreateGroup)
		r.Route("/groups/{slug}", func(r chi.Router) {
			r.Get("/", h.handleGetGroup)
			r.Delete("/", h.handleDeleteGroup)
			r.Get("/turn", h.handleResolveTurn)
			r.Post("/rounds", h.handleCreateRound)
			r.Post("/picks", h.handleMakePick)
			r.Get("/undrafted", h.handleUndrafted)

			r.Route("/queues/{userName}", func(r chi.Router) {
				r.Get("/", h.handleGetQueue)
				r.Post("/selections", h.handleToggleSelection)
				r.Post("/clear", h.handleClearQueue)
				r.Post("/lock", h.handleToggleLock)
			})
		})

		r.Get("/seasons", h.handleListSeasons)
		r.Get("/seasons/{seasonID}", h.handleGetSeason)
	})

	return r
}
