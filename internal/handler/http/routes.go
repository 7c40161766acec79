package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/sync", h.sync)

		r.Get("/api/tombstones", h.listTombstones)
		r.Post("/api/tombstones/{serial}/restore", h.restoreSpool)

		r.Get("/api/events", h.streamEvents)
	})

	return router
}
