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

	router.Route("/api", func(r chi.Router) {
		r.Get("/info", h.getAppInfo)

		r.Post("/accounts", h.registerAccount)
		r.Post("/accounts/authenticate", h.authenticate)
		r.With(h.withAuthentication).Get("/accounts/me", h.currentAccount)
		r.Get("/accounts/{login}", h.findAccount)
	})

	return router
}
