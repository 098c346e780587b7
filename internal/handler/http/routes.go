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
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes guarded by the JWT auth middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/sync/", h.getStates)

		r.Post("/api/contacts/", h.upload)
		r.Post("/api/contacts/download", h.download)
		r.Put("/api/contacts/update", h.update)
		r.Delete("/api/contacts/delete", h.delete)
		r.Post("/api/contacts/undelete", h.undelete)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
