package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/keys", func(r chi.Router) {
			r.Get("/", h.listKeys)
			r.Get("/{name}", h.getKey)
		})

		r.Route("/values/{name}", func(r chi.Router) {
			r.Get("/", h.resolveValue)

			// writes need a token
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Put("/", h.setValue)
				r.Delete("/", h.unsetValue)
			})
		})

		r.Route("/raw/{scope}", func(r chi.Router) {
			r.Get("/", h.listRaw)
			r.Get("/{name}", h.getRaw)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
