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
		r.Get("/api/system/config", h.getPublicSystemConfig)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/user", h.getUser)
		r.Put("/api/auth/user", h.updateUser)

		r.Route("/api/bookmarks", func(r chi.Router) {
			r.Get("/categories", h.listCategories)
			r.Post("/categories", h.createCategory)
			r.Put("/categories/{id}", h.updateCategory)
			r.Delete("/categories/{id}", h.deleteCategory)

			r.Get("/", h.listBookmarks)
			r.Post("/", h.createBookmark)
			r.Put("/{id}", h.updateBookmark)
			r.Delete("/{id}", h.deleteBookmark)
		})

		r.Route("/api/search/engines", func(r chi.Router) {
			r.Get("/", h.listEngines)
			r.Post("/", h.createEngine)
			r.Put("/{id}", h.updateEngine)
			r.Delete("/{id}", h.deleteEngine)
		})

		r.Route("/api/hot/sources", func(r chi.Router) {
			r.Get("/", h.listSources)
			r.Post("/", h.createSource)
			r.Put("/{id}", h.updateSource)
			r.Delete("/{id}", h.deleteSource)
		})

		r.Put("/api/system/config", h.updateSystemConfig)
		r.Get("/api/weather/current", h.currentWeather)
	})

	return router
}
