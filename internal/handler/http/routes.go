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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/ping", h.ping)
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes requiring a valid token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/enroll-face", h.enrollFace)
		r.Post("/api/verify-face", h.verifyFace)
		r.Get("/api/get-face", h.getFace)

		r.Post("/api/enroll-voice", h.enrollVoice)
		r.Post("/api/verify-voice", h.verifyVoice)
		r.Get("/api/get-voice", h.getVoice)
	})

	// routes requiring the full factor sequence
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireAllFactors)

		r.Get("/api/protected", h.protected)
	})

	router.MethodNotAllowed(maskUnknownMethods(router))

	return router
}
