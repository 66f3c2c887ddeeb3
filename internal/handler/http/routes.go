// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// apiPrefix is where the FrontWall API is mounted.
const apiPrefix = "/api"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route(apiPrefix, func(r chi.Router) {
		r.Get("/health", h.health)

		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.Get("/setup-required", h.setupRequired)
			r.Post("/setup", h.setup)
			r.Post("/login", h.login)
			r.Post("/refresh", h.refresh)
			r.Post("/logout", h.logout)

			r.With(h.auth).Get("/me", h.me)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/sites", func(r chi.Router) {
				r.Get("/", h.listSites)
				r.Post("/", h.createSite)
				r.Get("/{siteID}", h.getSite)
				r.Put("/{siteID}", h.updateSite)
				r.Delete("/{siteID}", h.deleteSite)
			})

			r.Route("/shield", func(r chi.Router) {
				r.Get("/status", h.shieldStatus)
				r.Post("/deploy/{siteID}", h.deploy)
				r.Post("/undeploy", h.undeploy)
				r.Post("/learn-mode", h.setLearnMode)
			})
		})
	})

	return router
}
