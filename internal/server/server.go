// Package server Nexus
//
// Nexus is an in-process social feed simulator which exposes its store to a
// rendering layer over a small JSON API.
//
//     Schemes: http
//     BasePath: /v1
//
package server

import (
	"time"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/nexus-social/nexus/internal/media"
	mm "github.com/nexus-social/nexus/internal/middleware"
	"github.com/nexus-social/nexus/internal/store"
)

const maxUploadSize = 10 << 20 // 10 MiB

const suggestionsTTL = 10 * time.Minute

type server struct {
	s store.Store
	m *media.Registry
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s store.Store, m *media.Registry, r chi.Router) {
	r.Use(
		chimiddleware.StripSlashes,
		cors.AllowAll().Handler,
		chimiddleware.RequestID,
		chimiddleware.Recoverer,
		mm.Logging,
	)

	srv := server{
		s: s,
		m: m,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/feed", srv.getFeed)
		r.Post("/feed/filter", srv.setFilter)
		r.Post("/feed/more", srv.loadMore)

		r.Get("/search", srv.searchPosts)

		r.Post("/posts", srv.createPost)
		r.Post("/posts/{id}/like", srv.toggleLike)
		r.Post("/posts/{id}/save", srv.toggleSave)
		r.Post("/posts/{id}/comments", srv.addComment)

		r.Get("/stories", srv.getStories)

		r.Get("/notifications", srv.getNotifications)
		r.Post("/notifications/read", srv.markNotificationsRead)

		r.Get("/profile", srv.getProfile)

		r.Get("/media/{id}", srv.getMedia)

		r.Get("/suggestions", mm.Cached(suggestionsTTL, srv.getSuggestions))
	})
}
