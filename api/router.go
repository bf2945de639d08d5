// Package api exposes the wire contract over HTTP: the feed operations
// under /feeds (including the remote-facing no-merge read) and the
// account directory under /users.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"feedhub/observability"
	"feedhub/services"
)

type Handle struct {
	feeds       services.IFeedService
	users       services.IUserService
	stats       *observability.Stats
	l           *slog.Logger
	searchLimit int
}

func NewHandle(feeds services.IFeedService, users services.IUserService, stats *observability.Stats, searchLimit int, l *slog.Logger) *Handle {
	return &Handle{
		feeds:       feeds,
		users:       users,
		stats:       stats,
		l:           l,
		searchLimit: searchLimit,
	}
}

func (h *Handle) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(h.RequestLogger)

	r.Route("/feeds", func(r chi.Router) {
		// static prefixes take priority over the {user} param in chi
		r.Post("/sub/{user}/{target}", h.Subscribe)
		r.Delete("/sub/{user}/{target}", h.Unsubscribe)
		r.Get("/sub/list/{user}", h.ListSubscriptions)
		r.Get("/search/{user}", h.SearchMessages)

		r.Post("/{user}", h.PostMessage)
		r.Get("/{user}", h.GetMessages)
		r.Get("/{user}/{mid}", h.GetMessage)
		r.Delete("/{user}/{mid}", h.RemoveMessage)
		r.Get("/{user}/{domain}/{time}", h.GetMessagesFromRemote)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.SearchUsers)
		r.Get("/{name}", h.GetUser)
		r.Put("/{name}", h.UpdateUser)
		r.Delete("/{name}", h.DeleteUser)
	})

	r.Get("/stats", h.GetStats)

	return r
}

func (h *Handle) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stats.Latest())
}
