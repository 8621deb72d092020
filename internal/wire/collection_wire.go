package wire

import (
	"net/http"
	"time"

	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func wireCollection(
	r chi.Router,
	collectionHandler *adaptor.CollectionHandler,
	config utils.CollectionConfig,
	log *zap.Logger,
) {
	r.Route("/"+config.Name, func(r chi.Router) {
		if config.RateLimit > 0 {
			r.Use(httprate.Limit(
				config.RateLimit,
				time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					utils.ResponseTooManyRequests(w, "Rate limit exceeded")
				}),
			))
		}

		// Reads are public
		r.Get("/", collectionHandler.List)
		r.Get("/{id}", collectionHandler.Get)

		// Writes need the token when one is configured
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerToken(config.Token, log))

			r.Post("/", collectionHandler.Create)
			r.Put("/{id}", collectionHandler.Replace)
			r.Delete("/{id}", collectionHandler.Delete)
		})
	})
}
