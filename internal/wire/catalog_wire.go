package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", catalogHandler.GetMovies)          // GET /api/movies?age_limit=N
		r.Post("/", catalogHandler.CreateMovie)       // POST /api/movies
		r.Post("/refresh", catalogHandler.Refresh)    // POST /api/movies/refresh
		r.Get("/{id}", catalogHandler.GetMovieByID)   // GET /api/movies/{id}
		r.Put("/{id}", catalogHandler.UpdateMovie)    // PUT /api/movies/{id}
		r.Delete("/{id}", catalogHandler.DeleteMovie) // DELETE /api/movies/{id}
	})
}
