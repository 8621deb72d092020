package response

import (
	"fmt"

	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AgeLimit    int    `json:"age_limit"`
	AgeRating   string `json:"age_rating"`
}

type MovieListResponse struct {
	AgeLimit   int             `json:"age_limit"`
	Total      int             `json:"total"`
	Movies     []MovieResponse `json:"movies"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

// Helper converters
func MovieToResponse(movie entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		AgeLimit:    movie.AgeLimit,
		AgeRating:   fmt.Sprintf("%d+", movie.AgeLimit),
	}
}

func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieToResponse(m))
	}
	return out
}
