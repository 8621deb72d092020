package repository

import (
	"context"
	"sync"

	"movie-catalog/internal/data/entity"

	"go.uber.org/zap"
)

// memoryMovieRepository keeps records in a slice so iteration follows insertion order.
type memoryMovieRepository struct {
	mu     sync.RWMutex
	movies []entity.Movie
	log    *zap.Logger
}

func NewMemoryMovieRepository(log *zap.Logger) MovieRepository {
	return &memoryMovieRepository{
		movies: []entity.Movie{},
		log:    log.With(zap.String("repository", "movie_memory")),
	}
}

func (r *memoryMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movies = append(r.movies, *movie)
	return nil
}

func (r *memoryMovieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		movie := r.movies[i]
		return &movie, nil
	}
	return nil, nil
}

func (r *memoryMovieRepository) FindAll(ctx context.Context) ([]entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entity.Movie{}, r.movies...), nil
}

func (r *memoryMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(movie.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.movies[i] = *movie
	return nil
}

func (r *memoryMovieRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.movies = append(r.movies[:i:i], r.movies[i+1:]...)

	r.log.Debug("Movie deleted", zap.String("movie_id", id))
	return nil
}

// indexOf expects r.mu to be held.
func (r *memoryMovieRepository) indexOf(id string) int {
	for i := range r.movies {
		if r.movies[i].ID == id {
			return i
		}
	}
	return -1
}
