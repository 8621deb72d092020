package repository

import (
	"context"
	"errors"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Update and Delete when no row matches the id.
var ErrNotFound = errors.New("movie not found")

// MovieRepository stores the records of one collection in insertion order.
// FindByID returns (nil, nil) for an unknown id.
type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	Movie MovieRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(db, log),
	}
}

func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMemoryMovieRepository(log),
	}
}
