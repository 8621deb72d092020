package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrMovieNotFound = errors.New("movie not found")

// CollectionService backs the self-hosted collection endpoint.
type CollectionService interface {
	ListMovies(ctx context.Context) ([]entity.Movie, error)
	GetMovie(ctx context.Context, id string) (*entity.Movie, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error)
	ReplaceMovie(ctx context.Context, id string, req *request.MovieRequest) (*entity.Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

type collectionService struct {
	repo  repository.MovieRepository
	newID func() string
	log   *zap.Logger
}

func NewCollectionService(repo repository.MovieRepository, log *zap.Logger) CollectionService {
	return &collectionService{
		repo:  repo,
		newID: uuid.NewString,
		log:   log.With(zap.String("service", "collection")),
	}
}

func (s *collectionService) ListMovies(ctx context.Context) ([]entity.Movie, error) {
	movies, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	s.log.Debug("Movies listed", zap.Int("count", len(movies)))
	return movies, nil
}

func (s *collectionService) GetMovie(ctx context.Context, id string) (*entity.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

func (s *collectionService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error) {
	draft := req.WithDefaults()
	if err := utils.Validate(draft); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	movie := draft.ToEntity()
	movie.ID = s.newID()

	if err := s.repo.Create(ctx, &movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int("age_limit", movie.AgeLimit),
	)
	return &movie, nil
}

// ReplaceMovie overwrites every field except the id, which always comes from the path.
func (s *collectionService) ReplaceMovie(ctx context.Context, id string, req *request.MovieRequest) (*entity.Movie, error) {
	replacement := req.WithDefaults()
	if err := utils.Validate(replacement); err != nil {
		s.log.Warn("Replace movie validation failed", zap.Error(err), zap.String("movie_id", id))
		return nil, err
	}

	movie := replacement.ToEntity()
	movie.ID = id

	if err := s.repo.Update(ctx, &movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		s.log.Error("Failed to replace movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("replace movie: %w", err)
	}

	s.log.Info("Movie replaced",
		zap.String("movie_id", id),
		zap.String("title", movie.Title),
	)
	return &movie, nil
}

func (s *collectionService) DeleteMovie(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", id))
	return nil
}
