package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

var (
	ErrSessionClosed  = errors.New("catalog session closed")
	ErrNegativeFilter = errors.New("invalid age limit filter: must not be negative")
	ErrMissingMovieID = errors.New("invalid movie id: empty")
)

// CollectionClient is the remote collection endpoint as seen by CatalogSync.
// *remote.Client satisfies it.
type CollectionClient interface {
	List(ctx context.Context) ([]entity.Movie, error)
	Get(ctx context.Context, id string) (*entity.Movie, error)
	Create(ctx context.Context, draft request.MovieRequest) (*entity.Movie, error)
	Replace(ctx context.Context, id string, movie request.MovieRequest) (*entity.Movie, error)
	Delete(ctx context.Context, id string) error
}

// CatalogSync owns the local mirror of the remote collection for one view
// session. Mutations go to the remote first; local state changes only after
// the round trip succeeds. The mutex guards local state and is never held
// across a round trip, so overlapping calls resolve as last writer wins.
type CatalogSync struct {
	client CollectionClient
	log    *zap.Logger

	mu     sync.RWMutex
	movies []entity.Movie
	filter int
	closed bool
}

func NewCatalogSync(client CollectionClient, log *zap.Logger) *CatalogSync {
	return &CatalogSync{
		client: client,
		log:    log.With(zap.String("service", "catalog")),
		movies: []entity.Movie{},
	}
}

// Init starts the session with a first fetch of the collection.
func (s *CatalogSync) Init(ctx context.Context) error {
	return s.List(ctx)
}

// Close ends the session. Later calls fail with ErrSessionClosed.
func (s *CatalogSync) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.movies = nil
	s.log.Debug("Catalog session closed")
}

func (s *CatalogSync) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}

// List replaces the local sequence with the remote collection.
func (s *CatalogSync) List(ctx context.Context) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	movies, err := s.client.List(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return fmt.Errorf("list movies: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.movies = append(make([]entity.Movie, 0, len(movies)), movies...)

	s.log.Info("Movies synchronized", zap.Int("count", len(movies)))
	return nil
}

// Get fetches one record from the remote without touching the local sequence.
func (s *CatalogSync) Get(ctx context.Context, id string) (*entity.Movie, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrMissingMovieID
	}

	movie, err := s.client.Get(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", id))
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return movie, nil
}

// Add submits a draft and appends the created record.
func (s *CatalogSync) Add(ctx context.Context, draft request.MovieRequest) (*entity.Movie, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	draft = draft.WithDefaults()
	if err := utils.Validate(draft); err != nil {
		s.log.Warn("Add movie validation failed", zap.Error(err))
		return nil, err
	}

	movie, err := s.client.Create(ctx, draft)
	if err != nil {
		s.log.Error("Failed to add movie", zap.Error(err), zap.String("title", draft.Title))
		return nil, fmt.Errorf("add movie: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	s.movies = append(s.movies, *movie)

	s.log.Info("Movie added",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)
	return movie, nil
}

// Update replaces the record under id, then refetches the collection so the
// local sequence reflects what the remote accepted. When the refetch fails the
// record is reconciled locally and the list error is returned.
func (s *CatalogSync) Update(ctx context.Context, id string, movie request.MovieRequest) (*entity.Movie, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrMissingMovieID
	}

	movie = movie.WithDefaults()
	if err := utils.Validate(movie); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err), zap.String("movie_id", id))
		return nil, err
	}

	updated, err := s.client.Replace(ctx, id, movie)
	if err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", id))
		return nil, fmt.Errorf("update movie: %w", err)
	}
	if updated == nil {
		sent := movie.ToEntity()
		sent.ID = id
		updated = &sent
	}

	s.log.Info("Movie updated", zap.String("movie_id", id), zap.String("title", updated.Title))

	if err := s.List(ctx); err != nil {
		s.reconcile(*updated)
		return updated, err
	}
	return updated, nil
}

func (s *CatalogSync) reconcile(movie entity.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movies {
		if s.movies[i].ID == movie.ID {
			s.movies[i] = movie
			return
		}
	}
}

// Remove deletes the record under id and drops it from the local sequence.
func (s *CatalogSync) Remove(ctx context.Context, id string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if id == "" {
		return ErrMissingMovieID
	}

	if err := s.client.Delete(ctx, id); err != nil {
		s.log.Error("Failed to remove movie", zap.Error(err), zap.String("movie_id", id))
		return fmt.Errorf("remove movie: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	kept := make([]entity.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.movies = kept

	s.log.Info("Movie removed", zap.String("movie_id", id))
	return nil
}

// Movies returns a copy of the local sequence.
func (s *CatalogSync) Movies() []entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Movie{}, s.movies...)
}

// FilteredBy returns the movies with an age limit of at least threshold, in
// order. A threshold of zero returns every movie.
func (s *CatalogSync) FilteredBy(threshold int) []entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterByAgeLimit(s.movies, threshold)
}

// SetFilter selects the age-limit threshold used by Visible.
func (s *CatalogSync) SetFilter(threshold int) error {
	if threshold < 0 {
		return ErrNegativeFilter
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = threshold
	return nil
}

func (s *CatalogSync) Filter() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Visible is the sequence under the selected filter.
func (s *CatalogSync) Visible() []entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterByAgeLimit(s.movies, s.filter)
}

// FilterByAgeLimit never aliases movies.
func FilterByAgeLimit(movies []entity.Movie, threshold int) []entity.Movie {
	out := make([]entity.Movie, 0, len(movies))
	for _, m := range movies {
		if threshold <= 0 || m.AgeLimit >= threshold {
			out = append(out, m)
		}
	}
	return out
}
