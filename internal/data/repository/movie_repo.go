package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	id, err := uuid.Parse(movie.ID)
	if err != nil {
		return fmt.Errorf("invalid movie id: %w", err)
	}

	query := `
		INSERT INTO movies (id, title, description, age_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`

	_, err = r.db.Exec(ctx, query,
		id,
		movie.Title,
		movie.Description,
		movie.AgeLimit,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	movieID, err := uuid.Parse(id)
	if err != nil {
		// Ids are always UUIDs, so anything else cannot exist.
		return nil, nil
	}

	query := `
		SELECT id, title, description, age_limit
		FROM movies
		WHERE id = $1
	`

	var (
		movie entity.Movie
		rowID uuid.UUID
	)
	err = r.db.QueryRow(ctx, query, movieID).Scan(
		&rowID,
		&movie.Title,
		&movie.Description,
		&movie.AgeLimit,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	movie.ID = rowID.String()
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]entity.Movie, error) {
	query := `
		SELECT id, title, description, age_limit
		FROM movies
		ORDER BY seq ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	movies := []entity.Movie{}
	for rows.Next() {
		var (
			movie entity.Movie
			rowID uuid.UUID
		)
		err := rows.Scan(
			&rowID,
			&movie.Title,
			&movie.Description,
			&movie.AgeLimit,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movie.ID = rowID.String()
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	id, err := uuid.Parse(movie.ID)
	if err != nil {
		return ErrNotFound
	}

	query := `
		UPDATE movies
		SET title = $2, description = $3, age_limit = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		id,
		movie.Title,
		movie.Description,
		movie.AgeLimit,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID),
		)
		return fmt.Errorf("failed to update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id string) error {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, movieID)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id))
	return nil
}
