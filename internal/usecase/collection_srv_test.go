package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newCollection(t *testing.T) CollectionService {
	t.Helper()
	log := zaptest.NewLogger(t)
	return NewCollectionService(repository.NewMemoryMovieRepository(log), log)
}

func TestCollectionServiceCreate(t *testing.T) {
	svc := newCollection(t)
	ctx := context.Background()

	movie, err := svc.CreateMovie(ctx, &request.MovieRequest{Title: "C", Description: "d"})
	require.NoError(t, err)

	_, err = uuid.Parse(movie.ID)
	assert.NoError(t, err, "ids are UUIDs")
	assert.Equal(t, 16, movie.AgeLimit)

	all, err := svc.ListMovies(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCollectionServiceCreateValidation(t *testing.T) {
	svc := newCollection(t)

	_, err := svc.CreateMovie(context.Background(), &request.MovieRequest{Description: "d"})
	fields, ok := utils.ValidationFields(err)
	require.True(t, ok)
	assert.Contains(t, fields, "title")
}

func TestCollectionServiceReplace(t *testing.T) {
	svc := newCollection(t)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, &request.MovieRequest{Title: "A", Description: "a", AgeLimit: intPtr(12)})
	require.NoError(t, err)

	replaced, err := svc.ReplaceMovie(ctx, created.ID, &request.MovieRequest{Title: "A2", Description: "a2", AgeLimit: intPtr(18)})
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)

	got, err := svc.GetMovie(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *replaced, *got)

	_, err = svc.ReplaceMovie(ctx, "missing", &request.MovieRequest{Title: "X", Description: "x"})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestCollectionServiceDelete(t *testing.T) {
	svc := newCollection(t)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, &request.MovieRequest{Title: "A", Description: "a"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMovie(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteMovie(ctx, created.ID), ErrMovieNotFound)

	_, err = svc.GetMovie(ctx, created.ID)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}
