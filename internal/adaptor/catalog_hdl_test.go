package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/remote"
	"movie-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubCatalog returns canned results for the write paths
type stubCatalog struct {
	movies    []entity.Movie
	filter    int
	updated   *entity.Movie
	updateErr error
	err       error
}

func (s *stubCatalog) List(context.Context) error { return s.err }

func (s *stubCatalog) Get(context.Context, string) (*entity.Movie, error) { return nil, s.err }

func (s *stubCatalog) Add(context.Context, request.MovieRequest) (*entity.Movie, error) {
	return nil, s.err
}

func (s *stubCatalog) Update(context.Context, string, request.MovieRequest) (*entity.Movie, error) {
	return s.updated, s.updateErr
}

func (s *stubCatalog) Remove(context.Context, string) error { return s.err }

func (s *stubCatalog) SetFilter(threshold int) error {
	s.filter = threshold
	return nil
}

func (s *stubCatalog) Filter() int { return s.filter }

func (s *stubCatalog) Visible() []entity.Movie { return s.movies }

func serveCatalog(t *testing.T, catalog Catalog, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	h := NewCatalogHandler(catalog, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/movies", h.GetMovies)
	r.Post("/api/movies/refresh", h.Refresh)
	r.Get("/api/movies/{id}", h.GetMovieByID)
	r.Post("/api/movies", h.CreateMovie)
	r.Put("/api/movies/{id}", h.UpdateMovie)
	r.Delete("/api/movies/{id}", h.DeleteMovie)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var env map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestUpdateMovieRefreshFailedReturnsLocalCopy(t *testing.T) {
	catalog := &stubCatalog{
		updated:   &entity.Movie{ID: "1", Title: "X", Description: "y", AgeLimit: 18},
		updateErr: &remote.OperationError{Op: remote.OpList, Status: http.StatusBadGateway},
	}

	rec, env := serveCatalog(t, catalog, http.MethodPut, "/api/movies/1", `{"title":"X","description":"y","ageLimit":18}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, env["message"], "refresh failed")

	data := env["data"].(map[string]any)
	assert.Equal(t, "1", data["id"])
	assert.EqualValues(t, 18, data["age_limit"])
}

func TestCatalogErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "remote failure", err: &remote.OperationError{Op: remote.OpDelete, ID: "1", Status: http.StatusInternalServerError}, want: http.StatusBadGateway},
		{name: "remote not found", err: &remote.OperationError{Op: remote.OpDelete, ID: "1", Status: http.StatusNotFound}, want: http.StatusNotFound},
		{name: "missing id", err: usecase.ErrMissingMovieID, want: http.StatusBadRequest},
		{name: "session closed", err: usecase.ErrSessionClosed, want: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := serveCatalog(t, &stubCatalog{err: tc.err}, http.MethodDelete, "/api/movies/1", "")
			assert.Equal(t, tc.want, rec.Code)
			assert.Equal(t, false, env["status"])
		})
	}
}

func TestGetMoviesEmptyList(t *testing.T) {
	rec, env := serveCatalog(t, &stubCatalog{}, http.MethodGet, "/api/movies?age_limit=18", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	data := env["data"].(map[string]any)
	assert.EqualValues(t, 18, data["age_limit"])
	assert.Equal(t, []any{}, data["movies"])
	assert.NotContains(t, data, "pagination")
}

func TestCreateMovieInvalidBody(t *testing.T) {
	rec, _ := serveCatalog(t, &stubCatalog{}, http.MethodPost, "/api/movies", "{not-json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
