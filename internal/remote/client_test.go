package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestClientList(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/abc/movies", r.URL.Path)
		_, _ = w.Write([]byte(`[{"_id":"1","title":"A","description":"a","ageLimit":12},{"_id":"2","title":"B","description":"b","ageLimit":18}]`))
	}))
	defer s.Close()

	movies, err := New(s.URL + "/api/abc/movies/").List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.Movie{
		{ID: "1", Title: "A", Description: "a", AgeLimit: 12},
		{ID: "2", Title: "B", Description: "b", AgeLimit: 18},
	}, movies)
}

func TestClientListEmptyArray(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer s.Close()

	movies, err := New(s.URL).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestClientCreateOmitsID(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "_id")
		assert.Equal(t, "C", body["title"])
		assert.EqualValues(t, 16, body["ageLimit"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"new","title":"C","description":"d","ageLimit":16}`))
	}))
	defer s.Close()

	movie, err := New(s.URL).Create(context.Background(), request.MovieRequest{
		Title: "C", Description: "d", AgeLimit: intPtr(16),
	})
	require.NoError(t, err)
	assert.Equal(t, "new", movie.ID)
}

func TestClientCreateWithoutIDFails(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"title":"C"}`))
	}))
	defer s.Close()

	_, err := New(s.URL).Create(context.Background(), request.MovieRequest{Title: "C", Description: "d"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteOperationFailed)
}

func TestClientReplace(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/movies/42", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer s.Close()

		movie, err := New(s.URL+"/movies").Replace(context.Background(), "42", request.MovieRequest{
			Title: "X", Description: "y", AgeLimit: intPtr(18),
		})
		require.NoError(t, err)
		assert.Nil(t, movie)
	})

	t.Run("echoed body", func(t *testing.T) {
		s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"title":"X","description":"y","ageLimit":18}`))
		}))
		defer s.Close()

		movie, err := New(s.URL).Replace(context.Background(), "42", request.MovieRequest{Title: "X", Description: "y"})
		require.NoError(t, err)
		require.NotNil(t, movie)
		assert.Equal(t, "42", movie.ID)
		assert.Equal(t, 18, movie.AgeLimit)
	})
}

func TestClientDelete(t *testing.T) {
	var gotPath string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer s.Close()

	require.NoError(t, New(s.URL).Delete(context.Background(), "a b"))
	assert.Equal(t, "/a b", gotPath)
}

func TestClientSendsToken(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer s.Close()

	_, err := New(s.URL, WithToken("secret")).List(context.Background())
	require.NoError(t, err)
}

func TestClientErrors(t *testing.T) {
	cases := []struct {
		name     string
		handler  http.HandlerFunc
		status   int
		notFound bool
	}{
		{
			name: "5xx",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "fail", http.StatusBadGateway)
			},
			status: http.StatusBadGateway,
		},
		{
			name: "404",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.NotFound(w, nil)
			},
			status:   http.StatusNotFound,
			notFound: true,
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("{not-json"))
			},
			status: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := httptest.NewServer(tc.handler)
			defer s.Close()

			_, err := New(s.URL).Get(context.Background(), "1")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRemoteOperationFailed)
			assert.Equal(t, tc.notFound, IsNotFound(err))

			var opErr *OperationError
			require.True(t, errors.As(err, &opErr))
			assert.Equal(t, OpGet, opErr.Op)
			assert.Equal(t, "1", opErr.ID)
			assert.Equal(t, tc.status, opErr.Status)
		})
	}
}

func TestClientTransportError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := s.URL
	s.Close()

	_, err := New(url).List(context.Background())
	require.Error(t, err)

	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, OpList, opErr.Op)
	assert.Zero(t, opErr.Status)
	assert.NotNil(t, opErr.Err)
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer s.Close()
	defer close(release)

	_, err := New(s.URL, WithTimeout(50*time.Millisecond)).List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteOperationFailed)
}

func TestClientRejectsEmptyID(t *testing.T) {
	c := New("http://127.0.0.1:0")
	assert.Error(t, c.Delete(context.Background(), ""))
	_, err := c.Get(context.Background(), "")
	assert.Error(t, err)
}

func TestClientDrainsDeleteBody(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer s.Close()

	assert.NoError(t, New(s.URL).Delete(context.Background(), "1"))
}

func TestWithTimeoutLeavesSharedClientAlone(t *testing.T) {
	shared := &http.Client{}
	c := New("http://example.invalid", WithHTTPClient(shared), WithTimeout(time.Second))

	assert.Zero(t, shared.Timeout)
	assert.Equal(t, time.Second, c.http.Timeout)
}
