package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// withCollection points the commands at an in-memory collection server
func withCollection(t *testing.T) {
	t.Helper()
	log := zap.NewNop()

	cfg := &utils.Config{
		Collection: utils.CollectionConfig{Name: "movies", Store: utils.StoreMemory},
	}
	srv := httptest.NewServer(wire.WiringCollection(repository.NewMemoryRepository(log), cfg, log).Router)
	t.Cleanup(srv.Close)

	cfg.Catalog.APIURL = srv.URL + "/movies"
	config = cfg
	logger = log
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func addedID(t *testing.T, out string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(out, "Added "), out)
	return strings.TrimSpace(strings.TrimPrefix(out, "Added "))
}

func TestMovieCommands(t *testing.T) {
	withCollection(t)

	out, err := run(t, newAddCmd(), "--title", "Alpha", "--description", "first", "--age-limit", "12")
	require.NoError(t, err)
	alpha := addedID(t, out)

	out, err = run(t, newAddCmd(), "--title", "Beta", "--description", "second")
	require.NoError(t, err)
	beta := addedID(t, out)

	out, err = run(t, newListCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "AGE LIMIT")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.Contains(t, out, "16+", "age limit defaults to 16")

	out, err = run(t, newListCmd(), "--age-limit", "14")
	require.NoError(t, err)
	assert.NotContains(t, out, "Alpha")
	assert.Contains(t, out, beta)

	out, err = run(t, newEditCmd(), alpha, "--title", "Alpha 2")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated "+alpha)
	assert.Contains(t, out, "Alpha 2")
	assert.Contains(t, out, "12+", "fields not passed are kept")

	out, err = run(t, newDeleteCmd(), alpha)
	require.NoError(t, err)
	assert.Equal(t, "Deleted "+alpha+"\n", out)

	out, err = run(t, newListCmd())
	require.NoError(t, err)
	assert.NotContains(t, out, alpha)
	assert.Contains(t, out, beta)
}

func TestMovieCommandErrors(t *testing.T) {
	withCollection(t)

	t.Run("add without title", func(t *testing.T) {
		_, err := run(t, newAddCmd(), "--description", "d")
		assert.Error(t, err)
	})

	t.Run("add with invalid age limit", func(t *testing.T) {
		_, err := run(t, newAddCmd(), "--title", "T", "--description", "d", "--age-limit", "0")
		require.Error(t, err)
		fields, ok := utils.ValidationFields(err)
		require.True(t, ok)
		assert.Contains(t, fields, "ageLimit")
	})

	t.Run("edit without changes", func(t *testing.T) {
		_, err := run(t, newEditCmd(), "some-id")
		assert.ErrorContains(t, err, "nothing to change")
	})

	t.Run("edit with invalid age limit", func(t *testing.T) {
		_, err := run(t, newEditCmd(), "some-id", "--age-limit", "0")
		require.Error(t, err)
		fields, ok := utils.ValidationFields(err)
		require.True(t, ok)
		assert.Contains(t, fields, "ageLimit")
	})

	t.Run("edit unknown id", func(t *testing.T) {
		_, err := run(t, newEditCmd(), "missing", "--title", "X")
		assert.Error(t, err)
	})

	t.Run("delete needs an id", func(t *testing.T) {
		_, err := run(t, newDeleteCmd())
		assert.Error(t, err)
	})

	t.Run("negative filter", func(t *testing.T) {
		_, err := run(t, newListCmd(), "--age-limit=-1")
		assert.Error(t, err)
	})
}

func TestPrintMovies(t *testing.T) {
	var out bytes.Buffer
	printMovies(&out, []entity.Movie{
		{ID: "1", Title: "A", Description: "a", AgeLimit: 12},
		{ID: "2", Title: "B", Description: "b", AgeLimit: 18},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "12+")
	assert.Contains(t, lines[2], "18+")
}

func TestAddRequiresTitleAndDescription(t *testing.T) {
	cmd := newAddCmd()
	for _, name := range []string{"title", "description"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag)
		assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag], name)
	}

	assert.Panics(t, func() { requireFlags(newAddCmd(), "no-such-flag") })
}
