package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"movie-catalog/internal/wire"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd exposes one catalog session as a JSON API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog as a JSON API",
	Long: `Opens a catalog session against the remote collection and serves it on PORT:

  GET    /api/movies?age_limit=N   visible movies (age_limit also selects the filter)
  POST   /api/movies/refresh       re-read the remote collection
  GET    /api/movies/{id}          one movie, read from the remote
  POST   /api/movies               add a movie (ageLimit defaults to 16)
  PUT    /api/movies/{id}          replace a movie, then refresh
  DELETE /api/movies/{id}          delete a movie`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := newSession()
	defer session.Close()

	if err := session.SetFilter(config.Catalog.DefaultFilter); err != nil {
		return err
	}

	// A failed first fetch is not fatal; the session starts empty and can be refreshed.
	if err := session.Init(ctx); err != nil {
		logger.Warn("Initial catalog fetch failed", zap.Error(err))
	}

	logger.Info("Starting catalog API",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("remote", config.Catalog.APIURL),
		zap.Bool("debug", config.App.Debug),
	)

	app := wire.WiringCatalog(session, logger)
	return APIServer(ctx, app.Router, config.App.Port, logger)
}
