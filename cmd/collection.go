package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// collectionCmd hosts a collection endpoint compatible with the catalog client
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Host a REST collection endpoint for movies",
	Long: `Serves GET/POST /<COLLECTION_NAME> and GET/PUT/DELETE /<COLLECTION_NAME>/{id}
on COLLECTION_PORT. Records are kept in memory or in Postgres (COLLECTION_STORE).
When COLLECTION_TOKEN is set, writes require "Authorization: Bearer <token>".`,
	Args: cobra.NoArgs,
	RunE: runCollection,
}

func runCollection(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repos *repository.Repository
	switch config.Collection.Store {
	case utils.StorePostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Error("Failed to connect to database", zap.Error(err))
			return err
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	default:
		repos = repository.NewMemoryRepository(logger)
	}

	logger.Info("Starting collection server",
		zap.String("collection", config.Collection.Name),
		zap.String("port", config.Collection.Port),
		zap.String("store", config.Collection.Store),
		zap.Bool("token_required", config.Collection.Token != ""),
		zap.Int("rate_limit", config.Collection.RateLimit),
	)

	app := wire.WiringCollection(repos, config, logger)
	return APIServer(ctx, app.Router, config.Collection.Port, logger)
}
