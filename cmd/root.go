package cmd

import (
	"fmt"

	"movie-catalog/internal/remote"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	envFile string
	apiURL  string
	debug   bool

	// Set up by the root command before any subcommand runs
	config *utils.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "movie-catalog",
	Short: "Manage a movie catalog stored behind a REST collection endpoint",
	Long: `movie-catalog lists, adds, edits and deletes movie records held by a remote
REST collection (GET/POST <base>, PUT/DELETE <base>/<id>), and filters them by age limit.

It can also serve the catalog as a JSON API (serve) and host a compatible
collection endpoint itself (collection).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := utils.LoadConfigFrom(envFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("api-url") {
			cfg.Catalog.APIURL = apiURL
		}
		if cmd.Flags().Changed("debug") {
			cfg.App.Debug = debug
		}
		config = cfg

		logger, err = utils.InitLogger(cfg.App.LogPath, cfg.App.Name, cfg.App.Debug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path of the optional .env file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Remote collection URL (overrides CATALOG_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(collectionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// newSession opens a catalog session against the configured remote collection
func newSession() *usecase.CatalogSync {
	client := remote.New(config.Catalog.APIURL,
		remote.WithToken(config.Catalog.Token),
		remote.WithTimeout(config.Catalog.Timeout),
	)
	return usecase.NewCatalogSync(client, logger)
}
