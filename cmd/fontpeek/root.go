package main

import (
	"log/slog"

	"github.com/mmcdole/fontpeek/internal/catalog"
	"github.com/mmcdole/fontpeek/internal/config"
	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/fontload"
	"github.com/mmcdole/fontpeek/internal/log"
	"github.com/mmcdole/fontpeek/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "fontpeek",
	Short:         "Preview Google Fonts on an HTML page",
	Long:          "fontpeek browses the Google Fonts catalog and applies fonts to elements of an HTML page",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default is the user config dir)")
}

// app holds the collaborators shared by every subcommand
type app struct {
	cfg          *config.Config
	logger       *slog.Logger
	store        *store.CatalogStore
	source       *catalog.Source
	materializer *fontload.HTTPMaterializer
	loader       *fontload.Loader
}

func newApp(cmd *cobra.Command) (*app, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)
	logger.Info("starting fontpeek", "version", Version, "command", cmd.Name())

	st, err := store.NewCatalogStore(cfg.Cache.Dir)
	if err != nil {
		logger.Warn("catalog cache unavailable, using memory only", "dir", cfg.Cache.Dir, "error", err)
		st, err = store.NewCatalogStore("")
		if err != nil {
			return nil, err
		}
	}

	var provider domain.CatalogProvider
	if cfg.HasAPIKey() {
		provider = catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.APIKey, cfg.Catalog.Timeout, logger)
	}

	materializer := fontload.NewHTTPMaterializer(cfg.Fonts.StylesheetURL, cfg.Fonts.Weights, cfg.Fonts.Timeout, logger)

	return &app{
		cfg:          cfg,
		logger:       logger,
		store:        st,
		source:       catalog.NewSource(provider, st, cfg.Catalog.CacheTTL, logger),
		materializer: materializer,
		loader:       fontload.NewLoader(materializer, cfg.Fonts.MaxConcurrent, cfg.Fonts.Timeout, logger),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close catalog cache", "error", err)
	}
}
