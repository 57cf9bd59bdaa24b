package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/config"
	"github.com/markjakearzadon/influencehub-gobackend/internal/db"
	"github.com/markjakearzadon/influencehub-gobackend/internal/logging"
	"github.com/markjakearzadon/influencehub-gobackend/internal/seed"
	"github.com/markjakearzadon/influencehub-gobackend/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load influencers and content from CSV exports",
	Long: `Load influencers and their content from CSV exports.

Examples:
  # YouTube channel exports; missing files are skipped
  influencehub seed youtube data/youtube_1.csv data/youtube_2.csv

  # Instagram post export; a missing file is an error
  influencehub seed instagram data/instagram_influencers.csv`,
}

func init() {
	seedCmd.AddCommand(&cobra.Command{
		Use:   "youtube <csv>...",
		Short: "Import YouTube channel and video rows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), seed.YouTube, args)
		},
	})
	seedCmd.AddCommand(&cobra.Command{
		Use:   "instagram <csv>...",
		Short: "Import Instagram post rows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), seed.Instagram, args)
		},
	})
}

func runSeed(ctx context.Context, platform seed.Platform, files []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.Log, zap.String("platform", string(platform)))
	defer func() { _ = logger.Sync() }()

	client, err := db.Connect(ctx, cfg.Mongo.URI, connectAttempts, connectDelay, logger)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	database := client.Database(cfg.Mongo.Database)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	importer := seed.NewImporter(store.NewInfluencerStore(database), store.NewContentStore(database), logger)
	stats, err := importer.ImportFiles(ctx, platform, files)
	if err != nil {
		return err
	}
	logger.Info("seeding finished",
		zap.Int("rows", stats.Rows),
		zap.Int("influencers", stats.Influencers),
		zap.Int("contents", stats.Contents),
		zap.Int("skipped", stats.Skipped),
	)
	return nil
}
