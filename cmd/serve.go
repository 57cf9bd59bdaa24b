package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/auth"
	"github.com/markjakearzadon/influencehub-gobackend/internal/clients/aimatcher"
	"github.com/markjakearzadon/influencehub-gobackend/internal/clients/youtube"
	"github.com/markjakearzadon/influencehub-gobackend/internal/config"
	"github.com/markjakearzadon/influencehub-gobackend/internal/db"
	"github.com/markjakearzadon/influencehub-gobackend/internal/handlers"
	"github.com/markjakearzadon/influencehub-gobackend/internal/logging"
	"github.com/markjakearzadon/influencehub-gobackend/internal/services"
	"github.com/markjakearzadon/influencehub-gobackend/internal/store"
)

const (
	connectAttempts = 3
	connectDelay    = 2 * time.Second
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.Log, zap.String("env", cfg.Env), zap.String("version", version))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg.Mongo.URI, connectAttempts, connectDelay, logger)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			logger.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()
	database := client.Database(cfg.Mongo.Database)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	rdb, err := auth.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	users := store.NewUserStore(database)
	campaigns := store.NewCampaignStore(database)
	influencers := store.NewInfluencerStore(database)
	contents := store.NewContentStore(database)
	notifications := store.NewNotificationStore(database)

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	yt := youtube.New(cfg.YouTube, cfg.HTTPClientTimeout, logger.Named("youtube"))
	matcher := aimatcher.New(cfg.AI, cfg.HTTPClientTimeout, logger.Named("aimatcher"))
	if cfg.YouTube.APIKey == "" {
		logger.Warn("YOUTUBE_API_KEY is not set, influencer onboarding will fail")
	}

	notifier := services.NewNotificationService(notifications)
	influencerService := services.NewInfluencerService(influencers, contents, yt, logger)

	router := handlers.NewRouter(handlers.Deps{
		Logger:     logger,
		Production: cfg.IsProduction(),
		UploadDir:  cfg.UploadDir,

		Sessions: auth.NewManager(auth.NewRedisSessionStore(rdb), cfg.Session.Secret, cfg.Session.TTL, cfg.IsProduction()),
		States:   auth.NewRedisStateStore(rdb),
		Google:   auth.NewGoogleProvider(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.CallbackURL),

		Users:         services.NewUserService(users, hasher),
		Auth:          services.NewAuthService(users, hasher),
		Campaigns:     services.NewCampaignService(campaigns, notifier, logger),
		Notifications: notifier,
		Influencers:   influencerService,
		Matching:      services.NewMatchingService(matcher, influencerService, logger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.Uint16("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
