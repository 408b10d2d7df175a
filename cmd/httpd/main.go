// Command httpd runs the botsift HTTP service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/siftworks/botsift/internal/api"
	"github.com/siftworks/botsift/internal/config"
	"github.com/siftworks/botsift/internal/database"
	"github.com/siftworks/botsift/internal/detect"
	"github.com/siftworks/botsift/internal/llmclient"
	"github.com/siftworks/botsift/internal/logger"
	"github.com/siftworks/botsift/internal/scorer"
	"github.com/siftworks/botsift/internal/telemetry"
	"github.com/siftworks/botsift/internal/youtube"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "botsift: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("BOTSIFT_CONFIG")
	if configPath == "" {
		configPath = "config.yml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting botsift",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
	)

	tel := telemetry.NewProvider()

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open phrase store: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		return err
	}
	phrases := database.NewPhraseRepository(db)
	if err := phrases.Seed(ctx, map[string][]string{
		database.CategoryContact: detect.DefaultContactBait,
		database.CategoryScam:    detect.DefaultScamKeywords,
		database.CategoryCrypto:  detect.DefaultCryptoKeywords,
		database.CategoryPromo:   detect.DefaultPromoKeywords,
	}); err != nil {
		return fmt.Errorf("seed phrase store: %w", err)
	}

	detectors := detect.New()
	if err := loadPhrases(ctx, phrases, detectors); err != nil {
		return fmt.Errorf("load phrase lists: %w", err)
	}

	sc := scorer.New(detectors, log)

	var fetcher api.CommentFetcher
	if cfg.YouTube.APIKey != "" {
		fetcher = youtube.NewClient(
			cfg.YouTube.BaseURL,
			cfg.YouTube.APIKey,
			cfg.YouTube.RequestsPerSecond,
			cfg.YouTube.MaxComments,
			log,
		)
	} else {
		log.Warn("youtube api key not set, /analyze/video disabled")
	}

	var classifier api.SecondaryClassifier
	if cfg.LLM.Enabled {
		classifier = llmclient.NewClient(cfg.LLM.BaseURL, cfg.LLM.Timeout)
	}

	handler := api.NewHandler(sc, detectors, phrases, fetcher, classifier, tel, log)
	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, tel, log)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Run() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("shutting down", logger.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// loadPhrases replaces the built-in phrase lists with the stored ones so
// runtime additions survive restarts.
func loadPhrases(ctx context.Context, repo *database.PhraseRepository, detectors *detect.Detectors) error {
	for category, set := range map[string]*detect.PhraseSet{
		database.CategoryContact: detectors.Contact,
		database.CategoryScam:    detectors.Scam,
		database.CategoryCrypto:  detectors.Crypto,
		database.CategoryPromo:   detectors.Promo,
	} {
		stored, err := repo.ListEnabled(ctx, category)
		if err != nil {
			return err
		}
		if len(stored) > 0 {
			set.Update(stored)
		}
	}
	return nil
}
