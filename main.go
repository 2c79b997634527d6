package main

import (
	"cliprewards-backend/config"
	"cliprewards-backend/internal/api"
	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/models"
	"cliprewards-backend/internal/services"
	"cliprewards-backend/pkg/logger"
	"log"

	"go.uber.org/zap"
)

// @title cliprewards-backend API
// @version 1.0
// @description Watch-and-earn rewards backend: vote on videos, accrue a balance, withdraw after meeting the streak requirement.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

// defaultCatalog is the seed data for fresh deployments. Seeding is
// idempotent, keyed by title.
var defaultCatalog = []models.Video{
	{Title: "City Timelapse", Description: "A day in the city in sixty seconds", URL: "https://videos.cliprewards.example/city-timelapse.mp4", ThumbnailURL: "https://videos.cliprewards.example/thumbs/city-timelapse.jpg", RewardMin: 0.25, RewardMax: 1.50, DurationSeconds: 60},
	{Title: "Cooking Hack: One-Pan Pasta", Description: "Dinner with almost no dishes", URL: "https://videos.cliprewards.example/one-pan-pasta.mp4", ThumbnailURL: "https://videos.cliprewards.example/thumbs/one-pan-pasta.jpg", RewardMin: 0.50, RewardMax: 2.00, DurationSeconds: 45},
	{Title: "Street Performance", Description: "Violinist at the central station", URL: "https://videos.cliprewards.example/street-performance.mp4", ThumbnailURL: "https://videos.cliprewards.example/thumbs/street-performance.jpg", RewardMin: 0.25, RewardMax: 1.00, DurationSeconds: 90},
	{Title: "Mountain Biking POV", Description: "Downhill run, helmet camera", URL: "https://videos.cliprewards.example/mtb-pov.mp4", ThumbnailURL: "https://videos.cliprewards.example/thumbs/mtb-pov.jpg", RewardMin: 0.75, RewardMax: 2.50, DurationSeconds: 75},
	{Title: "Puppy Learns to Swim", Description: "First time at the lake", URL: "https://videos.cliprewards.example/puppy-swim.mp4", ThumbnailURL: "https://videos.cliprewards.example/thumbs/puppy-swim.jpg", RewardMin: 0.25, RewardMax: 1.25, DurationSeconds: 30},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Video{},
		&models.Vote{},
		&models.Transaction{},
		&models.Withdrawal{},
		&models.DailyVoteCount{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := services.SeedVideos(defaultCatalog); err != nil {
		log.Fatalf("failed to seed video catalog: %v", err)
	}

	// Email delivery hangs off withdrawal completion. The mailer is an
	// external collaborator; this process only fires the trigger.
	services.RegisterWithdrawalCompletedHook(func(w *models.Withdrawal) {
		logger.Log.Info("withdrawal completion notification queued",
			zap.Uint("withdrawal_id", w.ID),
			zap.Uint("user_id", w.UserID))
	})

	logger.Log.Info("starting server", zap.String("addr", ":8080"))
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
