package main

import (
	"log"

	"rate-am/cmd"
	"rate-am/internal/data/repository"
	"rate-am/internal/wire"
	"rate-am/pkg/database"
	"rate-am/pkg/realtime"
	"rate-am/pkg/storage"
	"rate-am/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	store, err := storage.NewLocalStore(config.Storage.Dir, config.Storage.BaseURL)
	if err != nil {
		logger.Fatal("Failed to init storage", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)
	hub := realtime.NewHub()

	app := wire.Wiring(repos, store, hub, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
