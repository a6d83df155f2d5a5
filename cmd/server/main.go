package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"expense-tracko-api/internal/ai"
	"expense-tracko-api/internal/config"
	"expense-tracko-api/internal/database"
	httpserver "expense-tracko-api/internal/http"
	"expense-tracko-api/internal/logger"
	"expense-tracko-api/internal/storage"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.Load()
	if err := logger.Init(cfg.Development, cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := database.Connect(); err != nil {
		logger.Get().Fatal("database connection failed", zap.Error(err))
	}

	repo := storage.New(database.DB)
	if err := repo.Migrate(); err != nil {
		logger.Get().Fatal("migration failed", zap.Error(err))
	}

	aiClient := ai.NewClient(cfg)
	r := httpserver.NewServer(cfg, repo, aiClient)

	logger.Get().Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Get().Fatal("server stopped", zap.Error(err))
	}
}
