package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"kitchenops/config"
	"kitchenops/db"
	"kitchenops/logger"
	"kitchenops/route"
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/development.yaml"
	}
	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		logger.Fatal("could not read config", zap.Error(err))
	}

	r := gin.Default()
	if err := route.SetupRoutes(r, cfg); err != nil {
		logger.Fatal("could not set up routes", zap.Error(err))
	}
	defer db.Close()

	logger.Info("starting server", zap.String("port", cfg.ServerConfig.Port))
	if err := r.Run(":" + cfg.ServerConfig.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
