package main

import (
	"go-huerta-backend/internal/auth"
	"go-huerta-backend/internal/config"
	"go-huerta-backend/internal/database"
	"go-huerta-backend/internal/routes"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Invalid configuration: ", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	database.Connect(cfg.DBDSN)

	r := routes.Setup(cfg)

	logrus.Info("🚀 Server starting on " + cfg.BaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Server failed to start: ", err)
	}
}
