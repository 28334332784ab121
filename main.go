package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/rohanthewiz/logger"

	"mizan/config"
	"mizan/models"
	"mizan/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	logger.SetLogLevel(cfg.LogLevel)

	if cfg.UsingDevSecret() {
		logger.Info("Using development JWT secret, set " + config.EnvJWTSecret + " in production")
	}

	if err := models.InitDB(cfg.DBPath); err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer models.CloseDB()

	if err := models.InitJWT(cfg.JWTSecret); err != nil {
		log.Fatal("Failed to initialize JWT: ", err)
	}

	if cfg.DemoUser != "" {
		user, err := models.EnsureUser(models.UserInput{
			Username:  cfg.DemoUser,
			Password:  cfg.DemoPassword,
			FirstName: cfg.DemoFirstName,
		})
		if err != nil {
			log.Fatal("Failed to create demo user: ", err)
		}
		logger.Info("Demo account ready", "username", user.Username)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := web.NewServer(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to create server: ", err)
	}
	if err := web.Run(srv, cfg.Addr); err != nil {
		logger.LogErr(err, "server stopped")
	}
}
