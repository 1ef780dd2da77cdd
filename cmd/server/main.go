package main

import (
	"context"
	"log"
	"os"

	"go-gin-booking/config"
	"go-gin-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	if err := logger.Configure(cfg.Log.Level, cfg.Log.ErrorFile); err != nil {
		log.Fatalf("Failed to configure logger: %v", err)
	}
	defer logger.L.Sync()

	gin.SetMode(cfg.Server.GinMode)

	app := &cli.Command{
		Name:   "booking",
		Usage:  "Venue, artist and show booking site",
		Flags:  serveFlags(),
		Action: runServe(cfg),
		Commands: []*cli.Command{
			serveCommand(cfg),
			migrateCommand(cfg),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.L.Fatal("application error", zap.Error(err))
	}
}
