package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-gin-booking/config"
	"go-gin-booking/internal/api"
	"go-gin-booking/internal/cache"
	"go-gin-booking/internal/database"
	"go-gin-booking/internal/repository"
	"go-gin-booking/internal/service"
	"go-gin-booking/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "port to listen on",
			Sources: cli.EnvVars("PORT"),
		},
		&cli.BoolFlag{
			Name:  "skip-migrate",
			Usage: "do not apply pending migrations before serving",
		},
	}
}

func serveCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP server",
		Flags:  serveFlags(),
		Action: runServe(cfg),
	}
}

func migrateCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply or roll back database migrations",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := database.MigrateUp(&cfg.Database); err != nil {
						return err
					}
					logger.L.Info("migrations applied")
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "Roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "steps",
						Usage: "number of migrations to roll back",
						Value: 1,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					steps := int(cmd.Int("steps"))
					if err := database.MigrateDown(&cfg.Database, steps); err != nil {
						return err
					}
					logger.L.Info("migrations rolled back", zap.Int("steps", steps))
					return nil
				},
			},
		},
	}
}

func runServe(cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cfg.Database.AutoMigrate && !cmd.Bool("skip-migrate") {
			if err := database.MigrateUp(&cfg.Database); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}

		pool, err := database.InitDatabase(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		var rdb *redis.Client
		var flash cache.FlashStore
		switch cfg.Flash.Backend {
		case "redis":
			rdb, err = database.InitRedis(&cfg.Redis)
			if err != nil {
				return fmt.Errorf("failed to initialize redis: %w", err)
			}
			defer rdb.Close()
			flash = cache.NewRedisFlashStore(rdb, cfg.Flash.TTL)
		default:
			flash = cache.NewMemoryFlashStore()
		}

		venueRepo := repository.NewVenueRepository(pool)
		artistRepo := repository.NewArtistRepository(pool)
		showRepo := repository.NewShowRepository(pool)

		router, err := api.NewRouter(api.Services{
			Venues:  service.NewVenueService(pool, venueRepo, showRepo),
			Artists: service.NewArtistService(pool, artistRepo, showRepo),
			Shows:   service.NewShowService(pool, showRepo, artistRepo, venueRepo),
			Flash:   flash,
			Health: func(ctx context.Context) error {
				if err := pool.Ping(ctx); err != nil {
					return err
				}
				if rdb != nil {
					return rdb.Ping(ctx).Err()
				}
				return nil
			},
		})
		if err != nil {
			return err
		}

		addr := cfg.Server.Addr()
		if port := cmd.String("port"); port != "" {
			addr = cfg.Server.Host + ":" + port
		}

		srv := &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		}

		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.L.Info("server listening",
				zap.String("addr", addr),
				zap.String("flash_backend", cfg.Flash.Backend),
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.L.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}
