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

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"bike-train-finder/config"
	"bike-train-finder/database"
	"bike-train-finder/handlers"
	"bike-train-finder/logger"
	"bike-train-finder/middleware"
	"bike-train-finder/repositories"
	"bike-train-finder/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer logger.Sync(log)

	app := &cli.App{
		Name:  "bike-train-finder",
		Usage: "find train round trips with room for your bicycle",
		Commands: []*cli.Command{
			serveCommand(cfg, log),
			searchCommand(cfg, log),
			migrateCommand(cfg, log),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalw("command failed", "error", err)
	}
}

// app holds the wired services shared by all commands
type app struct {
	db       *sqlx.DB
	rdb      *redis.Client
	cache    *repositories.StationCache
	search   *services.SearchService
	stations *services.StationService
}

func (a *app) Close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func setup(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*app, error) {
	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := repositories.NewJourneyRepository(db)
	a := &app{
		db: db,
		search: services.NewSearchService(repo, services.Defaults{
			OriginCity:       cfg.DefaultOriginCity,
			DestinationCity:  cfg.DefaultDestinationCity,
			ReturnDelayHours: cfg.DefaultReturnDelayHours,
		}, log),
	}

	var stations services.StationLister = repo
	if cfg.RedisAddr != "" {
		a.rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		a.cache = repositories.NewStationCache(a.rdb, repo, cfg.StationCacheTTL, log)
		stations = a.cache
		log.Infow("station cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.StationCacheTTL)
	}
	a.stations = services.NewStationService(stations)

	return a, nil
}

func serveCommand(cfg *config.Config, log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Value: cfg.ServerPort,
				Usage: "port to listen on",
			},
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "create the schema before serving if it is missing",
			},
		},
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := setup(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			if c.Bool("migrate") {
				if err := database.RunMigrations(ctx, a.db, log); err != nil {
					log.Warnw("migration check failed", "error", err)
				}
			}

			if cfg.GinMode == gin.DebugMode {
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}

			h := handlers.New(a.search, a.stations, cfg.SearchTimeout, log)
			router := handlers.SetupRouter(h, middleware.RateLimit(ctx, cfg.RateLimitPerMinute, cfg.RateLimitBurst))

			srv := &http.Server{
				Addr:              ":" + c.String("port"),
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Infow("bike train finder listening", "port", c.String("port"))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("failed to start server: %w", err)
				}
			case <-ctx.Done():
			}

			log.Info("shutting down server")

			// Graceful shutdown with 5 second timeout
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}

			log.Info("server exited")
			return nil
		},
	}
}

func migrateCommand(cfg *config.Config, log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create the stations, trains and journeys tables if missing",
		Action: func(c *cli.Context) error {
			a, err := setup(c.Context, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := database.RunMigrations(c.Context, a.db, log); err != nil {
				return err
			}

			// Stations may have changed under the cached list
			if a.cache != nil {
				if err := a.cache.Invalidate(c.Context); err != nil {
					log.Warnw("station cache invalidation failed", "error", err)
				}
			}
			return nil
		},
	}
}
