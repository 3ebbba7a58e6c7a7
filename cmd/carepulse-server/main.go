package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carepulse/carepulse/internal/config"
	"github.com/carepulse/carepulse/internal/domain/identity"
	"github.com/carepulse/carepulse/internal/domain/messaging"
	"github.com/carepulse/carepulse/internal/domain/metrics"
	"github.com/carepulse/carepulse/internal/domain/patient"
	"github.com/carepulse/carepulse/internal/domain/reminder"
	"github.com/carepulse/carepulse/internal/domain/resource"
	"github.com/carepulse/carepulse/internal/platform/assistant"
	"github.com/carepulse/carepulse/internal/platform/db"
	"github.com/carepulse/carepulse/internal/platform/middleware"
	"github.com/carepulse/carepulse/internal/platform/seed"
)

const requestTimeout = 30 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:   "carepulse-server",
		Short: "CarePulse nursing dashboard API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the CarePulse API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.InMemory() {
				return fmt.Errorf("DATABASE_URL is required to run migrations")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.InMemory() {
				return fmt.Errorf("DATABASE_URL is required to inspect migrations")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo ward into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.InMemory() {
				return fmt.Errorf("DATABASE_URL is required to seed; the in-memory server seeds itself on startup")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := seed.Demo(ctx, pgStores(pool), time.Now()); err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			fmt.Println("Demo ward loaded.")
			return nil
		},
	}
}

func pgStores(pool *pgxpool.Pool) seed.Stores {
	return seed.Stores{
		Users:     identity.NewRepoPG(pool),
		Patients:  patient.NewRepoPG(pool),
		Vitals:    patient.NewVitalSignRepoPG(pool),
		Reminders: reminder.NewRepoPG(pool),
		Messages:  messaging.NewRepoPG(pool),
		Resources: resource.NewRepoPG(pool),
		Metrics:   metrics.NewRepoPG(pool),
	}
}

func memStores() seed.Stores {
	return seed.Stores{
		Users:     identity.NewRepoMem(),
		Patients:  patient.NewRepoMem(),
		Vitals:    patient.NewVitalSignRepoMem(),
		Reminders: reminder.NewRepoMem(),
		Messages:  messaging.NewRepoMem(),
		Resources: resource.NewRepoMem(),
		Metrics:   metrics.NewRepoMem(),
	}
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()

	var pool *pgxpool.Pool
	var stores seed.Stores
	if cfg.InMemory() {
		stores = memStores()
		logger.Info().Msg("running with the in-memory store")
	} else {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		stores = pgStores(pool)
		logger.Info().Msg("connected to database")
	}

	if cfg.InMemory() || cfg.SeedDemoData {
		if err := seed.Demo(ctx, stores, time.Now()); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
		logger.Info().Msg("demo ward loaded")
	}

	// Services
	identitySvc := identity.NewService(stores.Users)
	patientSvc := patient.NewService(stores.Patients, stores.Vitals)
	reminderSvc := reminder.NewService(stores.Reminders)
	messagingSvc := messaging.NewService(stores.Messages, assistant.ByName(cfg.AssistantPolicy), logger)
	resourceSvc := resource.NewService(stores.Resources)
	metricsSvc := metrics.NewService(stores.Metrics)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(requestTimeout))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))

	identity.NewHandler(identitySvc).RegisterRoutes(apiV1)
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	reminder.NewHandler(reminderSvc).RegisterRoutes(apiV1)
	messaging.NewHandler(messagingSvc).RegisterRoutes(apiV1)
	resource.NewHandler(resourceSvc).RegisterRoutes(apiV1)
	metrics.NewHandler(metricsSvc).RegisterRoutes(apiV1)

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
