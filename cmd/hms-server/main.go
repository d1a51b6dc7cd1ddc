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
	"github.com/spf13/cobra"

	"github.com/medicore/hms/internal/config"
	"github.com/medicore/hms/internal/domain/appointment"
	"github.com/medicore/hms/internal/domain/billing"
	"github.com/medicore/hms/internal/domain/dashboard"
	"github.com/medicore/hms/internal/domain/doctor"
	"github.com/medicore/hms/internal/domain/identity"
	"github.com/medicore/hms/internal/domain/medrecord"
	"github.com/medicore/hms/internal/domain/patient"
	"github.com/medicore/hms/internal/domain/resource"
	"github.com/medicore/hms/internal/platform/db"
	"github.com/medicore/hms/internal/platform/middleware"
	"github.com/medicore/hms/internal/platform/sandbox"
	"github.com/medicore/hms/internal/platform/telemetry"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital Management System API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HMS API server",
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
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required for migrations")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.PoolOptions{MaxConns: cfg.DBMaxConns, MinConns: cfg.DBMinConns})
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
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required for migrations")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.PoolOptions{MaxConns: cfg.DBMaxConns, MinConns: cfg.DBMinConns})
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

// repos bundles one repository per collection, backed by either driver.
type repos struct {
	users        identity.Repository
	patients     patient.Repository
	doctors      doctor.Repository
	appointments appointment.Repository
	records      medrecord.Repository
	billings     billing.Repository
	resources    resource.Repository
}

func memoryRepos() repos {
	return repos{
		users:        identity.NewMemRepo(),
		patients:     patient.NewMemRepo(),
		doctors:      doctor.NewMemRepo(),
		appointments: appointment.NewMemRepo(),
		records:      medrecord.NewMemRepo(),
		billings:     billing.NewMemRepo(),
		resources:    resource.NewMemRepo(),
	}
}

func postgresRepos(pool *pgxpool.Pool) repos {
	return repos{
		users:        identity.NewPGRepo(pool),
		patients:     patient.NewPGRepo(pool),
		doctors:      doctor.NewPGRepo(pool),
		appointments: appointment.NewPGRepo(pool),
		records:      medrecord.NewPGRepo(pool),
		billings:     billing.NewPGRepo(pool),
		resources:    resource.NewPGRepo(pool),
	}
}

func runServer() error {
	logger := telemetry.NewLogger(os.Stdout, os.Getenv("ENV"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	var (
		stores repos
		pool   *pgxpool.Pool
	)
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, db.PoolOptions{MaxConns: cfg.DBMaxConns, MinConns: cfg.DBMinConns})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")
		stores = postgresRepos(pool)
	default:
		stores = memoryRepos()
		logger.Info().Msg("using in-memory storage")
	}

	if cfg.SeedDemoData {
		seeder := sandbox.NewSeeder(sandbox.Stores{
			Users:        stores.users,
			Patients:     stores.patients,
			Doctors:      stores.doctors,
			Appointments: stores.appointments,
			Records:      stores.records,
			Billings:     stores.billings,
			Resources:    stores.resources,
		}, logger)
		if err := seeder.Run(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	api := e.Group("/api")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	patient.NewHandler(patient.NewService(stores.patients)).RegisterRoutes(api)
	doctor.NewHandler(doctor.NewService(stores.doctors)).RegisterRoutes(api)
	appointment.NewHandler(appointment.NewService(stores.appointments)).RegisterRoutes(api)
	medrecord.NewHandler(medrecord.NewService(stores.records)).RegisterRoutes(api)
	billing.NewHandler(billing.NewService(stores.billings)).RegisterRoutes(api)
	resource.NewHandler(resource.NewService(stores.resources)).RegisterRoutes(api)
	dashboard.NewHandler(dashboard.NewService(stores.appointments)).RegisterRoutes(api)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	if pool != nil {
		e.GET("/health/db", db.HealthHandler(pool))
	}

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
