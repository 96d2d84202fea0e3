package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gasline/cmd"
	authttp "gasline/internal/adapters/in/http"
	"gasline/internal/adapters/out/postgres/driverrepo"
	"gasline/internal/adapters/out/postgres/orderrepo"
	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/generated/servers"
	"gasline/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleAssignmentAge = 15 * time.Minute

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = migrateDatabase(gormDB); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	orderFeed := root.OrderFeed()
	orderFeed.Start()
	defer orderFeed.Stop()

	jobManager, err := buildJobManager(root, configs, logger)
	if err != nil {
		logger.Error("Failed to build job manager", "error", err)
		os.Exit(1)
	}
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := buildWebServer(root)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("Web server stopped", "error", serveErr)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:           envOr("HTTP_PORT", "8080"),
		DBHost:             envOr("DB_HOST", "localhost"),
		DBPort:             envOr("DB_PORT", "5432"),
		DBUser:             envOr("DB_USER", "postgres"),
		DBPassword:         envOr("DB_PASSWORD", "postgres"),
		DBName:             envOr("DB_NAME", "gasline"),
		DBSslMode:          envOr("DB_SSLMODE", "disable"),
		StaleAssignmentAge: envDurationOr("STALE_ASSIGNMENT_AGE", defaultStaleAssignmentAge),
		StockCount:         envIntOr("STOCK_COUNT", 0),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrateDatabase(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&driverrepo.UserDTO{},
	)
}

func buildJobManager(root *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) (*jobs.JobManager, error) {
	systemActor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDispatcher)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(
		root.CreateReleaseStaleAssignmentsCommandHandler(),
		root.CreateGetDashboardStatsQueryHandler(),
		systemActor,
		configs.StaleAssignmentAge,
		logger,
	), nil
}

func buildWebServer(root *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.GET("/swagger/doc.json", func(c echo.Context) error {
		spec, err := servers.GetSwagger()
		if err != nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, spec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := authttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateApproveOrderCommandHandler(),
		root.CreateAssignDriverCommandHandler(),
		root.CreateProgressOrderCommandHandler(),
		root.CreateRegisterDriverCommandHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		root.CreateListDispatchOrdersQueryHandler(),
		root.CreateGetDriverOrdersQueryHandler(),
		root.CreateGetDashboardStatsQueryHandler(),
		root.OrderFeed(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	return e
}
