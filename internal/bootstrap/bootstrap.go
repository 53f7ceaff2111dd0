package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/devcamper/internal/app/auth"
	appControllers "github.com/yigit/devcamper/internal/app/controllers"
	appMigrations "github.com/yigit/devcamper/internal/app/migrations"
	appRepos "github.com/yigit/devcamper/internal/app/repositories"
	appRoutes "github.com/yigit/devcamper/internal/app/routes"
	appServices "github.com/yigit/devcamper/internal/app/services"
	"github.com/yigit/devcamper/internal/config"
	"github.com/yigit/devcamper/internal/db"
	appMiddleware "github.com/yigit/devcamper/internal/middleware"
	pkgAuth "github.com/yigit/devcamper/internal/pkg/auth"
	"github.com/yigit/devcamper/internal/pkg/helpers"
	"github.com/yigit/devcamper/internal/pkg/logger"
	"github.com/yigit/devcamper/internal/pkg/metrics"
	"github.com/yigit/devcamper/internal/seed"
	"github.com/yigit/devcamper/internal/workers"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	AuthzService       *appAuth.AuthorizationService
	CourseEvents       *appServices.CourseEvents
	Maintainer         *appServices.AverageCostMaintainer
	CourseService      appServices.CourseService
	BootcampService    appServices.BootcampService
	CourseController   *appControllers.CourseController
	BootcampController *appControllers.BootcampController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Reconciler         *workers.Reconciler
	Registry           *prometheus.Registry
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides configs/config.yaml.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  strings.ToLower(cfg.Logging.Format) == "text",
		Service: "devcamper",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds sample data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.Migrate(ctx, database.DB); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, database.DB, cfg.Seed, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, workers and controllers.
func BuildDependencies(cfg *config.Config, conn *sql.DB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(conn, "devcamper"),
	)

	deps.Repos = appRepos.NewRepositories(conn)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
	})
	deps.AuthzService = appAuth.NewAuthorizationService()

	deps.CourseEvents = appServices.NewCourseEvents(lgr)
	deps.Maintainer = appServices.NewAverageCostMaintainer(
		deps.Repos.CourseRepository,
		deps.Repos.BootcampRepository,
		appServices.AverageCostOptions{
			OnEmpty: cfg.AverageCost.OnEmpty,
			Timeout: helpers.ParseDuration(cfg.AverageCost.RecomputeTimeout, 5*time.Second),
			Metrics: metrics.NewRecorder(deps.Registry),
			Logger:  lgr,
		},
	)
	deps.Maintainer.Subscribe(deps.CourseEvents)

	reconciler, err := workers.NewReconciler(
		cfg.AverageCost.ReconcileSchedule,
		deps.Maintainer,
		time.Minute,
		lgr,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up reconciler: %w", err)
	}
	deps.Reconciler = reconciler

	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.BootcampRepository,
		deps.AuthzService,
		deps.CourseEvents,
	)
	deps.BootcampService = appServices.NewBootcampService(deps.Repos.BootcampRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.BootcampController = appControllers.NewBootcampController(deps.BootcampService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, database appRoutes.Pinger, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(lgr),
		appMiddleware.RequestLogger(lgr),
		cors.New(corsConfig(cfg.Server.CORSOrigins)),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.CourseController, deps.BootcampController, deps.AuthMiddleware)
	appRoutes.SetupOperations(router, database, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", appMiddleware.RequestIDHeader},
		ExposeHeaders:    []string{appMiddleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
