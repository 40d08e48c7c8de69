package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/dishabharti/campus/internal/app/controllers"
	appRoutes "github.com/dishabharti/campus/internal/app/routes"
	appServices "github.com/dishabharti/campus/internal/app/services"
	"github.com/dishabharti/campus/internal/app/store"
	"github.com/dishabharti/campus/internal/config"
	appMiddleware "github.com/dishabharti/campus/internal/middleware"
	"github.com/dishabharti/campus/internal/persistence"
	pkgAuth "github.com/dishabharti/campus/internal/pkg/auth"
	"github.com/dishabharti/campus/internal/pkg/helpers"
	"github.com/dishabharti/campus/internal/pkg/logger"
	"github.com/dishabharti/campus/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store               *store.Store
	Adapter             persistence.Adapter
	AuthService         *appServices.AuthService
	StudentService      *appServices.StudentService
	CourseService       *appServices.CourseService
	DashboardService    *appServices.DashboardService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	CourseController    *appControllers.CourseController
	DashboardController *appControllers.DashboardController
	PortalController    *appControllers.PortalController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real env vars still win inside LoadConfig
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore builds the persistence adapter, then fills the entity store
// from the stored snapshot or, when none exists, the seed dataset. A seed
// load failure is fatal: starting with a silently blank dataset would
// reproduce the blank-dashboard failure mode this replaces.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, persistence.Adapter, error) {
	var adapter persistence.Adapter
	var err error
	switch cfg.Storage.Driver {
	case "sqlite":
		adapter, err = persistence.NewSQLiteAdapter(cfg.Storage.Path)
	default:
		adapter, err = persistence.NewFileAdapter(cfg.Storage.Path)
	}
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open snapshot storage")
		return nil, nil, fmt.Errorf("open snapshot storage: %w", err)
	}

	st := store.New()

	snap, ok, err := adapter.Load(context.Background())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to read stored snapshot")
		_ = adapter.Close()
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}
	if ok {
		st.Replace(snap.Students, snap.Courses)
		lgr.Info().Int("students", len(snap.Students)).Int("courses", len(snap.Courses)).Msg("Loaded snapshot")
		return st, adapter, nil
	}

	students, courses, err := seed.Load()
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load seed data")
		_ = adapter.Close()
		return nil, nil, err
	}
	st.Replace(students, courses)
	lgr.Info().Int("students", len(students)).Int("courses", len(courses)).Msg("No snapshot found, loaded seed data")
	return st, adapter, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, st *store.Store, adapter persistence.Adapter, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: st, Adapter: adapter, Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(st, adapter, deps.JWTService, appServices.AdminCredentials{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, lgr)
	deps.StudentService = appServices.NewStudentService(st, adapter)
	deps.CourseService = appServices.NewCourseService(st, adapter)
	deps.DashboardService = appServices.NewDashboardService(st, adapter, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.PortalController = appControllers.NewPortalController(deps.StudentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.CourseController,
		deps.DashboardController,
		deps.PortalController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
