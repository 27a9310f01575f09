package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/unirecords/internal/app/auth"
	appControllers "github.com/yigit/unirecords/internal/app/controllers"
	appMigrations "github.com/yigit/unirecords/internal/app/migrations"
	appRepos "github.com/yigit/unirecords/internal/app/repositories"
	appRoutes "github.com/yigit/unirecords/internal/app/routes"
	appServices "github.com/yigit/unirecords/internal/app/services"
	"github.com/yigit/unirecords/internal/config"
	"github.com/yigit/unirecords/internal/db"
	appMiddleware "github.com/yigit/unirecords/internal/middleware"
	pkgAuth "github.com/yigit/unirecords/internal/pkg/auth"
	"github.com/yigit/unirecords/internal/pkg/filestorage"
	"github.com/yigit/unirecords/internal/pkg/helpers"
	"github.com/yigit/unirecords/internal/pkg/logger"
	"github.com/yigit/unirecords/internal/seed"
)

// ConfigPath is where the YAML configuration is looked up, relative to the working directory
var ConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService              *appServices.AuthService
	UserService              *appServices.UserService
	DepartmentService        *appServices.DepartmentService
	CourseService            *appServices.CourseService
	GradeService             *appServices.GradeService
	GradesAndScheduleService *appServices.GradesAndScheduleService

	AuthController              *appControllers.AuthController
	UserController              *appControllers.UserController
	DepartmentController        *appControllers.DepartmentController
	CourseController            *appControllers.CourseController
	GradeController             *appControllers.GradeController
	GradesAndScheduleController *appControllers.GradesAndScheduleController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, applies pending migrations when
// auto-migrate is enabled and seeds the default departments.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if cfg.Database.AutoMigrate {
		lgr.Info().Msg("Running database migrations...")
		if err := runMigrations(ctx, database, lgr); err != nil {
			database.Close()
			return nil, err
		}
		lgr.Info().Msg("Database migrations successfully applied.")
	}

	if err := seed.CreateDefaultData(ctx, database, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

func runMigrations(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	migrator, err := appMigrations.NewMigrator(database.Pool, lgr)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migrator.Close()

	if err := migrator.Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	var err error
	fileStorageBaseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	location, err := cfg.ScheduleLocation()
	if err != nil {
		return nil, fmt.Errorf("invalid schedule timezone: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.UserRepository)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDurationOr(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
		Audience:       cfg.JWT.Audience,
		CookieName:     cfg.JWT.CookieName,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.DepartmentRepository,
		deps.FileStorage,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.DepartmentRepository,
		deps.FileStorage,
		lgr,
	)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository, lgr)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.DepartmentRepository,
		deps.AuthzService,
		lgr,
	)
	deps.GradeService = appServices.NewGradeService(
		deps.Repos.GradeRepository,
		deps.Repos.CourseRepository,
		deps.AuthzService,
		lgr,
	)
	deps.GradesAndScheduleService = appServices.NewGradesAndScheduleService(
		appRepos.NewGradebookStore(deps.Repos),
		location,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.JWTService.CookieName(), lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)
	deps.GradesAndScheduleController = appControllers.NewGradesAndScheduleController(deps.GradesAndScheduleService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, database *db.PostgresDB, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.EqualFold(cfg.Server.Mode, "production") {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.AllowedOrigins()),
	)

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.DepartmentController,
		deps.CourseController,
		deps.GradeController,
		deps.GradesAndScheduleController,
		deps.AuthMiddleware,
	)

	router.Static("/uploads", deps.FileStorage.BasePath())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx); err != nil {
			lgr.Warn().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up", "pool": database.Stats()})
	})

	return router, nil
}
