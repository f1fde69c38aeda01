package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/yigit/wish2work/internal/app/auth"
	appControllers "github.com/yigit/wish2work/internal/app/controllers"
	appMigrations "github.com/yigit/wish2work/internal/app/migrations"
	appRepos "github.com/yigit/wish2work/internal/app/repositories"
	appRoutes "github.com/yigit/wish2work/internal/app/routes"
	appServices "github.com/yigit/wish2work/internal/app/services"
	"github.com/yigit/wish2work/internal/config"
	"github.com/yigit/wish2work/internal/db"
	appMiddleware "github.com/yigit/wish2work/internal/middleware"
	pkgAuth "github.com/yigit/wish2work/internal/pkg/auth"
	"github.com/yigit/wish2work/internal/pkg/logger"
	"github.com/yigit/wish2work/internal/pkg/validation"
	"github.com/yigit/wish2work/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Stores         appServices.Stores
	Transactor     appServices.Transactor
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	AuthService    *appServices.AuthService
	SearchService  appServices.SearchService
	RequestService appServices.RequestService
	RatingService  appServices.RatingService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	lgr.Info().Str("path", cfg.Database.MigrationsDir).Msg("Running database migrations...")
	if _, err := os.Stat(cfg.Database.MigrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		lgr.Error().Str("path", cfg.Database.MigrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", cfg.Database.MigrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir); err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		opts := seed.Options{AdminEmail: cfg.Seed.AdminEmail, AdminPassword: cfg.Seed.AdminPassword}
		if err := seed.CreateDefaultData(ctx, dbPool, opts, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	if err := validation.RegisterCustomValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Stores = appServices.StoresFrom(deps.Repos)
	deps.Transactor = appServices.NewTransactor(dbPool)

	deps.AuthzService = appAuth.NewAuthorizationService()
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	stores, tx, authz := deps.Stores, deps.Transactor, deps.AuthzService

	deps.AuthService = appServices.NewAuthService(stores, tx, deps.JWTService, lgr)
	deps.SearchService = appServices.NewSearchService(stores, lgr)
	deps.RequestService = appServices.NewRequestService(stores, tx, authz, lgr)
	deps.RatingService = appServices.NewRatingService(stores.Requests, tx, authz, lgr)

	departmentService := appServices.NewDepartmentService(stores.Departments, stores.Programs)
	programService := appServices.NewProgramService(stores.Programs)
	courseService := appServices.NewCourseService(stores.Courses)
	adminService := appServices.NewAdminService(stores.Admins, tx)
	staffService := appServices.NewStaffService(stores, tx, lgr)
	studentService := appServices.NewStudentService(stores, tx, lgr)
	skillService := appServices.NewSkillService(stores.Skills, authz)
	enrollmentService := appServices.NewStudentCourseService(stores.StudentCourses, authz)
	availabilityService := appServices.NewAvailabilityService(stores.Availability, authz, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:          appControllers.NewAuthController(deps.AuthService, lgr),
		Department:    appControllers.NewDepartmentController(departmentService, deps.SearchService),
		Program:       appControllers.NewProgramController(programService),
		Course:        appControllers.NewCourseController(courseService),
		Admin:         appControllers.NewAdminController(adminService),
		Staff:         appControllers.NewStaffController(staffService),
		Student:       appControllers.NewStudentController(studentService, deps.RatingService),
		Skill:         appControllers.NewSkillController(skillService),
		StudentCourse: appControllers.NewStudentCourseController(enrollmentService),
		Availability:  appControllers.NewAvailabilityController(availabilityService),
		Request:       appControllers.NewRequestController(deps.RequestService, deps.RatingService),
		Rating:        appControllers.NewRatingController(deps.RatingService),
		Health:        appControllers.NewHealthController(dbPool),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Recovery(lgr),
	)

	if !cfg.IsRelease() {
		appRoutes.SetupSwagger(router, cfg.Server.Port)
	}
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
