package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/career-compass/internal/config"
	"github.com/fadilmartias/career-compass/internal/domain/fiber/handler"
	"github.com/fadilmartias/career-compass/internal/logger"
	"github.com/fadilmartias/career-compass/internal/middleware"
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/fadilmartias/career-compass/internal/prompt"
	"github.com/fadilmartias/career-compass/internal/repository"
	"github.com/fadilmartias/career-compass/internal/service"
	"github.com/fadilmartias/career-compass/internal/usecase"
	"github.com/fadilmartias/career-compass/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zlog, err := logger.New(appConfig.Env)
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer zlog.Sync()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: appConfig.MaxUploadSize,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code, body := util.HTTPError(err)
			if code >= fiber.StatusInternalServerError {
				zlog.Error("request failed",
					"method", c.Method(),
					"path", c.Path(),
					"error", err,
				)
			}
			return c.Status(code).JSON(body)
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: appConfig.AllowOrigins,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	db := ConnectDB(zlog)

	userRepo := repository.NewUserRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	jobRepo := repository.NewJobAnalysisRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	progressRepo := repository.NewRecommendationProgressRepository(db)

	prompts := prompt.NewEngine(zlog)
	analyzer := buildAnalyzer(ctx, prompts, zlog)

	tokens, err := service.NewTokenService(config.LoadAuthConfig().JWTSecret)
	if err != nil {
		zlog.Fatal("token service", "error", err)
	}

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, analyzer, zlog)
	jobUC := usecase.NewJobUsecase(jobRepo, resumeRepo, skillRepo, analyzer, zlog)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	recUC := usecase.NewRecommendationUsecase(jobRepo, progressRepo, zlog)
	statsUC := usecase.NewStatsUsecase(jobRepo, skillRepo)
	userUC := usecase.NewUserUsecase(userRepo, jobRepo, skillRepo, resumeRepo, progressRepo, zlog)

	api := app.Group("/api")
	handler.NewAuthHandler(authUC).RegisterRoutes(api)

	api.Use(middleware.AuthRequired(tokens))
	handler.NewResumeHandler(resumeUC, appConfig).RegisterRoutes(api)
	handler.NewJobHandler(jobUC).RegisterRoutes(api)
	handler.NewSkillHandler(skillUC).RegisterRoutes(api)
	handler.NewRecommendationHandler(recUC).RegisterRoutes(api)
	handler.NewStatsHandler(statsUC).RegisterRoutes(api)
	handler.NewUserHandler(userUC).RegisterRoutes(api)

	zlog.Info("server running", "port", appConfig.Port, "env", appConfig.Env)
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("server stopped", "error", err)
	}
}

func buildAnalyzer(ctx context.Context, prompts *prompt.Engine, zlog *logger.Logger) service.Analyzer {
	switch provider := config.LoadLLMConfig().Provider; provider {
	case "openrouter":
		analyzer, err := service.NewOpenRouterService(prompts)
		if err != nil {
			zlog.Fatal("openrouter service", "error", err)
		}
		return analyzer
	default:
		analyzer, err := service.NewGeminiService(ctx, prompts, zlog)
		if err != nil {
			zlog.Fatal("gemini service", "error", err)
		}
		return analyzer
	}
}

func ConnectDB(zlog *logger.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zlog.Fatal("database connection", "error", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		zlog.Fatal("database instance", "error", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Resume{},
		&model.JobAnalysis{},
		&model.Skill{},
		&model.Recommendation{},
		&model.RecommendationProgress{},
	)
	if err != nil {
		zlog.Fatal("migration failed", "error", err)
	}
	return db
}
