package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/offerpath/interview-prep/internal/config"
	"github.com/offerpath/interview-prep/internal/domain/fiber/handler"
	"github.com/offerpath/interview-prep/internal/middleware"
	"github.com/offerpath/interview-prep/internal/model"
	"github.com/offerpath/interview-prep/internal/repository"
	"github.com/offerpath/interview-prep/internal/service"
	"github.com/offerpath/interview-prep/internal/usecase"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: config.LoadAppConfig().Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	userRepo := repository.NewUserRepository(db)
	oppRepo := repository.NewOpportunityRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	generator := newGenerator(ctx)
	renderer := service.NewRenderService(config.LoadRendererConfig().Timeout)

	contentUC := usecase.NewContentUsecase(userRepo, oppRepo, generator)
	userUC := usecase.NewUserUsecase(userRepo)
	oppUC := usecase.NewOpportunityUsecase(userRepo, oppRepo, contentUC)
	sessionUC := usecase.NewSessionUsecase(sessionRepo, oppRepo, contentUC, generator)
	assessmentUC := usecase.NewAssessmentUsecase(userRepo, oppRepo, sessionRepo)
	suggestionUC := usecase.NewSuggestionUsecase(userRepo, oppRepo)

	handler.NewUserHandler(userUC).RegisterRoutes(app)
	handler.NewOpportunityHandler(oppUC, contentUC).RegisterRoutes(app)
	handler.NewSessionHandler(sessionUC).RegisterRoutes(app)
	handler.NewInsightHandler(assessmentUC, suggestionUC).RegisterRoutes(app)
	handler.NewDocumentHandler(renderer).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

// newGenerator picks the content-generation backend from configuration.
func newGenerator(ctx context.Context) service.ContentGeneratorInterface {
	cfg := config.LoadGeneratorConfig()
	switch cfg.Backend {
	case "gemini":
		gemini, err := service.NewGeminiService(ctx)
		if err != nil {
			log.Fatal(err)
		}
		return gemini
	case "openrouter":
		return service.NewOpenRouterService()
	default:
		log.Println("Using stub content generator")
		return service.NewStubGenerator(cfg.StubDelay)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
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

	// jd_embedding needs the pgvector extension before migration runs
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatal("could not enable pgvector extension: ", err)
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatal("could not enable uuid-ossp extension: ", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Opportunity{}, &model.InterviewSession{}, &model.SessionAnswer{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
