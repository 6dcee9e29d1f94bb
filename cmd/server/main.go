package main

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"demandletter/internal/config"
	"demandletter/internal/domain/fiber/handler"
	"demandletter/internal/middleware"
	"demandletter/internal/model"
	"demandletter/internal/repository"
	"demandletter/internal/service"
	"demandletter/internal/usecase"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 20 * 1024 * 1024,
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
		EnableStackTrace: appConfig.Env != "production",
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

	jobRepo := repository.NewJobRepository(db)
	chatRepo := repository.NewChatRepository(db)
	generator := service.NewGeneratorService()
	chat := service.NewChatService()

	letterUC := usecase.NewLetterUsecase(jobRepo, generator)
	chatUC := usecase.NewChatUsecase(chatRepo, chat)

	letterHandler := handler.NewLetterHandler(letterUC)
	chatHandler := handler.NewChatHandler(chatUC)

	letterHandler.RegisterRoutes(app)
	chatHandler.RegisterRoutes(app)

	// Monitor goroutine count; dispatches with no timeout can pile up here
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

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()

	// busy_timeout makes concurrent writers wait out SQLite's global write
	// lock instead of failing with SQLITE_BUSY; WAL lets status polls read
	// while a dispatch callback is committing.
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbConfig.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	err = db.AutoMigrate(&model.Job{}, &model.ChatMessage{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
