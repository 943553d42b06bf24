package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"smartrecruit/api/internal/analysis"
	"smartrecruit/api/internal/config"
	"smartrecruit/api/internal/handlers"
	"smartrecruit/api/internal/repositories"
	"smartrecruit/api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	jobRepo := repositories.NewAnalysisJobRepository(db)
	resultRepo := repositories.NewAnalysisResultRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	// Initialize the embedding model and role catalog. Both are required
	// for scoring, so a failure here is fatal.
	ctx := context.Background()
	embedder, err := analysis.NewGeminiEmbedder(ctx, cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding model: %v", err)
	}
	log.Println("✅ Embedding model initialized successfully")

	catalog, err := analysis.NewRoleCatalog(ctx, embedder, analysis.DefaultRoleDescriptions())
	if err != nil {
		log.Fatalf("❌ Failed to build role catalog: %v", err)
	}
	log.Printf("✅ Role catalog ready (%d roles)\n", len(catalog.Keys()))

	// Initialize Qdrant profile index
	profileIndex, err := services.NewProfileIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}
	if err := profileIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize services
	analyzer := analysis.NewAnalyzer(analysis.NewTextExtractor(), embedder, catalog)
	mailerService := services.NewMailerService(cfg.SMTP, notificationRepo)
	exportService := services.NewExportService()

	analysisService := services.NewAnalysisService(
		jobRepo,
		resultRepo,
		appRepo,
		analyzer,
		embedder,
		profileIndex,
		mailerService,
		cfg.Analysis.Timeout,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize and start worker
	worker := services.NewWorker(
		jobRepo,
		analysisService,
		cfg.Worker.Concurrency,
		cfg.Worker.PollInterval,
	)
	worker.Start(ctx)

	// Initialize handlers
	authMiddleware := handlers.NewAuthMiddleware(userRepo)
	applicationHandler := handlers.NewApplicationHandler(
		appRepo,
		userRepo,
		resultRepo,
		storageService,
		mailerService,
		exportService,
		profileIndex,
		cfg.Storage.MaxFileSize,
	)
	analysisHandler := handlers.NewAnalysisHandler(
		appRepo,
		jobRepo,
		resultRepo,
		profileIndex,
		worker,
	)
	userHandler := handlers.NewUserHandler(notificationRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SmartRecruit API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 2,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-API-Token",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	handlers.RegisterRoutes(api, authMiddleware, applicationHandler, analysisHandler, userHandler)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "SmartRecruit API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/applications",
				"GET /api/v1/applications",
				"POST /api/v1/applications/:id/analyze",
				"GET /api/v1/applications/:id/analysis",
				"GET /api/v1/analysis/jobs/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
