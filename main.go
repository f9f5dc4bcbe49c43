package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/M-N-Hossain/bookverse-backend/internal/config"
	"github.com/M-N-Hossain/bookverse-backend/internal/handlers"
	"github.com/M-N-Hossain/bookverse-backend/internal/middleware"
	"github.com/M-N-Hossain/bookverse-backend/internal/models"
	"github.com/M-N-Hossain/bookverse-backend/internal/repositories"
	"github.com/M-N-Hossain/bookverse-backend/internal/services"
	"github.com/M-N-Hossain/bookverse-backend/pkg/rabbitmq"
)

func main() {
	// Configuration is validated before anything else so a missing JWT
	// secret fails the process here instead of surfacing per request.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Genre{}, &models.Book{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Optional RabbitMQ event publisher ---
	// The API works without a broker; change events are simply skipped.
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	genreRepo := repositories.NewGORMGenreRepository(db)
	bookRepo := repositories.NewGORMBookRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	genreService := services.NewGenreService(genreRepo, events)
	bookService := services.NewBookService(bookRepo, genreRepo, events)

	if cfg.SeedData {
		seedData(genreService, bookService)
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	genreHandler := handlers.NewGenreHandler(genreService)
	bookHandler := handlers.NewBookHandler(bookService)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.NewErrorHandler(cfg.Production()),
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// --- API routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)

	protected := api.Group("", middleware.AuthRequired(authService))
	genreHandler.RegisterRoutes(protected)
	bookHandler.RegisterRoutes(protected)

	// --- Health check ---
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase connects to PostgreSQL when a DSN is configured and falls
// back to a local SQLite file otherwise. SQLite runs with foreign keys
// enabled so the books.genre_id constraint is enforced.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseDSN != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open("file:"+cfg.SQLitePath+"?_fk=1"), &gorm.Config{})
}

// seedData populates default genres and a few sample books. Creations that
// collide with existing rows are logged and skipped, so seeding is safe to
// re-run.
func seedData(genreService *services.GenreService, bookService *services.BookService) {
	genreNames := []string{
		"Fiction", "Non-Fiction", "Science Fiction", "Fantasy",
		"Mystery", "Biography", "History", "Self-Help",
	}
	genreIDs := make(map[string]string, len(genreNames))
	for _, name := range genreNames {
		genre, err := genreService.Create(name)
		if err != nil {
			log.Printf("Skipping seed genre %s: %v", name, err)
			continue
		}
		genreIDs[name] = genre.ID
		log.Printf("Seeded genre: %s (ID: %s)", genre.Name, genre.ID)
	}

	books := []struct {
		title, author, genre string
		status               models.BookStatus
	}{
		{"To Kill a Mockingbird", "Harper Lee", "Fiction", models.StatusRead},
		{"Sapiens", "Yuval Noah Harari", "Non-Fiction", models.StatusToRead},
		{"The Hobbit", "J.R.R. Tolkien", "Fantasy", models.StatusInProgress},
		{"Dune", "Frank Herbert", "Science Fiction", models.StatusToRead},
	}
	for _, b := range books {
		genreID, ok := genreIDs[b.genre]
		if !ok {
			continue
		}
		if _, err := bookService.Create(b.title, b.author, genreID, b.status, nil); err != nil {
			log.Printf("Skipping seed book %s: %v", b.title, err)
			continue
		}
		log.Printf("Seeded book: %s", b.title)
	}
}
