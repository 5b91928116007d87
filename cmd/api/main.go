package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/campusfest/campus-events-backend/internal/config"
	"github.com/campusfest/campus-events-backend/internal/handler"
	"github.com/campusfest/campus-events-backend/internal/middleware"
	"github.com/campusfest/campus-events-backend/internal/models"
	"github.com/campusfest/campus-events-backend/internal/repository"
	"github.com/campusfest/campus-events-backend/internal/service"
	"github.com/campusfest/campus-events-backend/pkg/database"
	"github.com/campusfest/campus-events-backend/pkg/email"
	"github.com/campusfest/campus-events-backend/pkg/logger"
	"github.com/campusfest/campus-events-backend/pkg/storage"
	"github.com/campusfest/campus-events-backend/pkg/utils"
)

func main() {
	// Load .env when present; real deployments set the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Database
	db := database.NewDatabase(cfg)

	// Image storage
	var store storage.StorageService
	switch cfg.Storage.Driver {
	case "s3":
		store, err = storage.NewS3Storage(cfg.Storage.S3)
		if err != nil {
			zapLogger.Fatal("failed to initialize S3 storage", zap.Error(err))
		}
	default:
		store, err = storage.NewLocalStorage(cfg.Storage.UploadDir)
		if err != nil {
			zapLogger.Fatal("failed to initialize local storage", zap.Error(err))
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	regRepo := repository.NewRegistrationRepository(db)

	// Email service
	emailService := email.NewEmailService(cfg.Email, zapLogger)

	// Services
	authService := service.NewAuthService(userRepo, emailService, cfg.OrganizerCode)
	eventService := service.NewEventService(eventRepo, regRepo, store, cfg.OrganizerDashboardAllEvents)
	regService := service.NewRegistrationService(regRepo, eventRepo, userRepo, emailService)
	exportService := service.NewExportService(regRepo)

	// Validator
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	regHandler := handler.NewRegistrationHandler(regService)
	exportHandler := handler.NewExportHandler(exportService, eventService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	auth := middleware.AuthMiddleware()
	organizerOnly := middleware.RequireRole(models.RoleOrganizer)
	participantOnly := middleware.RequireRole(models.RoleParticipant)

	// Public routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(models.SuccessResponse(nil, "Campus Events API"))
	})
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)

	// Session routes
	app.Post("/logout", auth, authHandler.Logout)
	app.Get("/me", auth, authHandler.Me)

	// Organizer routes
	app.Get("/dashboard/organizer", auth, organizerOnly, eventHandler.OrganizerDashboard)
	app.Post("/dashboard/organizer", auth, organizerOnly, eventHandler.CreateEvent)
	app.Get("/event/edit/:eventID", auth, organizerOnly, eventHandler.EditEventForm)
	app.Post("/event/edit/:eventID", auth, organizerOnly, eventHandler.UpdateEvent)
	app.Post("/event/delete/:eventID", auth, organizerOnly, eventHandler.DeleteEvent)
	app.Get("/participants/:eventID", auth, organizerOnly, exportHandler.ViewParticipants)
	app.Get("/download_participants/:eventID", auth, organizerOnly, exportHandler.DownloadParticipants)

	// Participant routes
	app.Get("/dashboard/student", auth, participantOnly, regHandler.StudentDashboard)
	app.Post("/register/:eventID", auth, participantOnly, regHandler.Register)
	app.Post("/unregister/:eventID", auth, participantOnly, regHandler.Unregister)

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
