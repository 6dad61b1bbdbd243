package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-agenda-server/config"
	deliveryHttp "clinic-agenda-server/internal/delivery/http"
	"clinic-agenda-server/internal/delivery/http/handler"
	"clinic-agenda-server/internal/delivery/http/middleware"
	domainRepository "clinic-agenda-server/internal/domain/repository"
	"clinic-agenda-server/internal/infrastructure/genai"
	"clinic-agenda-server/internal/repository"
	"clinic-agenda-server/internal/service"
	"clinic-agenda-server/internal/usecase"
	"clinic-agenda-server/pkg/jwt"
	"clinic-agenda-server/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Seed the in-memory snapshot store. All state lives here and is
	// lost on restart.
	snapRepo := repository.NewMemorySnapshotRepository(repository.SeedSnapshot(time.Now()))
	logrus.Info("In-memory store seeded")

	// Initialize all layers
	server := initializeServer(cfg, snapRepo)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, snapRepo domainRepository.SnapshotRepository) *http.Server {
	// Initialize JWT service and token registry
	jwtService := jwt.NewJWTService(cfg.JWT)
	tokenRegistry := service.NewTokenRegistry()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize outbound generative-AI client
	genAIClient := genai.NewClient(cfg.GenAI)
	suggestionService := service.NewSuggestionService(log, genAIClient)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, cfg.Auth, jwtService, tokenRegistry)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, snapRepo)
	patientUsecase := usecase.NewPatientUsecase(log, snapRepo)
	doctorUsecase := usecase.NewDoctorUsecase(log, snapRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(log, snapRepo)
	suggestionUsecase := usecase.NewSuggestionUsecase(log, doctorUsecase, suggestionService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	suggestionHandler := handler.NewSuggestionHandler(suggestionUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenRegistry)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		patientHandler,
		doctorHandler,
		dashboardHandler,
		suggestionHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server shutdown complete")
}
