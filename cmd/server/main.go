package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "training-portal-backend/internal/api/http"
	"training-portal-backend/internal/config"
	"training-portal-backend/internal/logger"
	"training-portal-backend/internal/repository/postgres"
	"training-portal-backend/internal/security"
	"training-portal-backend/internal/service"
	"training-portal-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Training Portal Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authenticator := httpapi.NewAuthenticator(tokenManager)

	// Initialize Storage Service
	var objectStorage storage.ObjectStorage
	localFilesDir := ""
	switch cfg.Storage.Type {
	case "", "local":
		logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
		localStorage, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		objectStorage = localStorage
		localFilesDir = localStorage.Dir()
	case "gcs":
		logger.Info("Using GCS storage", "bucket", cfg.Storage.Bucket)
		gcsStorage, err := storage.NewGCSStorage(context.Background(), cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize GCS storage", "error", err)
			log.Fatalf("Failed to initialize GCS storage: %v", err)
		}
		objectStorage = gcsStorage
	default:
		log.Fatalf("Storage type '%s' not supported", cfg.Storage.Type)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email)
	trainingSvc := service.NewTrainingService(
		store.TrainingRepository,
		store.ParticipantRepository,
		store.PartnerRepository,
		emailSvc,
		service.WorkflowPolicy{StrictTransitions: cfg.Workflow.StrictTransitions},
	)
	verificationSvc := service.NewVerificationService(store.ParticipantRepository, store.TrainingRepository)
	partnerSvc := service.NewPartnerService(store.PartnerRepository, store.UserRepository, emailSvc)
	authSvc := service.NewAuthService(store.UserRepository, store.PartnerRepository, tokenManager)
	analyticsSvc := service.NewAnalyticsService(store.AnalyticsRepository)

	// Build HTTP router
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Trainings:     trainingSvc,
		Partners:      partnerSvc,
		Auth:          authSvc,
		Verification:  verificationSvc,
		Analytics:     analyticsSvc,
		Storage:       objectStorage,
		Authenticator: authenticator,
		UploadFolder:  cfg.Storage.DefaultFolder,
		MaxFileSizeMB: int(cfg.Storage.MaxFileSizeMB),
		LocalFilesDir: localFilesDir,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
