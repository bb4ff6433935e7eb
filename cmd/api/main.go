package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"driveyard/internal/adapter/api"
	"driveyard/internal/adapter/api/handler"
	apimiddleware "driveyard/internal/adapter/api/middleware"
	"driveyard/internal/adapter/api/router"
	"driveyard/internal/adapter/repository"
	"driveyard/internal/domain/service"
	"driveyard/internal/infrastructure/firebase"
	"driveyard/internal/infrastructure/genai"
	"driveyard/internal/infrastructure/mailer"
	"driveyard/internal/infrastructure/ratelimit"
	"driveyard/internal/infrastructure/storage"
	"driveyard/internal/usecase"
	"driveyard/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	var serviceAccountPath string

	// Service account from environment variable (production) or file (local)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	authClient := firebase.NewFirebaseAuthClient(fbAuth)

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	complaintRepo := repository.NewFirestoreComplaintRepository(firestoreClient)
	settingsRepo := repository.NewFirestoreContactSettingsRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	pathResolver := storage.NewPathResolver(cfg.StorageBucket)
	adCopyClient := genai.NewGeminiClient(cfg.GeminiApiKey, cfg.GeminiModel)

	var complaintMailer service.MailerService
	if cfg.SMTPHost != "" {
		complaintMailer = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	}

	listingUseCase := usecase.NewListingUseCase(listingRepo, storageClient, pathResolver, adCopyClient, cfg.MaxListingImages)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo)
	complaintUseCase := usecase.NewComplaintUseCase(complaintRepo, complaintMailer, cfg.ComplaintInbox)
	settingsUseCase := usecase.NewContactSettingsUseCase(settingsRepo)

	handler.Setup(listingUseCase, reviewUseCase, complaintUseCase, settingsUseCase)
	handler.SetupFileHandler(storageClient, fileMetadataRepo, listingUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	router.Setup(e, authMiddleware, adminMiddleware, limiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
