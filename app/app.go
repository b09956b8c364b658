package app

import (
	"fmt"
	"log"
	"os"

	"stonedepot-catalog/app/controller"
	"stonedepot-catalog/app/router"
	"stonedepot-catalog/db"
	"stonedepot-catalog/repository"
	"stonedepot-catalog/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Make sure the image cache exists before anything tries to write to it
	if err := service.EnsureCacheDir(); err != nil {
		return err
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Get credentials path from environment variable
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}

	// Initialize Drive service
	driveService, err := service.NewDriveService(credentialsPath)
	if err != nil {
		return err
	}

	// Initialize repository and image sync
	productRepo := repository.NewProductRepository()
	syncService := service.NewSyncService(driveService, productRepo)

	// Catalog generation pipeline
	fetcher := service.NewImageFetcher(baseURL)
	catalogService := service.NewCatalogService(fetcher)

	// Mail delivery is optional; without SMTP config only the download path
	// is available.
	var mailService service.MailServiceInterface
	if ms, err := service.NewMailServiceFromEnv(); err != nil {
		log.Printf("⚠️  Email delivery disabled: %v", err)
	} else {
		mailService = ms
	}

	// Create controllers
	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(catalogService, mailService),
		Product: controller.NewProductController(productRepo, syncService, driveService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
