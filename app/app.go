package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"coaxdirect/app/controller"
	"coaxdirect/app/router"
	"coaxdirect/catalog"
	"coaxdirect/db"
	"coaxdirect/pricing"
	"coaxdirect/repository"
	"coaxdirect/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Load the catalog snapshot: CMS when configured, built-in fallback
	// otherwise or when the CMS comes back empty. One engine, one code path.
	var source catalog.Source
	if cmsURL := os.Getenv("CMS_API_URL"); cmsURL != "" {
		source = service.NewCMSService(cmsURL)
	} else {
		log.Printf("⚠️  CMS_API_URL not set, using built-in catalog")
		source = catalog.NewStaticSource()
	}

	snapshot, err := source.FetchSnapshot(context.Background())
	if err != nil || snapshot.Empty() {
		log.Printf("⚠️  Catalog source unavailable (err=%v), falling back to built-in catalog", err)
		snapshot = catalog.StaticSnapshot()
	}

	lookup := catalog.BuildLookup(snapshot)
	engine := pricing.NewEngine(lookup)

	// Repositories
	quoteRequestRepo := repository.NewQuoteRequestRepository()
	newsletterRepo := repository.NewNewsletterRepository()
	catalogAssetRepo := repository.NewCatalogAssetRepository()

	// Drive-backed asset sync is optional; the customizer works without it
	var driveService service.DriveServiceInterface
	var syncService service.SyncServiceInterface
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		ds, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return err
		}
		driveService = ds
		syncService = service.NewSyncService(ds, catalogAssetRepo)
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, catalog asset sync disabled")
	}

	// Image cache for optimized catalog imagery
	if err := service.EnsureCacheDir(); err != nil {
		return err
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	pdfService := service.NewQuotePDFService(baseURL)

	// Create controllers
	controllers := &router.Controllers{
		Customizer:   controller.NewCustomizerController(lookup, engine),
		QuoteRequest: controller.NewQuoteRequestController(quoteRequestRepo),
		Newsletter:   controller.NewNewsletterController(newsletterRepo),
		CatalogAsset: controller.NewCatalogAssetController(syncService, driveService, catalogAssetRepo),
		Quote:        controller.NewQuoteController(lookup, engine, pdfService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
