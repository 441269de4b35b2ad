package app

import (
	"context"
	"fmt"
	"log"

	"flexiquote/app/controller"
	"flexiquote/app/router"
	"flexiquote/config"
	"flexiquote/db"
	"flexiquote/pricing"
	"flexiquote/repository"
	"flexiquote/service"
)

// Initialize initializes the application
func Initialize(cfg *config.Config) error {
	// Initialize database connection
	if err := db.InitDB(cfg.PostgresCfg); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	ctx := context.Background()
	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	if cfg.SeedFile != "" {
		seeded, err := db.Seed(ctx, cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		if seeded {
			log.Printf("✓ Seeded catalogue from %s", cfg.SeedFile)
		}
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository()
	ruleRepo := repository.NewRuleRepository()
	quoteRepo := repository.NewQuoteRepository()

	// Initialize Drive service only when export is configured
	var driveService service.DriveServiceInterface
	if cfg.DriveEnabled() {
		ds, err := service.NewDriveService(cfg.DriveCfg.CredentialsPath)
		if err != nil {
			return err
		}
		driveService = ds
	} else {
		log.Printf("⚠️  Drive export disabled: set GOOGLE_APPLICATION_CREDENTIALS and QUOTE_EXPORT_FOLDER_ID to enable it")
	}

	// Initialize services
	engine := pricing.NewEngine(ruleRepo)
	quoteService := service.NewQuoteService(productRepo, ruleRepo, quoteRepo, engine)
	documentService := service.NewQuoteDocumentService(
		quoteRepo,
		productRepo,
		driveService,
		cfg.DriveCfg.ExportFolderID,
		cfg.BaseURL,
		cfg.ChromePath,
		cfg.LogoPath,
	)

	// Create controllers
	controllers := &router.Controllers{
		Quote:    controller.NewQuoteController(quoteService),
		Document: controller.NewDocumentController(documentService),
		Rule:     controller.NewRuleController(quoteService),
		Product:  controller.NewProductController(quoteService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
