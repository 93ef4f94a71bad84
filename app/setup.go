package app

import (
	"fmt"
	"log"
	"os"

	"github.com/vaibhavkumar/portfolio-api/api"
	"github.com/vaibhavkumar/portfolio-api/config"
	"github.com/vaibhavkumar/portfolio-api/database"
	"github.com/vaibhavkumar/portfolio-api/router"
	"github.com/vaibhavkumar/portfolio-api/services/cron"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		return fmt.Errorf("failed to get GORM DB instance")
	}

	// Seed the settings singleton. Failure is logged, not fatal.
	if err := database.RunSeeds(db); err != nil {
		log.Printf("Warning: database seeding failed: %v", err)
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(db)
		if err := cronManager.Start(); err != nil {
			// Don't fail the app, just log the warning
			log.Printf("Warning: failed to start cron jobs: %v", err)
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes (security middleware is attached there)
	router.SetupRoutes(app, store)

	// Get the PORT & Start the Server
	return server.Run()
}
