package main

import (
	"log"

	"github.com/mealmuse/recipechat/backend/config"
	"github.com/mealmuse/recipechat/backend/internal/database"
)

// Applies the feedback schema to the configured database without starting
// the API server. Useful when the server runs without migration rights.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.StoreBackend != config.StoreBackendGorm {
		log.Fatalf("Store backend %q does not use a database, nothing to migrate", cfg.StoreBackend)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Println("All migrations applied successfully.")
}
