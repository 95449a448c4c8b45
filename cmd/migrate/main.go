package main

import (
	"github.com/ubudab109/number-discussion/internal/config" // Custom import path (Config)
	"github.com/ubudab109/number-discussion/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run schema migration against MySQL
}
