package main

import (
	"order_system/internal/config" // Custom import path (Config)
	"order_system/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Run schema migration against the configured MySQL database
	db.Migrate(cfg.DSN())
}
