package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Rejzi-dich/RytonStore/internal/api"
	"github.com/Rejzi-dich/RytonStore/internal/auth"
	"github.com/Rejzi-dich/RytonStore/internal/catalog"
	"github.com/Rejzi-dich/RytonStore/internal/config"
	"github.com/Rejzi-dich/RytonStore/internal/gh"
	"github.com/Rejzi-dich/RytonStore/internal/ownership"
	"github.com/Rejzi-dich/RytonStore/internal/storage"
	"github.com/Rejzi-dich/RytonStore/internal/storage/jsonfile"
	"github.com/Rejzi-dich/RytonStore/internal/storage/postgres"
	"github.com/Rejzi-dich/RytonStore/internal/storage/sqlite"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize storage
	var store storage.Store
	switch cfg.StorageType {
	case "postgres":
		store, err = postgres.NewPostgresStorage(cfg.PostgresURL)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL storage: %v", err)
		}
	case "sqlite":
		store, err = sqlite.NewSQLiteStorage(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite storage: %v", err)
		}
	default:
		store = jsonfile.NewJSONFileStore(cfg.StorePath)
	}
	defer store.Close()

	// Wire the catalog service
	github := gh.NewClient(cfg.GitHubToken)
	verifier := ownership.NewVerifier(github)
	svc := catalog.NewService(store, github, verifier)

	// Sessions and login flow
	sessions := auth.NewSessionCodec(cfg.SessionSecret)
	oauth := auth.NewOAuthFlow(cfg, github)

	// Setup routes
	handler := api.NewHandler(svc, github, oauth, sessions)
	router := api.SetupRoutes(handler, sessions)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	fmt.Printf("Starting RytonStore server on %s\n", addr)
	fmt.Printf("Storage type: %s\n", cfg.StorageType)

	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
