package main

// @title Store Uptime Report API
// @version 1.0
// @description Service computing per-store business-hours uptime reports from status polls
// @host localhost:8080
// @BasePath /api

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"store-uptime/internal/application"
	"store-uptime/internal/infrastructure/sqlite"
	"store-uptime/internal/interfaces/background"
	httpserver "store-uptime/internal/interfaces/http"

	_ "store-uptime/docs" // Swagger docs
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	// Optional .env for local development; flags still win
	_ = godotenv.Load()

	// Parse flags
	addr := flag.String("addr", envOr("ADDR", ":8080"), "HTTP server address")
	dbPath := flag.String("db", envOr("DB_PATH", "uptime.db"), "SQLite database path")
	defaultTZ := flag.String("default-tz", envOr("DEFAULT_TZ", application.DefaultTimezone), "Fallback store timezone")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("Store Uptime Report Service\n")
		fmt.Printf("  Version:    %s\n", Version)
		fmt.Printf("  Commit:     %s\n", Commit)
		fmt.Printf("  Build time: %s\n", BuildTime)
		os.Exit(0)
	}

	log.Printf("Starting Store Uptime Report Service v%s (commit: %s)", Version, Commit)

	// Initialize database
	db, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	statusRepo := sqlite.NewStoreStatusRepo(db)
	tzRepo := sqlite.NewTimezoneRepo(db)
	hoursRepo := sqlite.NewBusinessHoursRepo(db)
	reportRepo := sqlite.NewReportRepo(db)

	// Initialize services
	uptimeService := application.NewUptimeService(statusRepo, tzRepo, hoursRepo)
	uptimeService.SetDefaultTimezone(*defaultTZ)

	reportService := application.NewReportService(reportRepo, uptimeService)

	// Initialize report worker and wire it as the generation runner
	reportWorker := background.NewReportWorker(reportService)
	reportService.SetRunner(reportWorker)

	// A run interrupted by a previous crash would leave the sentinel stuck
	// in running; release it before serving.
	if err := reportRepo.FinishGeneration(context.Background()); err != nil {
		log.Fatalf("Failed to reset generation state: %v", err)
	}

	// Initialize HTTP server
	server := httpserver.NewServer(reportService)

	// Start report worker
	ctx, cancel := context.WithCancel(context.Background())
	reportWorker.Start(ctx)

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         *addr,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in goroutine
	go func() {
		log.Printf("HTTP server listening on %s", *addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	// Stop report worker
	cancel()
	reportWorker.Stop()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
