// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/valorhub/tournament-services/shared/api"
	"github.com/valorhub/tournament-services/shared/config"
	tournamentapi "github.com/valorhub/tournament-services/tournament/api"
	"github.com/valorhub/tournament-services/tournament/service"
	"github.com/valorhub/tournament-services/tournament/store"
)

func main() {
	// --- 1. Load Configuration ---
	cfg, err := config.LoadTournamentServiceConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- 2. Initialize Data Store ---
	entityStore := store.New()
	if cfg.SeedData {
		entityStore.Seed(context.Background())
		log.Println("INFO: Seeded demo dataset.")
	}

	// --- 3. Initialize Business Logic Services ---
	tournamentService := service.NewTournamentService(entityStore)
	teamService := service.NewTeamService(entityStore)
	userService := service.NewUserService(entityStore)

	// --- 4. Initialize API Handlers ---
	handlers := tournamentapi.NewHandlers(tournamentService, teamService, userService, cfg.RequestTimeout)

	// --- 5. Setup HTTP Server and Register Routes ---
	baseServer := api.NewBaseServer(cfg.ListenAddr, log.Default())
	handlers.RegisterRoutes(baseServer.Router)

	// --- 6. Start HTTP Server ---
	go func() {
		if err := baseServer.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed to start: %v", err)
		}
	}()

	// --- 7. Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := baseServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server graceful shutdown failed: %v", err)
	}
	log.Println("Server gracefully stopped.")
}
