package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/portfolio-draft-seeder/internal/api"
	"github.com/ndewijer/portfolio-draft-seeder/internal/config"
	"github.com/ndewijer/portfolio-draft-seeder/internal/database"
	"github.com/ndewijer/portfolio-draft-seeder/internal/metrics"
	"github.com/ndewijer/portfolio-draft-seeder/internal/repository"
	"github.com/ndewijer/portfolio-draft-seeder/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	m := metrics.New()
	systemService := service.NewSystemService(db)
	draftService := service.NewPortfolioDraftService(
		repository.NewPortfolioDraftRepository(db),
		m,
	)

	if cfg.Auth.InternalAPIKey == "" {
		log.Println("INTERNAL_API_KEY not set, write routes are unauthenticated")
	}

	router := api.NewRouter(systemService, draftService, m, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting stub drafts API on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}

	log.Println("Server exited")
}
