package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ndewijer/portfolio-draft-seeder/internal/config"
	"github.com/ndewijer/portfolio-draft-seeder/internal/draftsapi"
	"github.com/ndewijer/portfolio-draft-seeder/internal/generator"
	"github.com/ndewijer/portfolio-draft-seeder/internal/seeder"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags override the environment
	sc := &cfg.Seeder
	flag.StringVar(&sc.BaseURL, "base-url", sc.BaseURL, "base URL of the portfolio drafts API")
	flag.IntVar(&sc.Count, "count", sc.Count, "number of portfolio drafts to create")
	flag.StringVar(&sc.EmailDomain, "domain", sc.EmailDomain, "email domain for generated portfolio managers")
	flag.Int64Var(&sc.Seed, "seed", sc.Seed, "random seed for generated payloads (0 for a random seed)")
	flag.StringVar(&sc.Schedule, "schedule", sc.Schedule, "cron spec to seed repeatedly (empty runs once)")
	flag.Parse()

	if err := sc.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := draftsapi.NewClient(sc.BaseURL, sc.APIKey, sc.Timeout)
	gen := generator.New(sc.Seed, sc.EmailDomain)
	s := seeder.New(client, gen, sc.Count, os.Stdout)

	log.Printf("Seeding %d portfolio drafts at %s", sc.Count, client.DraftsURL())

	if sc.Schedule != "" {
		if err := s.Schedule(ctx, sc.Schedule); err != nil {
			log.Fatalf("Failed to schedule seeding: %v", err)
		}
		return
	}

	if _, err := s.Run(ctx); err != nil {
		//nolint:gocritic // exitAfterDefer: stop only releases the signal handler.
		log.Fatalf("Seeding failed: %v", err)
	}
}
