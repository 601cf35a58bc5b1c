package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/websharper-samples/PeopleAPI/internal/config"
	"github.com/websharper-samples/PeopleAPI/internal/events"
	"github.com/websharper-samples/PeopleAPI/internal/people"
	"github.com/websharper-samples/PeopleAPI/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// 1. Load configuration from environment variables.
	cfg := config.Load()
	log.Printf("config: listen=%s rate_limit_rps=%d rate_limit_burst=%d",
		cfg.ListenAddr, cfg.RateLimitRPS, cfg.RateLimitBurst)

	// 2. Create the in-memory store with its initial people, and the
	// broker that fans change events out to WebSocket subscribers.
	store := people.NewSeededStore()
	broker := events.NewBroker()
	log.Printf("store seeded with %d people", store.Len())

	// 3. Set up the chi router with all handlers.
	handler := server.New(cfg, store, broker)

	// 4. Start the HTTP server.
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      0, // no write timeout to keep event feeds open
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("peopleapi listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}

	log.Println("peopleapi stopped")
}
