package main

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

	"github.com/lilhale/sitestore/pkg/config"
	"github.com/lilhale/sitestore/pkg/kv"
	"github.com/lilhale/sitestore/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Command line flags override environment configuration
	var (
		port     = flag.String("port", cfg.Port, "Server port")
		dataFile = flag.String("data-file", cfg.DataFile, "Bolt database file for persistence")
		secret   = flag.String("token-secret", cfg.TokenSecret, "Secret for signing session tokens")
		showHelp = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nsitestore is the content and admin-session backend for the Lil' Hale Learners site.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                   # Start with defaults\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 9090                        # Custom port\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -data-file /var/lib/sitestore.db  # Custom database location\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	log.Printf("INFO: Opening database: %s", *dataFile)
	kvStore, err := kv.NewBoltStore(*dataFile)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer kvStore.Close()

	srv, err := server.NewServer(kvStore, []byte(*secret))
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Hydrate or seed the content document
	srv.InitStore()

	// Create HTTP server
	httpServer := &http.Server{
		Addr:    ":" + *port,
		Handler: srv.Router(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting sitestore server on :%s", *port)
		log.Printf("API endpoints available at http://localhost:%s", *port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
