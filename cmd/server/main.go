package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"feedhub/api"
	"feedhub/auth"
	"feedhub/federation"
	"feedhub/log"
	"feedhub/observability"
	"feedhub/repositories"
	"feedhub/search"
	"feedhub/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Feed server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (database close, index
// flush) executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := log.NewFromString(config.Domain, config.LogLevel)

	// 2. Databases (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Repositories, federation, services
	stats := observability.NewStats()

	userRepository := repositories.NewUserRepository(db)
	feedRepository := repositories.NewFeedRepository(db, config.Domain, userRepository, logger)
	subRepository := repositories.NewSubscriptionRepository(db, userRepository, logger)
	index := search.NewIndex(blugeWriter, logger)
	gate := auth.NewGate(userRepository)

	table, err := federation.ParseDomainTable(config.Domains)
	if err != nil {
		return exitConfig, fmt.Errorf("domain table: %w", err)
	}
	resolver, err := federation.NewStaticResolver(table)
	if err != nil {
		return exitConfig, fmt.Errorf("domain table: %w", err)
	}
	remote := federation.NewClient(resolver, config.FederationTimeout, stats, logger)

	feedService := services.NewFeedService(
		config.Domain, feedRepository, subRepository, userRepository,
		gate, remote, index, logger,
	)
	userService := services.NewUserService(
		config.Domain, userRepository, feedRepository, subRepository,
		gate, logger,
	)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. HTTP server
	handle := api.NewHandle(feedService, userService, stats, config.SearchLimit, logger)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{
		Addr:    address,
		Handler: handle.Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting feed server", "domain", config.Domain, "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down gracefully...")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown error: %w", err)
	}
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
