package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kindwall/auth"
	"kindwall/classifier"
	httpserver "kindwall/infrastructure/http/server"
	"kindwall/internal"
	"kindwall/moderation"
	"kindwall/observability"
	"kindwall/ratelimit"
	"kindwall/repositories"
	"kindwall/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because
// it ensures all 'defer' statements (like database cleanup) run before the
// program exits, and it decouples initialization from the entry point.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Components
	hasher := auth.NewHasher(config.IdentityHashSecret)
	verifier := auth.NewVerifier(config.JWTSecret)
	screener, err := moderation.NewScreener(config.Blocklist())
	if err != nil {
		return fmt.Errorf("blocklist build failed: %w", err)
	}
	limiter := ratelimit.NewLimiter(db, log, config.RateLimitMax, config.RateLimitWindow)
	gemini := classifier.NewGeminiClassifier(
		config.GeminiAPIKey, config.GeminiModel, config.GeminiBaseURL,
		config.ClassifierTimeout,
	)
	messageRepository := repositories.NewMessageRepository(db, log)
	monitor := observability.NewMonitor(log)

	gate := services.NewGateService(
		log, hasher, &screener, limiter, gemini, messageRepository,
		monitor, config.ClassifierTimeout,
	)
	board := services.NewBoardService(log, messageRepository)
	boardServer := httpserver.NewBoardServer(log, gate, board, messageRepository, verifier, monitor)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. HTTP Server
	mux := http.NewServeMux()
	mux.Handle("/", boardServer.Handler())
	mux.Handle("GET /debug/keys", internal.InspectHandler(db, log))

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	srv := &http.Server{
		Addr:    address,
		Handler: mux,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}
