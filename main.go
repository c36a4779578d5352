package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrewpaige1/flashcard-api/config"
	"github.com/andrewpaige1/flashcard-api/handlers"
	"github.com/andrewpaige1/flashcard-api/middleware"
	"github.com/andrewpaige1/flashcard-api/repositories"
	"github.com/andrewpaige1/flashcard-api/services"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func init() {
	config.LoadDotEnv()
}

func main() {
	flags := config.NewFlagSet("flashcard-api")
	if err := flags.Parse(os.Args[1:]); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connection
	db, err := config.Connect(cfg.DB, nil)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err), zap.String("driver", cfg.DB.Driver))
	}
	if cfg.DB.AutoMigrate {
		if err := config.Migrate(db); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	repo := repositories.NewFlashcardRepository(db)
	service := services.NewFlashcardService(repo, logger)
	flashcardHandler := handlers.NewFlashcardHandler(service, logger)
	mux := handlers.NewRouter(flashcardHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Requested-With", "Accept", "Origin", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         86400,
	}).Handler(mux)

	handler := middleware.RequestLogger(logger)(middleware.Recover(logger)(corsHandler))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Flashcard API server running", zap.String("addr", server.Addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
