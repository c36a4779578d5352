package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/andrewpaige1/flashcard-api/config"
	"github.com/andrewpaige1/flashcard-api/models"
	"github.com/andrewpaige1/flashcard-api/repositories"
	"github.com/andrewpaige1/flashcard-api/services"
	"go.uber.org/zap"
)

func main() {
	config.LoadDotEnv()

	flags := config.NewFlagSet("migrate")
	file := flags.String("file", "flashcards.json", "JSON file of {level: [flashcard]} to import")
	batchSize := flags.Int("batch-size", services.DefaultImportBatchSize, "flashcards inserted per batch")
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

	summaries, err := run(context.Background(), cfg, *file, *batchSize, logger)
	if err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}

	logger.Info("Migration completed successfully")
	for _, s := range summaries {
		logger.Info("Migration summary", zap.String("level", s.Level), zap.Int64("flashcards", s.Count))
	}
}

// run imports the file at path, creating the schema first when
// db.auto_migrate is set.
func run(ctx context.Context, cfg *config.Environment, path string, batchSize int, logger *zap.Logger) ([]models.LevelSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	levels, err := services.ReadLevels(f)
	if err != nil {
		return nil, err
	}

	db, err := config.Connect(cfg.DB, nil)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if cfg.DB.AutoMigrate {
		logger.Info("Creating database schema", zap.String("driver", cfg.DB.Driver))
		if err := config.Migrate(db); err != nil {
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	importer := services.NewImporter(repositories.NewFlashcardRepository(db), batchSize, logger)
	return importer.Import(ctx, levels)
}
