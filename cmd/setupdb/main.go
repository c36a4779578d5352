package main

import (
	"log"
	"os"

	"github.com/andrewpaige1/flashcard-api/config"
	"go.uber.org/zap"
)

func main() {
	config.LoadDotEnv()

	flags := config.NewFlagSet("setupdb")
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

	logger.Info("Setting up database schema", zap.String("driver", cfg.DB.Driver))

	db, err := config.Connect(cfg.DB, nil)
	if err != nil {
		logger.Fatal("Database setup failed", zap.Error(err))
	}

	if err := config.Migrate(db); err != nil {
		logger.Fatal("Database setup failed", zap.Error(err))
	}

	logger.Info("Database setup completed",
		zap.Strings("created", []string{"flashcards", "idx_flashcards_level", "idx_flashcards_level_chinese", "update_flashcards_updated_at"}),
	)
}
