package config

import (
	"fmt"

	"github.com/andrewpaige1/flashcard-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database selected by cfg.Driver and applies the pool settings.
func Connect(cfg DBConfig, gormLogger logger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.URL)
	case "sqlite":
		dialector = sqlite.Open(cfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Migrate creates the flashcards table, its indexes and the trigger that
// keeps updated_at current on row updates.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Flashcard{}); err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}

	var statements []string
	switch db.Dialector.Name() {
	case "postgres":
		statements = postgresTrigger
	case "sqlite":
		statements = sqliteTrigger
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create updated_at trigger: %w", err)
		}
	}
	return nil
}

var postgresTrigger = []string{
	`CREATE OR REPLACE FUNCTION update_updated_at_column()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = CURRENT_TIMESTAMP;
		RETURN NEW;
	END;
	$$ language 'plpgsql'`,
	`DROP TRIGGER IF EXISTS update_flashcards_updated_at ON flashcards`,
	`CREATE TRIGGER update_flashcards_updated_at
		BEFORE UPDATE ON flashcards
		FOR EACH ROW EXECUTE FUNCTION update_updated_at_column()`,
}

// SQLite has no BEFORE UPDATE assignment, so the row is touched after the
// update unless the statement already changed updated_at itself.
var sqliteTrigger = []string{
	`CREATE TRIGGER IF NOT EXISTS update_flashcards_updated_at
		AFTER UPDATE ON flashcards
		FOR EACH ROW WHEN NEW.updated_at = OLD.updated_at
		BEGIN
			UPDATE flashcards SET updated_at = CURRENT_TIMESTAMP WHERE id = NEW.id;
		END`,
}
