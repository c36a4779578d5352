package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/andrewpaige1/flashcard-api/models"
	"github.com/andrewpaige1/flashcard-api/utils"
	"go.uber.org/zap"
)

// DefaultImportBatchSize bounds the rows written per InsertBatch call.
const DefaultImportBatchSize = 50

// ImportStore is what a bulk import needs from the store.
type ImportStore interface {
	InsertBatch(ctx context.Context, level string, cards []models.FlashcardInput) ([]models.Flashcard, error)
	LevelSummaries(ctx context.Context) ([]models.LevelSummary, error)
}

// Importer loads a {level: [flashcard]} document into the store.
type Importer struct {
	store     ImportStore
	validator *Validator
	batchSize int
	log       *zap.Logger
}

func NewImporter(store ImportStore, batchSize int, log *zap.Logger) *Importer {
	if batchSize <= 0 {
		batchSize = DefaultImportBatchSize
	}
	return &Importer{store: store, validator: NewValidator(), batchSize: batchSize, log: log}
}

// ReadLevels decodes the JSON import document.
func ReadLevels(r io.Reader) (map[string][]models.FlashcardInput, error) {
	var levels map[string][]models.FlashcardInput
	if err := json.NewDecoder(r).Decode(&levels); err != nil {
		return nil, fmt.Errorf("decode flashcards file: %w", err)
	}
	return levels, nil
}

// Import inserts every level in sorted order, batchSize cards at a time,
// and returns the per-level counts stored afterwards. Nothing is written
// unless every level and card is valid. Each batch is atomic; batches
// already written stay written when a later one fails.
func (im *Importer) Import(ctx context.Context, levels map[string][]models.FlashcardInput) ([]models.LevelSummary, error) {
	names := make([]string, 0, len(levels))
	for level := range levels {
		names = append(names, level)
	}
	slices.Sort(names)

	for _, level := range names {
		if err := im.check(level, levels[level]); err != nil {
			return nil, err
		}
	}

	im.log.Info("Starting migration", zap.Int("levels", len(names)))

	for _, level := range names {
		cards := levels[level]
		im.log.Info("Migrating level", zap.String("level", level), zap.Int("flashcards", len(cards)))

		for i, batch := range utils.Chunk(cards, im.batchSize) {
			if _, err := im.store.InsertBatch(ctx, level, batch); err != nil {
				return nil, fmt.Errorf("migrate batch %d of level %q: %w", i+1, level, err)
			}
			im.log.Info("Migrated batch", zap.String("level", level), zap.Int("batch", i+1), zap.Int("size", len(batch)))
		}
	}

	summaries, err := im.store.LevelSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize levels: %w", err)
	}
	return summaries, nil
}

// check stops at the first invalid card of a level.
func (im *Importer) check(level string, cards []models.FlashcardInput) error {
	if err := im.validator.ValidateLevel(level); err != nil {
		return fmt.Errorf("invalid level %q: %w", level, err)
	}
	for i, card := range cards {
		if problems := im.validator.ValidateInput(card); len(problems) > 0 {
			return &ValidationError{
				Message: fmt.Sprintf("invalid flashcard %d of level %q", i+1, level),
				Details: problems,
			}
		}
	}
	return nil
}
