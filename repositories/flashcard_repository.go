package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrewpaige1/flashcard-api/models"
	"gorm.io/gorm"
)

// ErrDuplicateKey is matched by a StoreError caused by the (level, chinese)
// unique index.
var ErrDuplicateKey = errors.New("duplicate flashcard key")

// StoreError wraps any failure of the underlying database.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("flashcard store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool {
	return target == ErrDuplicateKey && errors.Is(e.Err, gorm.ErrDuplicatedKey)
}

// insertChunkSize bounds the number of rows per INSERT statement.
const insertChunkSize = 100

type FlashcardRepository struct {
	db *gorm.DB
}

func NewFlashcardRepository(db *gorm.DB) *FlashcardRepository {
	return &FlashcardRepository{db: db}
}

// ListByLevel returns every flashcard of the level ordered by id.
// The result is empty, never nil, when the level has no rows.
func (r *FlashcardRepository) ListByLevel(ctx context.Context, level string) ([]models.Flashcard, error) {
	flashcards := []models.Flashcard{}
	err := r.db.WithContext(ctx).
		Where("level = ?", level).
		Order("id asc").
		Find(&flashcards).Error
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return flashcards, nil
}

// InsertBatch stores all cards under the level in a single transaction and
// returns them with their generated ids and timestamps, in input order.
func (r *FlashcardRepository) InsertBatch(ctx context.Context, level string, cards []models.FlashcardInput) ([]models.Flashcard, error) {
	flashcards := make([]models.Flashcard, len(cards))
	for i, card := range cards {
		flashcards[i] = card.ToFlashcard(level)
	}
	if len(flashcards) == 0 {
		return flashcards, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&flashcards, insertChunkSize).Error
	})
	if err != nil {
		return nil, &StoreError{Op: "insert", Err: err}
	}
	return flashcards, nil
}

func (r *FlashcardRepository) ExistsByKey(ctx context.Context, level, chinese string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Flashcard{}).
		Where("level = ? AND chinese = ?", level, chinese).
		Count(&count).Error
	if err != nil {
		return false, &StoreError{Op: "exists", Err: err}
	}
	return count > 0, nil
}

func (r *FlashcardRepository) CountByLevel(ctx context.Context, level string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Flashcard{}).
		Where("level = ?", level).
		Count(&count).Error
	if err != nil {
		return 0, &StoreError{Op: "count", Err: err}
	}
	return count, nil
}

// DeleteByLevel removes the whole level in one statement and reports how
// many rows that statement deleted.
func (r *FlashcardRepository) DeleteByLevel(ctx context.Context, level string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("level = ?", level).
		Delete(&models.Flashcard{})
	if result.Error != nil {
		return 0, &StoreError{Op: "delete", Err: result.Error}
	}
	return result.RowsAffected, nil
}

// LevelSummaries counts the flashcards of every stored level.
func (r *FlashcardRepository) LevelSummaries(ctx context.Context) ([]models.LevelSummary, error) {
	summaries := []models.LevelSummary{}
	err := r.db.WithContext(ctx).
		Model(&models.Flashcard{}).
		Select("level, COUNT(*) AS count").
		Group("level").
		Order("level").
		Scan(&summaries).Error
	if err != nil {
		return nil, &StoreError{Op: "summarize", Err: err}
	}
	return summaries, nil
}
