package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/andrewpaige1/flashcard-api/models"
	"github.com/andrewpaige1/flashcard-api/repositories"
	"go.uber.org/zap"
)

//go:generate mockgen -source=flashcard_service.go -destination=mock/flashcard_store_mock.go

// FlashcardStore is the persistence the service relies on.
type FlashcardStore interface {
	ListByLevel(ctx context.Context, level string) ([]models.Flashcard, error)
	InsertBatch(ctx context.Context, level string, cards []models.FlashcardInput) ([]models.Flashcard, error)
	ExistsByKey(ctx context.Context, level, chinese string) (bool, error)
	CountByLevel(ctx context.Context, level string) (int64, error)
	DeleteByLevel(ctx context.Context, level string) (int64, error)
}

// AddResult is the outcome of a successful batch insert.
type AddResult struct {
	Added []models.Flashcard
	Total int64
}

type FlashcardService struct {
	store      FlashcardStore
	validator  *Validator
	duplicates *DuplicateChecker
	log        *zap.Logger
}

func NewFlashcardService(store FlashcardStore, log *zap.Logger) *FlashcardService {
	return &FlashcardService{
		store:      store,
		validator:  NewValidator(),
		duplicates: NewDuplicateChecker(store),
		log:        log,
	}
}

// List returns the flashcards of a level, or a NotFoundError when it has none.
func (s *FlashcardService) List(ctx context.Context, level string) ([]models.Flashcard, error) {
	flashcards, err := s.store.ListByLevel(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("list flashcards of %q: %w", level, err)
	}
	if len(flashcards) == 0 {
		return nil, &NotFoundError{Level: level}
	}
	return flashcards, nil
}

// Add validates every candidate, rejects natural-key duplicates and then
// inserts the whole batch atomically. Nothing is written unless every
// check passes.
func (s *FlashcardService) Add(ctx context.Context, level string, items []json.RawMessage) (*AddResult, error) {
	if err := s.validator.ValidateLevel(level); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &ValidationError{Message: "Request body must contain at least one flashcard"}
	}

	cards := make([]models.FlashcardInput, len(items))
	var details []string
	for i, item := range items {
		card, problems := s.validator.Validate(item)
		for _, p := range problems {
			details = append(details, fmt.Sprintf("Flashcard %d: %s", i+1, p))
		}
		cards[i] = card
	}
	if len(details) > 0 {
		return nil, &ValidationError{Message: "Validation failed", Details: details}
	}

	duplicates, err := s.duplicates.Check(ctx, level, cards)
	if err != nil {
		return nil, fmt.Errorf("check duplicates in %q: %w", level, err)
	}
	if len(duplicates) > 0 {
		return nil, &DuplicateError{Level: level, Duplicates: duplicates}
	}

	added, err := s.store.InsertBatch(ctx, level, cards)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, s.raceDuplicate(ctx, level, cards, err)
		}
		return nil, fmt.Errorf("insert flashcards into %q: %w", level, err)
	}

	total, err := s.store.CountByLevel(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("count flashcards of %q: %w", level, err)
	}

	s.log.Debug("flashcards added",
		zap.String("level", level),
		zap.Int("added", len(added)),
		zap.Int64("total", total),
	)

	return &AddResult{Added: added, Total: total}, nil
}

// raceDuplicate turns a unique-index violation caused by a concurrent
// writer into a DuplicateError naming the keys that now exist.
func (s *FlashcardService) raceDuplicate(ctx context.Context, level string, cards []models.FlashcardInput, cause error) error {
	s.log.Warn("unique index rejected batch after duplicate check",
		zap.String("level", level),
		zap.Error(cause),
	)
	duplicates, err := s.duplicates.Check(ctx, level, cards)
	if err != nil || len(duplicates) == 0 {
		return fmt.Errorf("insert flashcards into %q: %w", level, cause)
	}
	return &DuplicateError{Level: level, Duplicates: duplicates}
}

// Delete removes every flashcard of the level and returns how many were removed.
func (s *FlashcardService) Delete(ctx context.Context, level string) (int64, error) {
	deleted, err := s.store.DeleteByLevel(ctx, level)
	if err != nil {
		return 0, fmt.Errorf("delete flashcards of %q: %w", level, err)
	}
	if deleted == 0 {
		return 0, &NotFoundError{Level: level}
	}

	s.log.Info("level deleted", zap.String("level", level), zap.Int64("deleted", deleted))
	return deleted, nil
}
