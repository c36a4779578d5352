package services

import (
	"context"

	"github.com/andrewpaige1/flashcard-api/models"
)

// KeyLookup reports whether a (level, chinese) natural key is already stored.
type KeyLookup interface {
	ExistsByKey(ctx context.Context, level, chinese string) (bool, error)
}

type DuplicateChecker struct {
	store KeyLookup
}

func NewDuplicateChecker(store KeyLookup) *DuplicateChecker {
	return &DuplicateChecker{store: store}
}

// Check returns the chinese values of cards that repeat inside the batch or
// already exist in the level. Each value appears once, in the order it was
// first seen. The store is queried once per distinct value.
func (d *DuplicateChecker) Check(ctx context.Context, level string, cards []models.FlashcardInput) ([]string, error) {
	seen := make(map[string]bool, len(cards))
	reported := make(map[string]bool)
	var duplicates []string

	report := func(key string) {
		if !reported[key] {
			reported[key] = true
			duplicates = append(duplicates, key)
		}
	}

	for _, card := range cards {
		key := card.Chinese
		if seen[key] {
			report(key)
			continue
		}
		seen[key] = true

		exists, err := d.store.ExistsByKey(ctx, level, key)
		if err != nil {
			return nil, err
		}
		if exists {
			report(key)
		}
	}

	return duplicates, nil
}
