package models

import "time"

// Flashcard represents a single vocabulary card stored under a level
type Flashcard struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Level      string `gorm:"not null;size:10;index:idx_flashcards_level;uniqueIndex:idx_flashcards_level_chinese,priority:1" json:"-"`
	Chinese    string `gorm:"not null;type:text;uniqueIndex:idx_flashcards_level_chinese,priority:2" json:"chinese"`
	Pinyin     string `gorm:"not null;type:text" json:"pinyin"`
	Vietnamese string `gorm:"not null;type:text" json:"vietnamese"`
	Example    string `gorm:"not null;type:text" json:"example"`
	ExampleVi  string `gorm:"not null;type:text" json:"example_vi"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FlashcardInput is the client-supplied content of a flashcard
type FlashcardInput struct {
	Chinese    string `json:"chinese" validate:"required"`
	Pinyin     string `json:"pinyin" validate:"required"`
	Vietnamese string `json:"vietnamese" validate:"required"`
	Example    string `json:"example" validate:"required"`
	ExampleVi  string `json:"example_vi" validate:"required"`
}

// ToFlashcard attaches the input to a level
func (in FlashcardInput) ToFlashcard(level string) Flashcard {
	return Flashcard{
		Level:      level,
		Chinese:    in.Chinese,
		Pinyin:     in.Pinyin,
		Vietnamese: in.Vietnamese,
		Example:    in.Example,
		ExampleVi:  in.ExampleVi,
	}
}
