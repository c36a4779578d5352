package models

// LevelSummary is the number of flashcards stored under one level
type LevelSummary struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}
