package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/andrewpaige1/flashcard-api/models"
	"github.com/andrewpaige1/flashcard-api/services"
	"go.uber.org/zap"
)

// maxBodyBytes caps the size of a POST body.
const maxBodyBytes = 1 << 20

type FlashcardHandler struct {
	Service *services.FlashcardService
	Log     *zap.Logger
}

func NewFlashcardHandler(service *services.FlashcardService, log *zap.Logger) *FlashcardHandler {
	return &FlashcardHandler{Service: service, Log: log}
}

// GetFlashcardsForLevel handles GET /flashcards/{level}
func (h *FlashcardHandler) GetFlashcardsForLevel(w http.ResponseWriter, r *http.Request) {
	level := r.PathValue("level")

	flashcards, err := h.Service.List(r.Context(), level)
	if err != nil {
		h.handleError(w, r, "Error fetching flashcards", err)
		return
	}

	writeJSON(w, http.StatusOK, flashcards)
}

type createFlashcardsResponse struct {
	Message string             `json:"message"`
	Total   int64              `json:"total"`
	Added   []models.Flashcard `json:"added"`
}

// CreateFlashcards handles POST /flashcards/{level}. The level is created
// implicitly by its first flashcard.
func (h *FlashcardHandler) CreateFlashcards(w http.ResponseWriter, r *http.Request) {
	level := r.PathValue("level")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read request body")
		return
	}

	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if body[0] != '[' {
		writeError(w, http.StatusBadRequest, "Request body must be an array of flashcards")
		return
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		writeError(w, http.StatusBadRequest, "Request body must be an array of flashcards")
		return
	}

	result, err := h.Service.Add(r.Context(), level, items)
	if err != nil {
		h.handleError(w, r, "Error adding flashcards", err)
		return
	}

	writeJSON(w, http.StatusCreated, createFlashcardsResponse{
		Message: fmt.Sprintf("Added %d flashcards to level '%s'", len(result.Added), level),
		Total:   result.Total,
		Added:   result.Added,
	})
}

type deleteFlashcardsResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
	Level        string `json:"level"`
}

// DeleteFlashcardsForLevel handles DELETE /flashcards/{level}
func (h *FlashcardHandler) DeleteFlashcardsForLevel(w http.ResponseWriter, r *http.Request) {
	level := r.PathValue("level")

	deleted, err := h.Service.Delete(r.Context(), level)
	if err != nil {
		h.handleError(w, r, "Error deleting flashcards", err)
		return
	}

	writeJSON(w, http.StatusOK, deleteFlashcardsResponse{
		Message:      fmt.Sprintf("Deleted all flashcards from level '%s'", level),
		DeletedCount: deleted,
		Level:        level,
	})
}
