package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrewpaige1/flashcard-api/services"
	"github.com/andrewpaige1/flashcard-api/utils"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type duplicateResponse struct {
	Error      string   `json:"error"`
	Duplicates []string `json:"duplicates"`
	Message    string   `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps service errors onto status codes. Anything unclassified
// is logged and answered with a generic 500.
func (h *FlashcardHandler) handleError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var (
		validationErr *services.ValidationError
		duplicateErr  *services.DuplicateError
		notFoundErr   *services.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   validationErr.Message,
			Details: validationErr.Details,
		})
	case errors.As(err, &duplicateErr):
		writeJSON(w, http.StatusConflict, duplicateResponse{
			Error:      "Duplicate flashcards",
			Duplicates: duplicateErr.Duplicates,
			Message:    "Flashcards with these chinese values already exist in level '" + duplicateErr.Level + "' or repeat within the request",
		})
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Error())
	default:
		id, _ := utils.GetRequestID(r)
		h.Log.Error(msg,
			zap.Error(err),
			zap.String("request_id", id),
			zap.String("level", r.PathValue("level")),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
