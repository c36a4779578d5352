package handlers

import "net/http"

// NewRouter registers every route of the API
func NewRouter(h *FlashcardHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", Root)
	mux.HandleFunc("GET /health", Health)

	// Flashcards
	mux.HandleFunc("GET /flashcards/{level}", h.GetFlashcardsForLevel)
	mux.HandleFunc("POST /flashcards/{level}", h.CreateFlashcards)
	mux.HandleFunc("DELETE /flashcards/{level}", h.DeleteFlashcardsForLevel)

	return mux
}
