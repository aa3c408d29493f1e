package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avelez/quizbank-be/internal/auth"
	"github.com/avelez/quizbank-be/internal/models"
	"github.com/avelez/quizbank-be/internal/services"
)

// AttemptHandler handles HTTP requests for quiz attempt history.
type AttemptHandler struct {
	service services.AttemptServiceProvider
}

// NewAttemptHandler creates a new AttemptHandler.
func NewAttemptHandler(service services.AttemptServiceProvider) *AttemptHandler {
	return &AttemptHandler{service: service}
}

// SubmitPayload defines the structure for quiz submissions. Pointers
// distinguish an absent field from a legitimate zero.
type SubmitPayload struct {
	Score          *int `json:"score"`
	TotalQuestions *int `json:"totalQuestions"`
}

// Submit records one quiz attempt for the authenticated user. Scores are
// stored as submitted; no range check against totalQuestions is applied.
func (h *AttemptHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "User not logged in")
		return
	}

	var payload SubmitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Score == nil || payload.TotalQuestions == nil {
		respondMessage(w, http.StatusBadRequest, "Missing score or total questions")
		return
	}

	if _, err := h.service.RecordAttempt(claims.UserID, *payload.Score, *payload.TotalQuestions); err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to save quiz attempt")
		respondMessage(w, http.StatusInternalServerError, "Failed to save quiz attempt")
		return
	}

	respondMessage(w, http.StatusCreated, "Quiz attempt saved successfully")
}

// History returns the authenticated user's attempts, newest first. Only
// the session user's rows are ever visible.
func (h *AttemptHandler) History(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "User not logged in")
		return
	}

	attempts, err := h.service.GetUserAttempts(claims.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to load quiz attempts")
		respondMessage(w, http.StatusInternalServerError, "Failed to load quiz attempts")
		return
	}

	result := make([]models.APIQuizAttempt, 0, len(attempts))
	for _, attempt := range attempts {
		result = append(result, attempt.ToAPI())
	}
	respondJSON(w, http.StatusOK, result)
}
