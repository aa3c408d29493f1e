package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/avelez/quizbank-be/internal/models"
	"github.com/avelez/quizbank-be/internal/services"
)

// QuestionHandler handles HTTP requests for the question bank.
type QuestionHandler struct {
	service services.QuestionServiceProvider
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(service services.QuestionServiceProvider) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// splitParam turns a comma-separated query value into a filter list. An
// absent parameter means no restriction, not "match nothing".
func splitParam(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

// List returns every question matching the categories/difficulties filters,
// the full set in one response.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	categories := splitParam(r.URL.Query().Get("categories"))
	difficulties := splitParam(r.URL.Query().Get("difficulties"))

	questions, err := h.service.GetQuestions(categories, difficulties)
	if err != nil {
		log.Error().Err(err).Msg("Failed to query questions")
		respondMessage(w, http.StatusInternalServerError, "Failed to load questions")
		return
	}

	result := make([]models.APIQuestion, 0, len(questions))
	for _, q := range questions {
		result = append(result, q.ToAPI())
	}
	respondJSON(w, http.StatusOK, result)
}

// Config returns the distinct categories and difficulties in the bank.
func (h *QuestionHandler) Config(w http.ResponseWriter, r *http.Request) {
	config, err := h.service.GetQuizConfig()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load quiz config")
		respondMessage(w, http.StatusInternalServerError, "Failed to load quiz config")
		return
	}
	respondJSON(w, http.StatusOK, config)
}
