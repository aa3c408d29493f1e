package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/avelez/quizbank-be/internal/models"
)

// AttemptServiceProvider defines the interface for quiz attempt services.
type AttemptServiceProvider interface {
	RecordAttempt(userID string, score, totalQuestions int) (models.QuizAttempt, error)
	GetUserAttempts(userID string) ([]models.QuizAttempt, error)
}

// AttemptService provides business logic for quiz attempt history.
type AttemptService struct {
	db *sql.DB
}

// NewAttemptService creates a new AttemptService.
func NewAttemptService(db *sql.DB) *AttemptService {
	return &AttemptService{db: db}
}

// RecordAttempt stores one quiz submission for a user with a
// server-assigned UTC timestamp.
func (s *AttemptService) RecordAttempt(userID string, score, totalQuestions int) (models.QuizAttempt, error) {
	attempt := models.QuizAttempt{
		ID:             uuid.New().String(),
		Score:          score,
		TotalQuestions: totalQuestions,
		Timestamp:      time.Now().UTC(),
		UserID:         userID,
	}

	stmt, err := s.db.Prepare("INSERT INTO quiz_attempts (id, score, total_questions, timestamp, user_id) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return models.QuizAttempt{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(attempt.ID, attempt.Score, attempt.TotalQuestions, attempt.Timestamp, attempt.UserID)
	if err != nil {
		return models.QuizAttempt{}, err
	}
	return attempt, nil
}

// GetUserAttempts retrieves all attempts belonging to one user, most
// recent first. A user can never see another user's attempts.
func (s *AttemptService) GetUserAttempts(userID string) ([]models.QuizAttempt, error) {
	rows, err := s.db.Query("SELECT id, score, total_questions, timestamp, user_id FROM quiz_attempts WHERE user_id = ? ORDER BY timestamp DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []models.QuizAttempt
	for rows.Next() {
		var attempt models.QuizAttempt
		if err := rows.Scan(&attempt.ID, &attempt.Score, &attempt.TotalQuestions, &attempt.Timestamp, &attempt.UserID); err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, rows.Err()
}
