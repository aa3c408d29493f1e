package models

import "time"

// attemptTimeFormat is the fixed timestamp layout used in API responses.
const attemptTimeFormat = "2006-01-02 15:04:05"

// QuizAttempt records one quiz submission by a user. Attempts are
// insert-only; they are never updated or deleted in-app.
type QuizAttempt struct {
	ID             string    `json:"id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Timestamp      time.Time `json:"timestamp"`
	UserID         string    `json:"userId"`
}

// APIQuizAttempt is the response shape for an attempt history entry.
type APIQuizAttempt struct {
	ID             string `json:"id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Timestamp      string `json:"timestamp"`
}

// ToAPI converts an attempt to its API shape with a formatted UTC timestamp.
func (a QuizAttempt) ToAPI() APIQuizAttempt {
	return APIQuizAttempt{
		ID:             a.ID,
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		Timestamp:      a.Timestamp.UTC().Format(attemptTimeFormat),
	}
}
