package services

import (
	"database/sql"
	"strings"

	"github.com/avelez/quizbank-be/internal/models"
)

// QuestionServiceProvider defines the interface for question services.
type QuestionServiceProvider interface {
	GetQuestions(categories, difficulties []string) ([]models.Question, error)
	GetQuizConfig() (models.QuizConfig, error)
}

// QuestionService provides read access to the question bank.
type QuestionService struct {
	db *sql.DB
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(db *sql.DB) *QuestionService {
	return &QuestionService{db: db}
}

// placeholders builds a "?, ?, ?" list for an IN clause.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// GetQuestions returns every question matching the given filters. Each
// provided dimension restricts the result to the listed values; an empty
// slice imposes no restriction on that dimension. Result order follows
// the storage scan order and carries no guarantee.
func (s *QuestionService) GetQuestions(categories, difficulties []string) ([]models.Question, error) {
	query := "SELECT id, question, option_a, option_b, option_c, option_d, correct_answer, explanation, category, difficulty FROM questions"

	var conditions []string
	var args []interface{}
	if len(categories) > 0 {
		conditions = append(conditions, "category IN ("+placeholders(len(categories))+")")
		for _, c := range categories {
			args = append(args, c)
		}
	}
	if len(difficulties) > 0 {
		conditions = append(conditions, "difficulty IN ("+placeholders(len(difficulties))+")")
		for _, d := range difficulties {
			args = append(args, d)
		}
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		var optA, optB, optC, optD, explanation sql.NullString
		if err := rows.Scan(&q.ID, &q.Question, &optA, &optB, &optC, &optD, &q.CorrectAnswer, &explanation, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		q.OptionA = optA.String
		q.OptionB = optB.String
		q.OptionC = optC.String
		q.OptionD = optD.String
		q.Explanation = explanation.String
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetQuizConfig returns the distinct category and difficulty values present
// in the question bank, each value exactly once.
func (s *QuestionService) GetQuizConfig() (models.QuizConfig, error) {
	config := models.QuizConfig{
		Categories:   []string{},
		Difficulties: []string{},
	}

	rows, err := s.db.Query("SELECT DISTINCT category FROM questions")
	if err != nil {
		return config, err
	}
	defer rows.Close()
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return config, err
		}
		config.Categories = append(config.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return config, err
	}

	rows, err = s.db.Query("SELECT DISTINCT difficulty FROM questions")
	if err != nil {
		return config, err
	}
	defer rows.Close()
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return config, err
		}
		config.Difficulties = append(config.Difficulties, d)
	}
	return config, rows.Err()
}
