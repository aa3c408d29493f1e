package services

import (
	"database/sql"
	"sort"
	"testing"

	"github.com/avelez/quizbank-be/internal/models"
)

func seedQuestions(t *testing.T, db *sql.DB, questions []models.Question) {
	t.Helper()
	for _, q := range questions {
		_, err := db.Exec(
			"INSERT INTO questions (id, question, option_a, option_b, option_c, option_d, correct_answer, explanation, category, difficulty) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			q.ID, q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.CorrectAnswer, q.Explanation, q.Category, q.Difficulty,
		)
		if err != nil {
			t.Fatalf("Failed to seed question %d: %v", q.ID, err)
		}
	}
}

func testBank() []models.Question {
	return []models.Question{
		{ID: 1, Question: "Q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "A", Category: "Marketing", Difficulty: "Easy"},
		{ID: 2, Question: "Q2", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "B", Category: "Marketing", Difficulty: "Hard"},
		{ID: 3, Question: "Q3", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "C", Category: "Finance", Difficulty: "Easy"},
		{ID: 4, Question: "Q4", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "D", Category: "Hospitality", Difficulty: "Medium"},
	}
}

func questionIDs(questions []models.Question) []int64 {
	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestGetQuestionsFilters(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, testBank())
	svc := NewQuestionService(db)

	testCases := []struct {
		name         string
		categories   []string
		difficulties []string
		wantIDs      []int64
	}{
		{"no filters returns everything", nil, nil, []int64{1, 2, 3, 4}},
		{"single category", []string{"Marketing"}, nil, []int64{1, 2}},
		{"multiple categories", []string{"Marketing", "Finance"}, nil, []int64{1, 2, 3}},
		{"single difficulty", nil, []string{"Easy"}, []int64{1, 3}},
		{"category and difficulty conjunction", []string{"Marketing"}, []string{"Easy"}, []int64{1}},
		{"unknown category matches nothing", []string{"Bogus"}, nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			questions, err := svc.GetQuestions(tc.categories, tc.difficulties)
			if err != nil {
				t.Fatalf("GetQuestions failed: %v", err)
			}
			got := questionIDs(questions)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("Expected IDs %v, got %v", tc.wantIDs, got)
			}
			for i := range got {
				if got[i] != tc.wantIDs[i] {
					t.Fatalf("Expected IDs %v, got %v", tc.wantIDs, got)
				}
			}
		})
	}
}

func TestGetQuizConfigDistinctValues(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, testBank())
	svc := NewQuestionService(db)

	config, err := svc.GetQuizConfig()
	if err != nil {
		t.Fatalf("GetQuizConfig failed: %v", err)
	}

	sort.Strings(config.Categories)
	sort.Strings(config.Difficulties)

	wantCategories := []string{"Finance", "Hospitality", "Marketing"}
	if len(config.Categories) != len(wantCategories) {
		t.Fatalf("Expected categories %v, got %v", wantCategories, config.Categories)
	}
	for i := range wantCategories {
		if config.Categories[i] != wantCategories[i] {
			t.Fatalf("Expected categories %v, got %v", wantCategories, config.Categories)
		}
	}

	wantDifficulties := []string{"Easy", "Hard", "Medium"}
	if len(config.Difficulties) != len(wantDifficulties) {
		t.Fatalf("Expected difficulties %v, got %v", wantDifficulties, config.Difficulties)
	}
	for i := range wantDifficulties {
		if config.Difficulties[i] != wantDifficulties[i] {
			t.Fatalf("Expected difficulties %v, got %v", wantDifficulties, config.Difficulties)
		}
	}
}

func TestGetQuizConfigEmptyBank(t *testing.T) {
	svc := NewQuestionService(newTestDB(t))

	config, err := svc.GetQuizConfig()
	if err != nil {
		t.Fatalf("GetQuizConfig failed: %v", err)
	}
	if len(config.Categories) != 0 || len(config.Difficulties) != 0 {
		t.Errorf("Expected empty config, got %+v", config)
	}
}
