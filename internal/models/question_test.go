package models

import (
	"testing"
	"time"
)

func TestQuestionToAPIOptionOrder(t *testing.T) {
	q := Question{
		ID:            42,
		Question:      "Which pricing strategy sets a high initial price?",
		OptionA:       "Penetration",
		OptionB:       "Skimming",
		OptionC:       "Bundle",
		OptionD:       "Freemium",
		CorrectAnswer: "B",
		Explanation:   "Skimming starts high and lowers over time.",
		Category:      "Marketing",
		Difficulty:    "Medium",
	}

	api := q.ToAPI()

	if len(api.Options) != 4 {
		t.Fatalf("Expected exactly 4 options, got %d", len(api.Options))
	}

	expected := []QuestionOption{
		{ID: "A", Text: "Penetration"},
		{ID: "B", Text: "Skimming"},
		{ID: "C", Text: "Bundle"},
		{ID: "D", Text: "Freemium"},
	}
	for i, want := range expected {
		if api.Options[i] != want {
			t.Errorf("Option %d: expected %+v, got %+v", i, want, api.Options[i])
		}
	}

	if api.ID != 42 || api.CorrectAnswer != "B" || api.Category != "Marketing" || api.Difficulty != "Medium" {
		t.Errorf("Scalar fields not carried over: %+v", api)
	}
}

func TestQuizAttemptToAPITimestampFormat(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	attempt := QuizAttempt{
		ID:             "a-1",
		Score:          7,
		TotalQuestions: 10,
		Timestamp:      ts,
		UserID:         "u-1",
	}

	api := attempt.ToAPI()

	if api.Timestamp != "2026-03-14 09:26:53" {
		t.Errorf("Expected timestamp '2026-03-14 09:26:53', got %q", api.Timestamp)
	}
	if api.Score != 7 || api.TotalQuestions != 10 {
		t.Errorf("Expected score 7/10, got %d/%d", api.Score, api.TotalQuestions)
	}
}
