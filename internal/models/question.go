package models

// Question represents a single multiple-choice question from the bank.
// Questions are bulk-loaded by the seed command and read-only afterwards.
type Question struct {
	ID            int64  `json:"id"`
	Question      string `json:"question"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectAnswer string `json:"correctAnswer"` // "A", "B", "C" or "D"
	Explanation   string `json:"explanation"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
}

// QuestionOption is one labeled answer choice in an API response.
type QuestionOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// APIQuestion is the response shape for a question, with the options
// flattened into a labeled list.
type APIQuestion struct {
	ID            int64            `json:"id"`
	Question      string           `json:"question"`
	Options       []QuestionOption `json:"options"`
	CorrectAnswer string           `json:"correctAnswer"`
	Explanation   string           `json:"explanation"`
	Category      string           `json:"category"`
	Difficulty    string           `json:"difficulty"`
}

// ToAPI converts a question to its API shape. The options always appear
// in the fixed order A, B, C, D.
func (q Question) ToAPI() APIQuestion {
	return APIQuestion{
		ID:       q.ID,
		Question: q.Question,
		Options: []QuestionOption{
			{ID: "A", Text: q.OptionA},
			{ID: "B", Text: q.OptionB},
			{ID: "C", Text: q.OptionC},
			{ID: "D", Text: q.OptionD},
		},
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
	}
}

// QuizConfig lists the distinct category and difficulty values present in
// the question bank.
type QuizConfig struct {
	Categories   []string `json:"categories"`
	Difficulties []string `json:"difficulties"`
}
