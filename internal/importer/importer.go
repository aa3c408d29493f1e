package importer

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/avelez/quizbank-be/internal/models"
)

// Result summarizes one import run.
type Result struct {
	Imported int
	Skipped  int
}

// columns required for a usable question; rows missing any are dropped.
var requiredColumns = []string{"category", "optionA", "optionB", "optionC", "optionD"}

// ImportCSV replaces the entire questions table with the rows of the given
// CSV file. The file carries a header row with the columns id, question,
// optionA-optionD, correctAnswer, explanation, category and difficulty.
// Rows missing a category or any option text are dropped. The reseed is
// destructive and atomic: prior contents are gone once the run commits.
func ImportCSV(db *sql.DB, r io.Reader) (Result, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read CSV header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range append([]string{"id", "question", "correctAnswer"}, requiredColumns...) {
		if _, ok := index[name]; !ok {
			return Result{}, fmt.Errorf("CSV is missing required column %q", name)
		}
	}

	field := func(record []string, name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	var questions []models.Question
	var skipped int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("failed to read CSV row: %w", err)
		}

		incomplete := false
		for _, name := range requiredColumns {
			if field(record, name) == "" {
				incomplete = true
				break
			}
		}
		if incomplete {
			skipped++
			continue
		}

		id, err := strconv.ParseInt(field(record, "id"), 10, 64)
		if err != nil {
			return Result{}, fmt.Errorf("invalid question id %q: %w", field(record, "id"), err)
		}

		questions = append(questions, models.Question{
			ID:            id,
			Question:      field(record, "question"),
			OptionA:       field(record, "optionA"),
			OptionB:       field(record, "optionB"),
			OptionC:       field(record, "optionC"),
			OptionD:       field(record, "optionD"),
			CorrectAnswer: field(record, "correctAnswer"),
			Explanation:   field(record, "explanation"),
			Category:      field(record, "category"),
			Difficulty:    field(record, "difficulty"),
		})
	}

	tx, err := db.Begin()
	if err != nil {
		return Result{}, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM questions"); err != nil {
		return Result{}, fmt.Errorf("failed to clear questions table: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO questions (id, question, option_a, option_b, option_c, option_d, correct_answer, explanation, category, difficulty) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return Result{}, err
	}
	defer stmt.Close()

	for _, q := range questions {
		if _, err := stmt.Exec(q.ID, q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.CorrectAnswer, q.Explanation, q.Category, q.Difficulty); err != nil {
			return Result{}, fmt.Errorf("failed to insert question %d: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Result{}, err
	}
	return Result{Imported: len(questions), Skipped: skipped}, nil
}
