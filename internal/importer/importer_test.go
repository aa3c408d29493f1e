package importer

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avelez/quizbank-be/internal/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

const header = "id,question,optionA,optionB,optionC,optionD,correctAnswer,explanation,category,difficulty\n"

func TestImportCSVDropsIncompleteRows(t *testing.T) {
	db := newTestDB(t)

	csvData := header +
		"1,Q1,a,b,c,d,A,why,Marketing,Easy\n" +
		"2,Q2,a,b,c,,B,why,Marketing,Easy\n" + // missing optionD
		"3,Q3,a,b,c,d,C,why,,Easy\n" + // missing category
		"4,Q4,a,b,c,d,D,why,Finance,Hard\n"

	result, err := ImportCSV(db, strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("Expected 2 imported rows, got %d", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("Expected 2 skipped rows, got %d", result.Skipped)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM questions").Scan(&n); err != nil {
		t.Fatalf("Failed to count questions: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 stored questions, got %d", n)
	}
}

func TestImportCSVReplacesExistingBank(t *testing.T) {
	db := newTestDB(t)

	first := header + "1,Old,a,b,c,d,A,why,Marketing,Easy\n"
	if _, err := ImportCSV(db, strings.NewReader(first)); err != nil {
		t.Fatalf("First import failed: %v", err)
	}

	second := header + "7,New,a,b,c,d,B,why,Finance,Hard\n"
	if _, err := ImportCSV(db, strings.NewReader(second)); err != nil {
		t.Fatalf("Second import failed: %v", err)
	}

	rows, err := db.Query("SELECT id, question FROM questions")
	if err != nil {
		t.Fatalf("Failed to query questions: %v", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int64
		var question string
		if err := rows.Scan(&id, &question); err != nil {
			t.Fatalf("Failed to scan question: %v", err)
		}
		if id != 7 || question != "New" {
			t.Errorf("Expected only the reseeded question (7, New), got (%d, %s)", id, question)
		}
		count++
	}
	if count != 1 {
		t.Errorf("Expected the reseed to fully replace the bank, got %d rows", count)
	}
}

func TestImportCSVMissingColumn(t *testing.T) {
	db := newTestDB(t)

	csvData := "id,question,optionA,optionB,optionC,optionD,correctAnswer,explanation,difficulty\n" +
		"1,Q1,a,b,c,d,A,why,Easy\n"

	if _, err := ImportCSV(db, strings.NewReader(csvData)); err == nil {
		t.Error("Expected import without a category column to fail")
	}
}

func TestImportCSVBadRowLeavesBankUntouched(t *testing.T) {
	db := newTestDB(t)

	first := header + "1,Keep,a,b,c,d,A,why,Marketing,Easy\n"
	if _, err := ImportCSV(db, strings.NewReader(first)); err != nil {
		t.Fatalf("First import failed: %v", err)
	}

	// Non-numeric id aborts the run before the transaction commits.
	bad := header + "oops,Q,a,b,c,d,A,why,Marketing,Easy\n"
	if _, err := ImportCSV(db, strings.NewReader(bad)); err == nil {
		t.Fatal("Expected import with a bad id to fail")
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM questions").Scan(&n); err != nil {
		t.Fatalf("Failed to count questions: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected prior bank to survive a failed import, got %d rows", n)
	}
}
