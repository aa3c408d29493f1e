package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS questions (
		id INTEGER NOT NULL PRIMARY KEY,
		question TEXT NOT NULL,
		option_a TEXT,
		option_b TEXT,
		option_c TEXT,
		option_d TEXT,
		correct_answer TEXT NOT NULL, -- one of A, B, C, D
		explanation TEXT,
		category TEXT NOT NULL,
		difficulty TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS quiz_attempts (
		id TEXT NOT NULL PRIMARY KEY,
		score INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		timestamp DATETIME NOT NULL,
		user_id TEXT NOT NULL REFERENCES users(id)
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
