// Command seed replaces the question bank with the contents of a CSV file.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/avelez/quizbank-be/internal/config"
	"github.com/avelez/quizbank-be/internal/database"
	"github.com/avelez/quizbank-be/internal/importer"
	"github.com/avelez/quizbank-be/internal/logger"
)

func main() {
	csvPath := flag.String("csv", "questions.csv", "path to the questions CSV file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.Environment)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("csv", *csvPath).Msg("Failed to open CSV file")
	}
	defer f.Close()

	result, err := importer.ImportCSV(db, f)
	if err != nil {
		log.Fatal().Err(err).Msg("Import failed")
	}

	log.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Str("database", cfg.DatabasePath).
		Msg("Database has been seeded")
}
