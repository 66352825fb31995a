package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/megawatt-maniacs/backend/internal/config"
	"github.com/megawatt-maniacs/backend/internal/database"
	"github.com/megawatt-maniacs/backend/internal/logging"
	"github.com/megawatt-maniacs/backend/internal/services"
)

// Imports the authored trivia CSV (category, question, options block,
// correct answer line, source URL) into the question_bank table.
func main() {
	logging.Setup()

	file := flag.String("file", "", "path to the question list CSV")
	flag.Parse()

	if *file == "" {
		slog.Error("-file is required")
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		slog.Error("failed to open CSV", "file", *file, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		slog.Error("failed to parse CSV", "file", *file, "error", err)
		os.Exit(1)
	}

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	imported, err := services.NewBankService(database.DB).ImportRecords(records)
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}
	slog.Info("question bank import complete", "imported", imported, "parsed", len(records))
}

// readRecords parses the authoring CSV. The options and correct-answer
// columns contain quoted multi-line cells, which encoding/csv handles
// natively.
func readRecords(r io.Reader) ([]services.BankRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var records []services.BankRecord
	header := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		if len(row) < 5 {
			continue
		}
		records = append(records, services.BankRecord{
			Category:      row[0],
			Question:      row[1],
			AnswerOptions: row[2],
			CorrectAnswer: row[3],
			Source:        row[4],
		})
	}
	return records, nil
}
