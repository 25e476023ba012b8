package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"alpha-x/internal/database"
)

// ImporterService loads raw Google Form response exports (CSV with the
// original question headers) into the entries table, translating answers to
// canonical labels at this boundary.
type ImporterService struct {
	repository *database.Repository
}

func NewImporterService(repo *database.Repository) *ImporterService {
	return &ImporterService{repository: repo}
}

// ImportCSV reads the export at path and upserts one entry per row. Rows
// without a parseable timestamp are skipped; unknown headers are ignored.
// Returns the number of imported rows.
func (is *ImporterService) ImportCSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	// Column index -> canonical field, via the form header mapping.
	fields := make(map[int]database.Field)
	for i, name := range header {
		if field, ok := database.ColumnMapping[name]; ok {
			fields[i] = field
		}
	}
	if len(fields) == 0 {
		return 0, fmt.Errorf("no known columns in %s", path)
	}

	imported, skipped := 0, 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("reading row: %w", err)
		}

		raw := make(map[database.Field]string)
		for i, value := range row {
			if field, ok := fields[i]; ok {
				raw[field] = value
			}
		}

		rec := database.NormalizeRecord(raw)
		if rec.Timestamp.IsZero() {
			skipped++
			continue
		}
		if err := is.repository.SaveEntry(rec); err != nil {
			return imported, fmt.Errorf("saving entry for %s: %w", rec.Timestamp.Format("2006-01-02"), err)
		}
		imported++
	}

	if skipped > 0 {
		log.Printf("⚠️ Skipped %d rows without a usable timestamp", skipped)
	}
	log.Printf("✅ Imported %d entries from %s", imported, path)

	return imported, nil
}
