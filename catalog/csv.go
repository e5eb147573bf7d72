package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"nyaay-backend/models"
)

// Column order of the statute dataset file.
const numColumns = 7

// LoadCSV reads the statute dataset from a CSV file with columns
// URL, Description, Offense, Punishment, Cognizable, Bailable, Court.
// A missing file degrades to an empty catalog rather than failing startup.
// Malformed rows are skipped individually.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("statute dataset not found, starting with empty catalog", "path", path)
			return Empty(), nil
		}
		return nil, fmt.Errorf("failed to open statute dataset: %w", err)
	}
	defer f.Close()

	return readCSV(f)
}

func readCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row validation handled below

	var entries []models.StatuteEntry
	skipped := 0
	first := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip the malformed row, keep scanning the rest.
			skipped++
			continue
		}

		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(record[0]), "URL") {
				continue // header row
			}
		}

		if len(record) < numColumns {
			skipped++
			continue
		}

		entries = append(entries, models.StatuteEntry{
			URL:         strings.TrimSpace(record[0]),
			Description: strings.TrimSpace(record[1]),
			Offense:     strings.TrimSpace(record[2]),
			Punishment:  strings.TrimSpace(record[3]),
			Cognizable:  strings.TrimSpace(record[4]),
			Bailable:    strings.TrimSpace(record[5]),
			Court:       strings.TrimSpace(record[6]),
		})
	}

	if skipped > 0 {
		slog.Warn("skipped malformed statute rows", "count", skipped)
	}

	return New(entries), nil
}
