package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MiroBartanus/business-days-sk/internal/domain/models"
	"github.com/MiroBartanus/business-days-sk/internal/holiday"
)

// expectedHeaders enforces the column layout of custom holiday files.
// If the header doesn't match EXACTLY (order + count), the file is rejected.
var expectedHeaders = []string{
	"DenMesiac",
	"Nazov",
}

const utf8BOM = "\ufeff"

// parseFile opens, validates and parses one holiday file.
// It fails on:
//   - header not matching expected order/length
//   - any row whose date is not a real DD/MM day
//   - unrecoverable I/O errors
//
// Nothing is returned for a file with a bad row, so a broken file never
// persists half of its holidays.
func parseFile(ctx context.Context, path string) ([]models.CustomHoliday, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // checked explicitly for better messages

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	var out []models.CustomHoliday
	lineNumber := 1

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeaders) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		h, err := recordToHoliday(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		out = append(out, h)
	}

	return out, nil
}

// recordToHoliday converts one record (length already checked) into a
// models.CustomHoliday.
//
//	0 DenMesiac → Day, Month ("DD/MM", leading zeros optional)
//	1 Nazov     → Name (may be empty)
func recordToHoliday(rec []string) (models.CustomHoliday, error) {
	day, month, err := holiday.ParseDayMonth(rec[0])
	if err != nil {
		return models.CustomHoliday{}, err
	}
	return models.CustomHoliday{
		Day:   day,
		Month: int(month),
		Name:  strings.TrimSpace(rec[1]),
	}, nil
}
