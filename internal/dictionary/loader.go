package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// LoadLines reads a name list and returns its trimmed, non-empty lines in file order.
// Spreadsheets (.xlsx) are read from their first sheet, one line per row.
func LoadLines(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadSheetLines(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("failed to decode %s: %w", path, ErrInvalidUTF8)
	}
	return splitLines(string(data)), nil
}

// loadSheetLines joins the non-empty cells of each row with a single space, so a
// row spanning several columns reads like a multi-column paste.
func loadSheetLines(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in %s", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from %s: %w", path, err)
	}

	var out []string
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if !utf8.ValidString(cell) {
				return nil, fmt.Errorf("failed to decode %s: %w", path, ErrInvalidUTF8)
			}
			if c := strings.TrimSpace(cell); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) == 0 {
			continue
		}
		out = append(out, strings.Join(cells, " "))
	}
	return out, nil
}
