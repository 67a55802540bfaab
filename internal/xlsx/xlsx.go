// Package xlsx bridges spreadsheet exports into the text-based parsing
// engine by flattening the first worksheet to delimited lines.
package xlsx

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ToDelimited converts the first sheet of an XLSX workbook into
// comma-delimited text. Cell values come out as their displayed strings, so
// the result goes through the same detection pipeline as a CSV upload.
func ToDelimited(r io.Reader) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("reading sheet: %w", err)
	}

	var sb strings.Builder

	w := csv.NewWriter(&sb)

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
