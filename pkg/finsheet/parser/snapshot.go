package parser

import (
	"strings"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/finsheet-go/pkg/finsheet/models"
)

// Snapshot captures the non-blank rows of a sheet as a RawSheet.
// The returned rows are a deep copy and share no memory with rows.
// Range is computed from the cells themselves; stored dimension records are
// often stale in exported workbooks.
func Snapshot(sheetName string, rows [][]string) (models.RawSheet, error) {
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if !isBlankRow(row) {
			kept = append(kept, row)
		}
	}

	var copied [][]string
	if err := deepcopy.Copy(&copied, kept); err != nil {
		return models.RawSheet{}, err
	}
	if copied == nil {
		copied = [][]string{}
	}

	headers := []string{}
	if len(copied) > 0 {
		for _, cell := range copied[0] {
			headers = append(headers, strings.TrimSpace(cell))
		}
	}

	return models.RawSheet{
		SheetName: sheetName,
		Headers:   headers,
		Rows:      copied,
		Range:     usedRange(rows),
		TotalRows: len(copied),
	}, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
