// Package parser implements the row-level pieces of the financial workbook engine:
// cell values, period headers, field labels, the section state machine and the
// raw sheet snapshot.
package parser

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/width"
)

// ReadRows returns the formatted text of every row in a sheet.
// Rows keep their sheet position; blank rows come back as empty slices.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// numberPrefix matches the leading number of a formatted cell ("12%", "12.5 Cr").
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseCell converts one formatted cell into a number.
// Trailing text after the number is ignored. Placeholder cells (blank, dashes,
// N/A) and text without a leading number yield 0, so a series built from a row
// always keeps one value per period.
func ParseCell(raw string) float64 {
	s := strings.TrimSpace(width.Fold.String(raw))
	if IsPlaceholder(s) {
		return 0
	}

	// Accounting negatives: (1,234)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	s = numberPrefix.FindString(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	if negative {
		d = d.Neg()
	}
	f, _ := d.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// IsPlaceholder reports whether a cell means "not reported".
func IsPlaceholder(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") {
		return true
	}
	for _, r := range s {
		if !isDash(r) {
			return false
		}
	}
	return true
}

func isDash(r rune) bool {
	return unicode.Is(unicode.Pd, r) || r == '−' // minus sign
}

// cellAt returns the cell at index i, or "" past the end of a short row.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// rowValues parses the n value cells following the label cell.
func rowValues(row []string, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = ParseCell(cellAt(row, i+1))
	}
	return values
}

// hasValues reports whether any of the n value cells after the label is populated.
func hasValues(row []string, n int) bool {
	for i := 1; i <= n; i++ {
		if strings.TrimSpace(cellAt(row, i)) != "" {
			return true
		}
	}
	return false
}
