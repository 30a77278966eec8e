package parser

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/yamitzky/xlrd-go/xlrd"
)

// xlsDateLayout renders date cells the way the vendor formats period headers ("Mar-21").
const xlsDateLayout = "Jan-06"

// IsXLS reports whether buf holds a legacy BIFF (.xls) workbook.
func IsXLS(buf []byte) bool {
	format, err := xlrd.InspectFormat("", buf)
	return err == nil && format == "xls"
}

// OpenXLS opens a legacy workbook held in memory.
func OpenXLS(buf []byte) (*xlrd.Book, error) {
	return xlrd.OpenWorkbook("-", &xlrd.OpenWorkbookOptions{
		FileContents:   buf,
		FormattingInfo: true,
	})
}

// HasXLSSheet reports whether the workbook has a sheet with the given name.
func HasXLSSheet(book *xlrd.Book, sheetName string) bool {
	return slices.Contains(book.SheetNames(), sheetName)
}

// ReadXLSRows returns the displayed text of every row in a legacy sheet,
// shaped like ReadRows: trailing empty cells and rows are dropped.
func ReadXLSRows(book *xlrd.Book, sheetName string) ([][]string, error) {
	sheet, err := book.SheetByName(sheetName)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, sheet.NRows)
	for rowx := 0; rowx < sheet.NRows; rowx++ {
		row := make([]string, sheet.NCols)
		for colx := range row {
			row[colx] = xlsCellText(book, sheet.CellType(rowx, colx), sheet.CellValue(rowx, colx), sheet.CellXFIndex(rowx, colx))
		}
		rows = append(rows, trimTrailing(row))
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// xlsCellText converts a BIFF cell into the text a spreadsheet would display.
func xlsCellText(book *xlrd.Book, ctype int, value any, xfIndex int) string {
	switch ctype {
	case xlrd.XL_CELL_EMPTY, xlrd.XL_CELL_BLANK:
		return ""
	case xlrd.XL_CELL_TEXT:
		return fmt.Sprint(value)
	case xlrd.XL_CELL_NUMBER, xlrd.XL_CELL_DATE:
		v, ok := xlsFloat(value)
		if !ok {
			return fmt.Sprint(value)
		}
		if ctype == xlrd.XL_CELL_DATE || isXLSDate(book, xfIndex) {
			if text, ok := xlsDate(v, book.Datemode); ok {
				return text
			}
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case xlrd.XL_CELL_BOOLEAN:
		if b, ok := value.(bool); ok {
			return strings.ToUpper(strconv.FormatBool(b))
		}
		if n, ok := value.(int); ok {
			return strings.ToUpper(strconv.FormatBool(n != 0))
		}
		return fmt.Sprint(value)
	case xlrd.XL_CELL_ERROR:
		if code, ok := value.(byte); ok {
			if text, ok := xlrd.ErrorTextFromCode[code]; ok {
				return text
			}
		}
		return "#ERROR"
	default:
		if value == nil {
			return ""
		}
		return fmt.Sprint(value)
	}
}

func xlsFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// builtinDateFormats are the BIFF format keys that display dates.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true,
	22: true, 27: true, 30: true, 36: true, 50: true, 57: true, 58: true,
}

func isXLSDate(book *xlrd.Book, xfIndex int) bool {
	if xfIndex < 0 || xfIndex >= len(book.XFList) {
		return false
	}
	key := book.XFList[xfIndex].FormatKey
	if builtinDateFormats[key] {
		return true
	}
	format := book.FormatMap[key]
	if format == nil || format.FormatString == "" {
		return false
	}
	return xlrd.IsDateFormatString(book, format.FormatString)
}

func xlsDate(v float64, datemode int) (string, bool) {
	if v < 1 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	t, err := xlrd.XldateAsDatetime(v, datemode)
	if err != nil {
		return "", false
	}
	return t.Format(xlsDateLayout), true
}

func trimTrailing(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return row[:end]
}
