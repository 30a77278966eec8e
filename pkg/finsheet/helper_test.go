package finsheet

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// vendorRows is a workbook in the vendor "Data Sheet" layout.
var vendorRows = [][]any{
	{"COMPANY NAME", "Acme Industries Ltd"},
	{},
	{"META"},
	{"Number of shares", "1250000"},
	{"Face Value", "10"},
	{"Current Price", "245.5"},
	{"Market Capitalization", "30,687.5"},
	{},
	{"PROFIT & LOSS"},
	{"Report Date", "Mar-20", "Mar-21", "Mar-22"},
	{" Sales ", "100", "-", "150"},
	{"Raw Material Cost", "40", "45", "50"},
	{"Miscellaneous Notes", "1", "2", "3"},
	{"Net profit", "10", "N/A", "20"},
	{"Dividend Amount"},
	{},
	{"Quarters"},
	{"Report Date", "Mar-23", "Jun-23", "Sep-23", "Dec-23"},
	{"Sales", "30", "32", "—", "35"},
	{"Operating Profit", "5", "6", "7", "8"},
	{},
	{"BALANCE SHEET"},
	{"Report Date", "Mar-20", "Mar-21", "Mar-22"},
	{"Equity Share Capital", "10", "10", "10"},
	{"Face value", "10", "10", "10"},
	{},
	{"CASH FLOW:"},
	{"Report Date", "Mar-20", "Mar-21", "Mar-22"},
	{"Cash from Operating Activity", "12", "(3)", "1,234.5"},
	{"Net Cash Flow", "1", "2", "3"},
	{},
	{"PRICE:", "120", "0", "180"},
	{},
	{"DERIVED:"},
	{"Adjusted Equity Shares in Cr", "1.25", "1.25", "1.25"},
}

// buildWorkbook writes rows into a sheet of a new workbook and returns the xlsx bytes.
func buildWorkbook(t *testing.T, sheet string, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}
