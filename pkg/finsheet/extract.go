package finsheet

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/ukaji3/finsheet-go/pkg/finsheet/models"
	"github.com/ukaji3/finsheet-go/pkg/finsheet/parser"
	"github.com/xuri/excelize/v2"
)

// Parse extracts the financial data of one company workbook held in memory.
// Only an unreadable buffer or a missing sheet fail the parse; rows that cannot
// be used are skipped.
func Parse(buf []byte, opts Options) (*models.ParsedExcelData, error) {
	data, _, err := ParseWithReport(buf, opts)
	return data, err
}

// ParseFile reads a workbook from disk and parses it.
func ParseFile(path string, opts Options) (*models.ParsedExcelData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(buf, opts)
}

// ParseWithReport is Parse that also reports the rows it had to skip.
// Both xlsx and legacy xls workbooks are accepted.
func ParseWithReport(buf []byte, opts Options) (data *models.ParsedExcelData, report *models.Report, err error) {
	sheetName := opts.sheetName()
	defer func() {
		if r := recover(); r != nil {
			data, report = nil, nil
			err = unreadable(sheetName, StageScan, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	logger := opts.logger().With("sheet", sheetName)

	var rows [][]string
	if parser.IsXLS(buf) {
		rows, err = readXLS(buf, sheetName)
	} else {
		rows, err = readXLSX(buf, sheetName)
	}
	if err != nil {
		return nil, nil, err
	}

	data = newParsedExcelData()
	if opts.ShouldIncludeSheetData() {
		snapshot, err := parser.Snapshot(sheetName, rows)
		if err != nil {
			return nil, nil, &ExtractionError{SheetName: sheetName, Stage: StageSnapshot, Err: err}
		}
		data.SheetData = []models.RawSheet{snapshot}
	}

	agg := &aggregator{data: data, report: &models.Report{}, logger: logger}
	var state parser.State
	for i, row := range rows {
		next, act := parser.Transition(state, row)
		agg.apply(i+1, act)
		state = next
	}

	logger.Info("workbook parsed",
		"company", data.Meta.CompanyName,
		"rows", agg.report.RowsScanned,
		"series", agg.report.SeriesEmitted,
		"annual_periods", len(state.Annual),
		"quarterly_periods", len(state.Quarterly),
	)
	return data, agg.report, nil
}

// readXLSX returns the formatted rows of a sheet in an xlsx workbook.
func readXLSX(buf []byte, sheetName string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		return nil, unreadable(sheetName, StageOpen, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := parser.ReadRows(f, sheetName)
	if err != nil {
		return nil, unreadable(sheetName, StageRows, err)
	}
	return rows, nil
}

// readXLS returns the displayed rows of a sheet in a legacy xls workbook.
func readXLS(buf []byte, sheetName string) ([][]string, error) {
	book, err := parser.OpenXLS(buf)
	if err != nil {
		return nil, unreadable(sheetName, StageOpen, err)
	}
	defer book.ReleaseResources()

	if !parser.HasXLSSheet(book, sheetName) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := parser.ReadXLSRows(book, sheetName)
	if err != nil {
		return nil, unreadable(sheetName, StageRows, err)
	}
	return rows, nil
}

func newParsedExcelData() *models.ParsedExcelData {
	return &models.ParsedExcelData{
		ProfitAndLoss: models.NewStatement(parser.Fields(parser.StatementProfitLoss)),
		QuarterlyData: models.NewStatement(parser.Fields(parser.StatementQuarterly)),
		BalanceSheet:  models.NewStatement(parser.Fields(parser.StatementBalanceSheet)),
		CashFlow:      models.NewStatement(parser.Fields(parser.StatementCashFlow)),
		PriceData:     models.Series{},
	}
}

// aggregator applies state machine actions to the result.
type aggregator struct {
	data   *models.ParsedExcelData
	report *models.Report
	logger *slog.Logger
}

func (a *aggregator) apply(rowNum int, act parser.Action) {
	if act.Label != "" {
		a.report.RowsScanned++
	}

	switch act.Kind {
	case parser.ActionSetMeta:
		a.setMeta(act.Meta, act.Text)
	case parser.ActionSetAxis:
		a.logger.Debug("period axis recognized", "row", rowNum, "axis", act.Axis)
	case parser.ActionIgnoredHeader:
		a.report.IgnoredHeaders++
		a.logger.Debug("period axis already set", "row", rowNum, "axis", act.Axis)
	case parser.ActionEnterSection:
		a.logger.Debug("entered section", "row", rowNum, "section", act.Section)
	case parser.ActionIgnoredMarker:
		a.report.IgnoredMarkers = append(a.report.IgnoredMarkers, act.Label)
		a.logger.Debug("section marker out of order", "row", rowNum, "label", act.Label)
	case parser.ActionSetPrice:
		a.data.PriceData = act.Series
	case parser.ActionEmitSeries:
		a.statement(act.Statement)[act.Field] = act.Series
		a.report.SeriesEmitted++
	case parser.ActionSkipMalformed:
		a.report.MalformedRows++
		a.logger.Debug("row has no values", "row", rowNum, "label", act.Label)
	case parser.ActionSkipUnmapped:
		a.report.UnmappedLabels = append(a.report.UnmappedLabels, act.Label)
	}
}

func (a *aggregator) setMeta(field parser.MetaField, text string) {
	meta := &a.data.Meta
	switch field {
	case parser.MetaCompanyName:
		meta.CompanyName = text
	case parser.MetaFaceValue:
		meta.FaceValue = parser.ParseCell(text)
	case parser.MetaCurrentPrice:
		meta.CurrentPrice = parser.ParseCell(text)
	case parser.MetaMarketCapitalization:
		meta.MarketCapitalization = parser.ParseCell(text)
	case parser.MetaNumberOfShares:
		n := parser.ParseCell(text)
		meta.NumberOfShares = &n
	}
}

func (a *aggregator) statement(kind parser.StatementKind) models.Statement {
	switch kind {
	case parser.StatementQuarterly:
		return a.data.QuarterlyData
	case parser.StatementBalanceSheet:
		return a.data.BalanceSheet
	case parser.StatementCashFlow:
		return a.data.CashFlow
	default:
		return a.data.ProfitAndLoss
	}
}
