package models

// ParsedExcelData is the complete result of parsing one company workbook.
type ParsedExcelData struct {
	// Meta holds company-level scalar facts.
	Meta Meta `json:"meta" yaml:"meta"`
	// ProfitAndLoss is the annual profit and loss statement.
	ProfitAndLoss Statement `json:"profitAndLoss" yaml:"profitAndLoss"`
	// QuarterlyData is the quarterly results statement.
	QuarterlyData Statement `json:"quarterlyData" yaml:"quarterlyData"`
	// BalanceSheet is the annual balance sheet.
	BalanceSheet Statement `json:"balanceSheet" yaml:"balanceSheet"`
	// CashFlow is the annual cash flow statement.
	CashFlow Statement `json:"cashFlow" yaml:"cashFlow"`
	// PriceData is the annual share price series (positive values only).
	PriceData Series `json:"priceData" yaml:"priceData"`
	// SheetData contains the raw snapshot of the parsed sheet (omitted when disabled).
	SheetData []RawSheet `json:"sheetData,omitempty" yaml:"sheetData,omitempty"`
}
