package models

// RawSheet is an audit snapshot of the sheet the statements were read from.
type RawSheet struct {
	// SheetName is the name of the captured sheet.
	SheetName string `json:"sheetName" yaml:"sheetName"`
	// Headers is the first non-empty row with each cell trimmed.
	Headers []string `json:"headers" yaml:"headers"`
	// Rows contains every row with at least one non-blank cell, as formatted text.
	Rows [][]string `json:"rows" yaml:"rows"`
	// Range is the used cell range of the sheet (e.g. "A1:K90").
	Range string `json:"range" yaml:"range"`
	// TotalRows is the number of entries in Rows.
	TotalRows int `json:"totalRows" yaml:"totalRows"`
}
