package parser

import (
	"strings"

	"golang.org/x/text/width"
)

// StatementKind identifies one of the four financial statements.
type StatementKind int

const (
	StatementProfitLoss StatementKind = iota
	StatementQuarterly
	StatementBalanceSheet
	StatementCashFlow
)

func (k StatementKind) String() string {
	switch k {
	case StatementProfitLoss:
		return "profitAndLoss"
	case StatementQuarterly:
		return "quarterlyData"
	case StatementBalanceSheet:
		return "balanceSheet"
	case StatementCashFlow:
		return "cashFlow"
	default:
		return "unknown"
	}
}

// fieldDef maps a sheet row label to its canonical key.
type fieldDef struct {
	label string
	key   string
}

var profitLossFields = []fieldDef{
	{"Sales", "sales"},
	{"Raw Material Cost", "rawMaterialCost"},
	{"Change in Inventory", "changeInInventory"},
	{"Power and Fuel", "powerAndFuel"},
	{"Other Mfr. Exp", "otherMfrExp"},
	{"Employee Cost", "employeeCost"},
	{"Selling and admin", "sellingAndAdmin"},
	{"Other Expenses", "otherExpenses"},
	{"Other Income", "otherIncome"},
	{"Depreciation", "depreciation"},
	{"Interest", "interest"},
	{"Profit before tax", "profitBeforeTax"},
	{"Tax", "tax"},
	{"Net profit", "netProfit"},
	{"Dividend Amount", "dividendAmount"},
}

var quarterlyFields = []fieldDef{
	{"Sales", "sales"},
	{"Expenses", "expenses"},
	{"Other Income", "otherIncome"},
	{"Depreciation", "depreciation"},
	{"Interest", "interest"},
	{"Profit before tax", "profitBeforeTax"},
	{"Tax", "tax"},
	{"Net profit", "netProfit"},
	{"Operating Profit", "operatingProfit"},
}

var balanceSheetFields = []fieldDef{
	{"Equity Share Capital", "equityShareCapital"},
	{"Reserves", "reserves"},
	{"Borrowings", "borrowings"},
	{"Other Liabilities", "otherLiabilities"},
	{"Total", "total"},
	{"Net Block", "netBlock"},
	{"Capital Work in Progress", "capitalWorkInProgress"},
	{"Investments", "investments"},
	{"Other Assets", "otherAssets"},
	{"Receivables", "receivables"},
	{"Inventory", "inventory"},
	{"Cash & Bank", "cashAndBank"},
	{"No. of Equity Shares", "numberOfEquityShares"},
	{"New Bonus Shares", "newBonusShares"},
	{"Face value", "faceValue"},
	{"Adjusted Equity Shares in Cr", "adjustedEquityShares"},
}

var cashFlowFields = []fieldDef{
	{"Cash from Operating Activity", "cashFromOperatingActivity"},
	{"Cash from Investing Activity", "cashFromInvestingActivity"},
	{"Cash from Financing Activity", "cashFromFinancingActivity"},
	{"Net Cash Flow", "netCashFlow"},
}

// fieldTables is keyed by NormalizeLabel(label). Read-only after init.
var fieldTables = map[StatementKind]map[string]string{
	StatementProfitLoss:   buildTable(profitLossFields),
	StatementQuarterly:    buildTable(quarterlyFields),
	StatementBalanceSheet: buildTable(balanceSheetFields),
	StatementCashFlow:     buildTable(cashFlowFields),
}

func buildTable(defs []fieldDef) map[string]string {
	table := make(map[string]string, len(defs))
	for _, d := range defs {
		table[NormalizeLabel(d.label)] = d.key
	}
	return table
}

// NormalizeLabel folds full-width characters, trims the label and collapses
// internal whitespace runs to a single space. Case is preserved.
func NormalizeLabel(label string) string {
	return strings.Join(strings.Fields(width.Fold.String(label)), " ")
}

// LookupField returns the canonical key of a row label within a statement.
// Matching is exact after normalization.
func LookupField(kind StatementKind, label string) (string, bool) {
	key, ok := fieldTables[kind][NormalizeLabel(label)]
	return key, ok
}

// Fields returns the canonical keys of a statement in sheet order.
func Fields(kind StatementKind) []string {
	var defs []fieldDef
	switch kind {
	case StatementProfitLoss:
		defs = profitLossFields
	case StatementQuarterly:
		defs = quarterlyFields
	case StatementBalanceSheet:
		defs = balanceSheetFields
	case StatementCashFlow:
		defs = cashFlowFields
	}
	keys := make([]string, len(defs))
	for i, d := range defs {
		keys[i] = d.key
	}
	return keys
}
