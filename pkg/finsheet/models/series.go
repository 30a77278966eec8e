// Package models defines the structured financial data extracted from a workbook.
package models

// Record is a single observation of a field in one period.
type Record struct {
	// Period is the axis label the value belongs to (e.g. "Mar-21", "Jun-23").
	Period string `json:"period" yaml:"period"`
	// Value is the reported figure; unreported cells are stored as 0.
	Value float64 `json:"value" yaml:"value"`
}

// Series is an ordered list of records aligned with a period axis.
type Series []Record

// Periods returns the period labels of the series in order.
func (s Series) Periods() []string {
	periods := make([]string, len(s))
	for i, r := range s {
		periods[i] = r.Period
	}
	return periods
}

// Values returns the values of the series in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, r := range s {
		values[i] = r.Value
	}
	return values
}
