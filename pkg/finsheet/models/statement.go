package models

// Statement maps a canonical field key (e.g. "sales", "netProfit") to its series.
type Statement map[string]Series

// NewStatement returns a statement holding an empty series for each key.
func NewStatement(keys []string) Statement {
	s := make(Statement, len(keys))
	for _, k := range keys {
		s[k] = Series{}
	}
	return s
}

// Populated returns the number of fields with at least one record.
func (s Statement) Populated() int {
	n := 0
	for _, series := range s {
		if len(series) > 0 {
			n++
		}
	}
	return n
}
