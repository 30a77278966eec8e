package parser

import "github.com/ukaji3/finsheet-go/pkg/finsheet/models"

// Assemble zips axis labels with values by position.
// The result always has len(axis) records; missing values are 0.
func Assemble(axis PeriodAxis, values []float64) models.Series {
	series := make(models.Series, len(axis))
	for i, period := range axis {
		var v float64
		if i < len(values) {
			v = values[i]
		}
		series[i] = models.Record{Period: period, Value: v}
	}
	return series
}

// positiveOnly drops records whose value is zero or negative.
func positiveOnly(series models.Series) models.Series {
	kept := make(models.Series, 0, len(series))
	for _, r := range series {
		if r.Value > 0 {
			kept = append(kept, r)
		}
	}
	return kept
}
