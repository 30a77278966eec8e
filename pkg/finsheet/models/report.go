package models

// Report describes how completely a workbook was parsed.
// Rows counted here were skipped without failing the parse.
type Report struct {
	// RowsScanned is the number of rows with a non-empty first cell.
	RowsScanned int `json:"rowsScanned" yaml:"rowsScanned"`
	// SeriesEmitted is the number of statement rows converted into a series.
	SeriesEmitted int `json:"seriesEmitted" yaml:"seriesEmitted"`
	// MalformedRows counts labelled rows without any value inside the axis width.
	MalformedRows int `json:"malformedRows" yaml:"malformedRows"`
	// UnmappedLabels lists statement row labels with no canonical field, in sheet order.
	UnmappedLabels []string `json:"unmappedLabels,omitempty" yaml:"unmappedLabels,omitempty"`
	// IgnoredMarkers lists section markers that would have moved the scan backwards.
	IgnoredMarkers []string `json:"ignoredMarkers,omitempty" yaml:"ignoredMarkers,omitempty"`
	// IgnoredHeaders counts "Report Date" rows seen after their axis was already set.
	IgnoredHeaders int `json:"ignoredHeaders" yaml:"ignoredHeaders"`
}

// Degraded reports whether a row that looked like statement data was dropped.
// Unmapped labels are not counted: vendor templates carry many descriptive rows.
func (r *Report) Degraded() bool {
	return r.MalformedRows > 0 || len(r.IgnoredMarkers) > 0
}
