package parser

import (
	"regexp"
	"strings"
)

// AxisKind identifies which period axis a "Report Date" row defines.
type AxisKind int

const (
	// AxisNone means the row is not a period header.
	AxisNone AxisKind = iota
	// AxisAnnual is a header made only of Mar-NN labels.
	AxisAnnual
	// AxisQuarterly is a header with at least one Jun, Sep or Dec label.
	AxisQuarterly
)

func (k AxisKind) String() string {
	switch k {
	case AxisAnnual:
		return "annual"
	case AxisQuarterly:
		return "quarterly"
	default:
		return "none"
	}
}

// PeriodAxis is the ordered list of period labels a statement is aligned to.
type PeriodAxis []string

const reportDateLabel = "Report Date"

var (
	periodPattern  = regexp.MustCompile(`(Mar|Jun|Sep|Dec)-\d{2}`)
	quarterPattern = regexp.MustCompile(`(Jun|Sep|Dec)-\d{2}`)
)

// ClassifyHeader inspects a "Report Date" row and returns the axis it defines.
// Annual and quarterly headers share the same label and differ only in their dates.
func ClassifyHeader(row []string) (AxisKind, PeriodAxis) {
	if strings.TrimSpace(cellAt(row, 0)) != reportDateLabel {
		return AxisNone, nil
	}

	var axis PeriodAxis
	quarterly := false
	for _, cell := range row[1:] {
		label := strings.TrimSpace(cell)
		if !periodPattern.MatchString(label) {
			continue
		}
		if quarterPattern.MatchString(label) {
			quarterly = true
		}
		axis = append(axis, label)
	}

	switch {
	case len(axis) == 0:
		return AxisNone, nil
	case quarterly:
		return AxisQuarterly, axis
	default:
		return AxisAnnual, axis
	}
}
