package parser

import (
	"strings"

	"github.com/ukaji3/finsheet-go/pkg/finsheet/models"
)

// Section is the part of the sheet the scan is currently in.
// Sections only ever move forward during a scan.
type Section int

const (
	SectionMeta Section = iota
	SectionProfitLoss
	SectionQuarters
	SectionBalanceSheet
	SectionCashFlow
)

func (s Section) String() string {
	switch s {
	case SectionMeta:
		return "META"
	case SectionProfitLoss:
		return "PROFIT_LOSS"
	case SectionQuarters:
		return "QUARTERS"
	case SectionBalanceSheet:
		return "BALANCE_SHEET"
	case SectionCashFlow:
		return "CASH_FLOW"
	default:
		return "UNKNOWN"
	}
}

// Statement returns the statement fed by rows of this section.
func (s Section) Statement() (StatementKind, bool) {
	switch s {
	case SectionProfitLoss:
		return StatementProfitLoss, true
	case SectionQuarters:
		return StatementQuarterly, true
	case SectionBalanceSheet:
		return StatementBalanceSheet, true
	case SectionCashFlow:
		return StatementCashFlow, true
	default:
		return 0, false
	}
}

// State is the scan state between two rows. The zero value is the initial state.
// Axes are never modified once set, so copies of a State may share them.
type State struct {
	Section   Section
	Annual    PeriodAxis
	Quarterly PeriodAxis
	// BalanceSheetAxis and CashFlowAxis are the annual axis as it was when
	// their section was entered.
	BalanceSheetAxis PeriodAxis
	CashFlowAxis     PeriodAxis
}

// Axis returns the axis governing a statement.
func (s State) Axis(kind StatementKind) PeriodAxis {
	switch kind {
	case StatementProfitLoss:
		return s.Annual
	case StatementQuarterly:
		return s.Quarterly
	case StatementBalanceSheet:
		return s.BalanceSheetAxis
	case StatementCashFlow:
		return s.CashFlowAxis
	default:
		return nil
	}
}

// ActionKind tells the caller what to do with a row.
type ActionKind int

const (
	// ActionNone means the row carries nothing for the result.
	ActionNone ActionKind = iota
	// ActionSetMeta sets a Meta field from Action.Text.
	ActionSetMeta
	// ActionSetAxis records a newly recognized period axis.
	ActionSetAxis
	// ActionIgnoredHeader is a "Report Date" row for an axis that is already set.
	ActionIgnoredHeader
	// ActionEnterSection moves the scan to Action.Section.
	ActionEnterSection
	// ActionIgnoredMarker is a marker for the current or an earlier section.
	ActionIgnoredMarker
	// ActionSetPrice replaces the price series with Action.Series.
	ActionSetPrice
	// ActionEmitSeries stores Action.Series under Action.Field of Action.Statement.
	ActionEmitSeries
	// ActionSkipMalformed is a labelled statement row without values.
	ActionSkipMalformed
	// ActionSkipUnmapped is a statement row whose label has no canonical field.
	ActionSkipUnmapped
)

var actionNames = [...]string{
	"none", "set-meta", "set-axis", "ignored-header", "enter-section",
	"ignored-marker", "set-price", "emit-series", "skip-malformed", "skip-unmapped",
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[k]
}

// MetaField identifies the Meta field a row sets.
type MetaField int

const (
	MetaCompanyName MetaField = iota + 1
	MetaFaceValue
	MetaCurrentPrice
	MetaMarketCapitalization
	MetaNumberOfShares
)

// Action is the effect of one row.
type Action struct {
	Kind ActionKind
	// Label is the trimmed first cell.
	Label string

	Meta MetaField
	Text string

	Axis    AxisKind
	Section Section

	Statement StatementKind
	Field     string
	Series    models.Series
}

// metaRules are matched in order against the first cell.
var metaRules = []struct {
	substr string
	field  MetaField
}{
	{"COMPANY NAME", MetaCompanyName},
	{"Face Value", MetaFaceValue},
	{"Current Price", MetaCurrentPrice},
	{"Market Capitalization", MetaMarketCapitalization},
	{"Number of shares", MetaNumberOfShares},
	{"Adjusted Equity Shares", MetaNumberOfShares},
}

var markers = []struct {
	substr  string
	section Section
}{
	{"PROFIT & LOSS", SectionProfitLoss},
	{"Quarters", SectionQuarters},
	{"BALANCE SHEET", SectionBalanceSheet},
	{"CASH FLOW", SectionCashFlow},
}

const priceMarker = "PRICE"

// Transition computes the state after a row and the action the row implies.
// It has no side effects.
func Transition(s State, row []string) (State, Action) {
	label := strings.TrimSpace(cellAt(row, 0))
	if label == "" {
		return s, Action{Kind: ActionNone}
	}
	act := Action{Kind: ActionNone, Label: label}
	value := strings.TrimSpace(cellAt(row, 1))

	// Meta rows apply in every section.
	if field, ok := matchMeta(label); ok && value != "" {
		act.Kind = ActionSetMeta
		act.Meta = field
		act.Text = value
		return s, act
	}

	if kind, axis := ClassifyHeader(row); kind != AxisNone {
		act.Axis = kind
		act.Kind = ActionIgnoredHeader
		switch {
		case kind == AxisAnnual && s.Annual == nil:
			s.Annual = axis
			act.Kind = ActionSetAxis
		case kind == AxisQuarterly && s.Quarterly == nil:
			s.Quarterly = axis
			act.Kind = ActionSetAxis
		}
		return s, act
	}

	if target, ok := matchMarker(label); ok {
		act.Section = target
		if target <= s.Section {
			act.Kind = ActionIgnoredMarker
			return s, act
		}
		s.Section = target
		switch target {
		case SectionBalanceSheet:
			s.BalanceSheetAxis = s.Annual
		case SectionCashFlow:
			s.CashFlowAxis = s.Annual
		}
		act.Kind = ActionEnterSection
		return s, act
	}

	if strings.Contains(label, priceMarker) && value != "" && len(s.Annual) > 0 {
		act.Kind = ActionSetPrice
		act.Series = positiveOnly(Assemble(s.Annual, rowValues(row, len(s.Annual))))
		return s, act
	}

	kind, ok := s.Section.Statement()
	if !ok {
		return s, act
	}
	axis := s.Axis(kind)
	if len(axis) == 0 {
		return s, act
	}
	act.Statement = kind
	if !hasValues(row, len(axis)) {
		act.Kind = ActionSkipMalformed
		return s, act
	}
	field, ok := LookupField(kind, label)
	if !ok {
		act.Kind = ActionSkipUnmapped
		return s, act
	}
	act.Kind = ActionEmitSeries
	act.Field = field
	act.Series = Assemble(axis, rowValues(row, len(axis)))
	return s, act
}

func matchMeta(label string) (MetaField, bool) {
	for _, r := range metaRules {
		if strings.Contains(label, r.substr) {
			return r.field, true
		}
	}
	return 0, false
}

func matchMarker(label string) (Section, bool) {
	for _, m := range markers {
		if strings.Contains(label, m.substr) {
			return m.section, true
		}
	}
	return 0, false
}
