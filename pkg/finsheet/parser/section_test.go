package parser

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/finsheet-go/pkg/finsheet/models"
)

var (
	annualRow    = []string{"Report Date", "Mar-20", "Mar-21", "Mar-22"}
	quarterlyRow = []string{"Report Date", "Mar-23", "Jun-23", "Sep-23", "Dec-23"}
)

func scan(rows ...[]string) (State, []Action) {
	var s State
	actions := make([]Action, 0, len(rows))
	for _, row := range rows {
		var act Action
		s, act = Transition(s, row)
		actions = append(actions, act)
	}
	return s, actions
}

func TestTransitionFieldExtraction(t *testing.T) {
	s, actions := scan(
		[]string{"PROFIT & LOSS"},
		annualRow,
		[]string{" Sales ", "100", "-", "150"},
	)

	assert.Equal(t, SectionProfitLoss, s.Section)
	act := actions[2]
	require.Equal(t, ActionEmitSeries, act.Kind)
	assert.Equal(t, StatementProfitLoss, act.Statement)
	assert.Equal(t, "sales", act.Field)
	assert.Equal(t, models.Series{
		{Period: "Mar-20", Value: 100},
		{Period: "Mar-21", Value: 0},
		{Period: "Mar-22", Value: 150},
	}, act.Series)
}

func TestTransitionMetaInAnySection(t *testing.T) {
	for _, section := range []Section{SectionMeta, SectionProfitLoss, SectionQuarters, SectionBalanceSheet, SectionCashFlow} {
		s := State{Section: section, Annual: PeriodAxis{"Mar-21"}}
		next, act := Transition(s, []string{"COMPANY NAME", "Acme Industries Ltd"})
		assert.Equal(t, s, next, section.String())
		assert.Equal(t, ActionSetMeta, act.Kind, section.String())
		assert.Equal(t, MetaCompanyName, act.Meta)
		assert.Equal(t, "Acme Industries Ltd", act.Text)
	}
}

func TestTransitionMetaRules(t *testing.T) {
	tests := []struct {
		row  []string
		kind ActionKind
		meta MetaField
	}{
		{[]string{"Face Value", "10"}, ActionSetMeta, MetaFaceValue},
		{[]string{"Current Price", "245.5"}, ActionSetMeta, MetaCurrentPrice},
		{[]string{"Market Capitalization", "30,687"}, ActionSetMeta, MetaMarketCapitalization},
		{[]string{"Number of shares", "125"}, ActionSetMeta, MetaNumberOfShares},
		{[]string{"Adjusted Equity Shares in Cr", "1.25", "1.25"}, ActionSetMeta, MetaNumberOfShares},
		// Without a value the row is not a meta row.
		{[]string{"COMPANY NAME", ""}, ActionNone, 0},
		{[]string{"COMPANY NAME"}, ActionNone, 0},
	}
	for _, tt := range tests {
		_, act := Transition(State{}, tt.row)
		assert.Equal(t, tt.kind, act.Kind, tt.row[0])
		assert.Equal(t, tt.meta, act.Meta, tt.row[0])
	}
}

func TestTransitionAxesFirstWins(t *testing.T) {
	s, actions := scan(
		annualRow,
		quarterlyRow,
		[]string{"Report Date", "Mar-10", "Mar-11"},
		[]string{"Report Date", "Jun-10"},
	)

	assert.Equal(t, PeriodAxis{"Mar-20", "Mar-21", "Mar-22"}, s.Annual)
	assert.Equal(t, PeriodAxis{"Mar-23", "Jun-23", "Sep-23", "Dec-23"}, s.Quarterly)
	assert.Equal(t, ActionSetAxis, actions[0].Kind)
	assert.Equal(t, AxisAnnual, actions[0].Axis)
	assert.Equal(t, ActionSetAxis, actions[1].Kind)
	assert.Equal(t, AxisQuarterly, actions[1].Axis)
	assert.Equal(t, ActionIgnoredHeader, actions[2].Kind)
	assert.Equal(t, ActionIgnoredHeader, actions[3].Kind)
}

func TestTransitionQuarterlyBeforeAnnual(t *testing.T) {
	s, actions := scan(
		[]string{"Quarters"},
		quarterlyRow,
		[]string{"Sales", "30", "32", "—", "35"},
		[]string{"Operating Profit", "5"},
	)

	assert.Nil(t, s.Annual)
	require.Equal(t, ActionEmitSeries, actions[2].Kind)
	assert.Equal(t, StatementQuarterly, actions[2].Statement)
	assert.Equal(t, []float64{30, 32, 0, 35}, actions[2].Series.Values())
	require.Equal(t, ActionEmitSeries, actions[3].Kind)
	assert.Equal(t, []float64{5, 0, 0, 0}, actions[3].Series.Values())
}

func TestTransitionFreezesAxisOnSectionEntry(t *testing.T) {
	// Balance sheet entered before any annual axis is known stays unparsed.
	s, actions := scan(
		[]string{"BALANCE SHEET"},
		annualRow,
		[]string{"Reserves", "1", "2", "3"},
		[]string{"CASH FLOW:"},
		[]string{"Net Cash Flow", "4", "5", "6"},
	)

	assert.Nil(t, s.BalanceSheetAxis)
	assert.Equal(t, s.Annual, s.CashFlowAxis)
	assert.Equal(t, ActionNone, actions[2].Kind)
	require.Equal(t, ActionEmitSeries, actions[4].Kind)
	assert.Equal(t, StatementCashFlow, actions[4].Statement)
	assert.Equal(t, "netCashFlow", actions[4].Field)
}

func TestTransitionSkips(t *testing.T) {
	s, _ := scan([]string{"PROFIT & LOSS"}, annualRow)

	_, act := Transition(s, []string{"Miscellaneous Notes", "1", "2", "3"})
	assert.Equal(t, ActionSkipUnmapped, act.Kind)
	assert.Equal(t, "Miscellaneous Notes", act.Label)

	_, act = Transition(s, []string{"Dividend Amount"})
	assert.Equal(t, ActionSkipMalformed, act.Kind)

	_, act = Transition(s, []string{"Dividend Amount", "", "", "", "9"})
	assert.Equal(t, ActionSkipMalformed, act.Kind, "values beyond the axis width do not count")

	_, act = Transition(s, []string{"", "1", "2"})
	assert.Equal(t, ActionNone, act.Kind)
	assert.Empty(t, act.Label)

	// Statement rows before any section or axis are ignored.
	_, act = Transition(State{}, []string{"Sales", "1"})
	assert.Equal(t, ActionNone, act.Kind)
	_, act = Transition(State{Section: SectionProfitLoss}, []string{"Sales", "1"})
	assert.Equal(t, ActionNone, act.Kind)
}

func TestTransitionPrice(t *testing.T) {
	s, _ := scan([]string{"PROFIT & LOSS"}, annualRow, []string{"CASH FLOW:"})

	_, act := Transition(s, []string{"PRICE:", "120", "-", "180"})
	require.Equal(t, ActionSetPrice, act.Kind)
	assert.Equal(t, models.Series{
		{Period: "Mar-20", Value: 120},
		{Period: "Mar-22", Value: 180},
	}, act.Series)

	// Without an annual axis the row has nowhere to go.
	_, act = Transition(State{}, []string{"PRICE:", "120"})
	assert.Equal(t, ActionNone, act.Kind)
}

func TestTransitionMarkersForwardOnly(t *testing.T) {
	s, actions := scan(
		[]string{"BALANCE SHEET"},
		[]string{"PROFIT & LOSS"},
		[]string{"Quarters"},
		[]string{"BALANCE SHEET"},
		[]string{"CASH FLOW:"},
	)

	assert.Equal(t, SectionCashFlow, s.Section)
	assert.Equal(t, ActionEnterSection, actions[0].Kind)
	assert.Equal(t, ActionIgnoredMarker, actions[1].Kind)
	assert.Equal(t, SectionProfitLoss, actions[1].Section)
	assert.Equal(t, ActionIgnoredMarker, actions[2].Kind)
	assert.Equal(t, ActionIgnoredMarker, actions[3].Kind)
	assert.Equal(t, ActionEnterSection, actions[4].Kind)
}

func TestTransitionIsMonotonic(t *testing.T) {
	pool := [][]string{
		{"PROFIT & LOSS"},
		{"Quarters"},
		{"BALANCE SHEET"},
		{"CASH FLOW:"},
		{"META"},
		annualRow,
		quarterlyRow,
		{"Report Date", "Mar-99"},
		{"Report Date", "Sep-99"},
		{"Sales", "1", "2", "3", "4"},
		{"Net Cash Flow", "1", "-"},
		{"COMPANY NAME", "Acme"},
		{"PRICE:", "10", "20"},
		{"Miscellaneous Notes", "x"},
		{},
	}

	rng := rand.New(rand.NewPCG(7, 11))
	for run := 0; run < 200; run++ {
		var s State
		for step := 0; step < 40; step++ {
			row := pool[rng.IntN(len(pool))]
			next, act := Transition(s, row)

			require.GreaterOrEqual(t, next.Section, s.Section)
			if s.Annual != nil {
				require.Equal(t, s.Annual, next.Annual)
			}
			if s.Quarterly != nil {
				require.Equal(t, s.Quarterly, next.Quarterly)
			}
			if act.Kind == ActionEmitSeries {
				require.Len(t, act.Series, len(next.Axis(act.Statement)))
				require.Equal(t, []string(next.Axis(act.Statement)), act.Series.Periods())
			}
			s = next
		}
	}
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	s := State{Section: SectionProfitLoss, Annual: PeriodAxis{"Mar-21"}}
	row := []string{"BALANCE SHEET"}

	next, _ := Transition(s, row)
	assert.Equal(t, SectionProfitLoss, s.Section)
	assert.Nil(t, s.BalanceSheetAxis)
	assert.Equal(t, SectionBalanceSheet, next.Section)
	assert.Equal(t, []string{"BALANCE SHEET"}, row)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "PROFIT_LOSS", SectionProfitLoss.String())
	assert.Equal(t, "emit-series", ActionEmitSeries.String())
	assert.Equal(t, "unknown", ActionKind(42).String())
	assert.Equal(t, "quarterly", AxisQuarterly.String())
	assert.Equal(t, "balanceSheet", StatementBalanceSheet.String())
}
