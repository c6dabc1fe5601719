package ledger

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// GraphMode selects how entries become chart bars.
type GraphMode string

const (
	// United sums the entries of each day into one bar.
	United GraphMode = "united"
	// Separate draws one bar per entry.
	Separate GraphMode = "separate"
)

func ParseGraphMode(s string) (GraphMode, error) {
	switch GraphMode(s) {
	case United, Separate:
		return GraphMode(s), nil
	}
	return "", fmt.Errorf("invalid graph mode %q: must be %q or %q", s, United, Separate)
}

// Toggle returns the other mode.
func (g GraphMode) Toggle() GraphMode {
	if g == Separate {
		return United
	}
	return Separate
}

// Bar is one column of the chart.
type Bar struct {
	Day   int
	Label string
	Value decimal.Decimal
}

// Summary is everything derived from the table: bars and the three labels.
type Summary struct {
	Month     Month
	Mode      GraphMode
	Bars      []Bar
	Net       decimal.Decimal // sum of the month
	Gross     decimal.Decimal // sum of positive values
	Expenses  decimal.Decimal // sum of negative values
	AllMonths decimal.Decimal
}

func (s Summary) Empty() bool {
	return len(s.Bars) == 0
}

// Summarize aggregates the entries of month. all is every entry in the
// ledger and only feeds AllMonths.
func Summarize(all []Entry, month Month, mode GraphMode) Summary {
	s := Summary{
		Month:     month,
		Mode:      mode,
		Net:       decimal.Zero,
		Gross:     decimal.Zero,
		Expenses:  decimal.Zero,
		AllMonths: decimal.Zero,
	}

	var visible []Entry
	for _, e := range all {
		s.AllMonths = s.AllMonths.Add(e.Value)
		if !month.Contains(e.Date) {
			continue
		}
		visible = append(visible, e)
		s.Net = s.Net.Add(e.Value)
		switch e.Value.Sign() {
		case 1:
			s.Gross = s.Gross.Add(e.Value)
		case -1:
			s.Expenses = s.Expenses.Add(e.Value)
		}
	}

	if mode == Separate {
		for _, e := range visible {
			s.Bars = append(s.Bars, Bar{Day: e.Day(), Label: dayLabel(e.Day()), Value: e.Value})
		}
		return s
	}

	byDay := make(map[int]decimal.Decimal)
	for _, e := range visible {
		byDay[e.Day()] = byDay[e.Day()].Add(e.Value)
	}
	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)
	for _, d := range days {
		s.Bars = append(s.Bars, Bar{Day: d, Label: dayLabel(d), Value: byDay[d]})
	}
	return s
}

// dayLabel zero-pads like the dd part of the table date.
func dayLabel(d int) string {
	if d < 10 {
		return "0" + strconv.Itoa(d)
	}
	return strconv.Itoa(d)
}

// Summary of the displayed month.
func (l *Ledger) Summary(mode GraphMode) Summary {
	return Summarize(l.entries, l.month, mode)
}
