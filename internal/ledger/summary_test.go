package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(d int) time.Time {
	return time.Date(2026, time.October, d, 0, 0, 0, 0, time.Local)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleEntries() []Entry {
	return []Entry{
		{ID: "1", Date: day(5), Value: dec("3000")},
		{ID: "2", Date: day(5), Value: dec("-120.50")},
		{ID: "3", Date: day(1), Value: dec("-80")},
		{ID: "4", Date: day(12), Value: dec("0")},
		{ID: "5", Date: time.Date(2026, time.September, 28, 0, 0, 0, 0, time.Local), Value: dec("-1000")},
	}
}

func TestSummarizeUnited(t *testing.T) {
	s := Summarize(sampleEntries(), Month{Year: 2026, Month: time.October}, United)

	wantBars := []struct {
		day   int
		value string
	}{
		{1, "-80"},
		{5, "2879.5"},
		{12, "0"},
	}
	if len(s.Bars) != len(wantBars) {
		t.Fatalf("bars = %d, want %d", len(s.Bars), len(wantBars))
	}
	for i, w := range wantBars {
		if s.Bars[i].Day != w.day || !s.Bars[i].Value.Equal(dec(w.value)) {
			t.Errorf("bar %d = day %d value %s, want day %d value %s", i, s.Bars[i].Day, s.Bars[i].Value, w.day, w.value)
		}
	}
	if s.Bars[0].Label != "01" {
		t.Errorf("label = %q, want 01", s.Bars[0].Label)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"Net", s.Net, "2799.5"},
		{"Gross", s.Gross, "3000"},
		{"Expenses", s.Expenses, "-200.5"},
		{"AllMonths", s.AllMonths, "1799.5"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestSummarizeSeparateKeepsEntryOrder(t *testing.T) {
	s := Summarize(sampleEntries(), Month{Year: 2026, Month: time.October}, Separate)
	if len(s.Bars) != 4 {
		t.Fatalf("bars = %d, want 4", len(s.Bars))
	}
	if s.Bars[0].Day != 5 || s.Bars[2].Day != 1 {
		t.Errorf("bars out of entry order: %+v", s.Bars)
	}
	if !s.Net.Equal(dec("2799.5")) {
		t.Errorf("Net = %s", s.Net)
	}
}

func TestSummarizeEmptyMonth(t *testing.T) {
	s := Summarize(sampleEntries(), Month{Year: 2026, Month: time.March}, United)
	if !s.Empty() {
		t.Errorf("expected no bars, got %d", len(s.Bars))
	}
	if !s.Net.IsZero() || !s.Gross.IsZero() || !s.Expenses.IsZero() {
		t.Errorf("expected zero totals, got %s %s %s", s.Net, s.Gross, s.Expenses)
	}
	if !s.AllMonths.Equal(dec("1799.5")) {
		t.Errorf("AllMonths = %s", s.AllMonths)
	}
}

func TestGraphMode(t *testing.T) {
	if United.Toggle() != Separate || Separate.Toggle() != United {
		t.Error("Toggle does not alternate")
	}
	if _, err := ParseGraphMode("stacked"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if m, err := ParseGraphMode("separate"); err != nil || m != Separate {
		t.Errorf("ParseGraphMode(separate) = %v, %v", m, err)
	}
}
