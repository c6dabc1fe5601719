package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"monthly-ledger/internal/money"
)

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 15, 4, 5, 0, time.Local)
	}
}

func TestNewSeedsPlaceholderRow(t *testing.T) {
	l := New(WithClock(fixedClock(2026, time.October, 19)))

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	e := l.All()[0]
	if got := FormatDate(e.Date); got != "19/10/2026" {
		t.Errorf("seed date = %s, want 19/10/2026", got)
	}
	if e.Description != PlaceholderDescription {
		t.Errorf("seed description = %q", e.Description)
	}
	if !e.Value.IsZero() || e.Type() != Neutral {
		t.Errorf("seed value = %s type %s, want 0 and neutral", e.Value, e.Type())
	}
	if l.Month() != (Month{Year: 2026, Month: time.October}) {
		t.Errorf("Month() = %v", l.Month())
	}
}

func TestAddUsesTodayInCurrentMonth(t *testing.T) {
	l := New(WithClock(fixedClock(2026, time.October, 19)))
	e := l.Add()
	if got := FormatDate(e.Date); got != "19/10/2026" {
		t.Errorf("Add() date = %s, want 19/10/2026", got)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestAddUsesLastDayOfDisplayedMonth(t *testing.T) {
	tests := []struct {
		month Month
		want  string
	}{
		{Month{Year: 2026, Month: time.February}, "28/02/2026"},
		{Month{Year: 2024, Month: time.February}, "29/02/2024"},
		{Month{Year: 2025, Month: time.December}, "31/12/2025"},
		{Month{Year: 2026, Month: time.April}, "30/04/2026"},
	}
	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			l := New(WithClock(fixedClock(2026, time.October, 19)))
			l.SelectMonth(tt.month)
			e := l.Add()
			if got := FormatDate(e.Date); got != tt.want {
				t.Errorf("Add() date = %s, want %s", got, tt.want)
			}
			if len(l.Visible()) != 1 {
				t.Errorf("Visible() = %d entries, want 1", len(l.Visible()))
			}
		})
	}
}

func TestSetDate(t *testing.T) {
	l := New(WithClock(fixedClock(2026, time.October, 19)))
	id := l.All()[0].ID

	if _, err := l.SetDate(id, "5/10/2026"); !errors.Is(err, ErrDateFormat) {
		t.Errorf("short date error = %v, want ErrDateFormat", err)
	}
	if _, err := l.SetDate(id, "31/02/2026"); !errors.Is(err, ErrDateNotExist) {
		t.Errorf("impossible date error = %v, want ErrDateNotExist", err)
	}
	e, _ := l.Entry(id)
	if got := FormatDate(e.Date); got != "19/10/2026" {
		t.Errorf("date after failed edits = %s, want unchanged", got)
	}

	e, err := l.SetDate(id, "03/10/2026")
	if err != nil {
		t.Fatalf("SetDate: %v", err)
	}
	if e.Day() != 3 {
		t.Errorf("Day() = %d, want 3", e.Day())
	}

	if _, err := l.SetDate("missing", "03/10/2026"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id error = %v, want ErrNotFound", err)
	}
}

func TestSetValueDerivesType(t *testing.T) {
	l := New(WithClock(fixedClock(2026, time.October, 19)))
	id := l.All()[0].ID

	tests := []struct {
		text string
		want EntryType
	}{
		{"1.500,50", Income},
		{"-20", Expense},
		{"0,00", Neutral},
	}
	for _, tt := range tests {
		e, err := l.SetValue(id, tt.text)
		if err != nil {
			t.Fatalf("SetValue(%q): %v", tt.text, err)
		}
		if e.Type() != tt.want {
			t.Errorf("SetValue(%q) type = %s, want %s", tt.text, e.Type(), tt.want)
		}
	}

	l.SetValue(id, "10")
	if _, err := l.SetValue(id, "dez reais"); !errors.Is(err, money.ErrInvalidValue) {
		t.Errorf("invalid value error = %v", err)
	}
	e, _ := l.Entry(id)
	if !e.Value.Equal(decimal.NewFromInt(10)) {
		t.Errorf("value after failed edit = %s, want 10", e.Value)
	}
}

func TestSetDescriptionTrims(t *testing.T) {
	l := New(WithClock(fixedClock(2026, time.October, 19)))
	id := l.All()[0].ID
	e, err := l.SetDescription(id, "  Salário  ")
	if err != nil {
		t.Fatal(err)
	}
	if e.Description != "Salário" {
		t.Errorf("Description = %q", e.Description)
	}
}

func TestDelete(t *testing.T) {
	l := New(WithClock(fixedClock(2026, time.October, 19)))
	added := l.Add()
	if err := l.Delete(added.ID); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if err := l.Delete(added.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestSortByDateIsStable(t *testing.T) {
	l := New(WithClock(fixedClock(2026, time.October, 19)))
	seed := l.All()[0]
	a := l.Insert(time.Date(2026, time.October, 2, 0, 0, 0, 0, time.Local), "a", decimal.NewFromInt(1))
	b := l.Insert(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.Local), "b", decimal.NewFromInt(2))
	c := l.Insert(time.Date(2026, time.October, 2, 0, 0, 0, 0, time.Local), "c", decimal.NewFromInt(3))

	l.SortByDate()

	want := []string{a.ID, c.ID, seed.ID, b.ID}
	for i, e := range l.All() {
		if e.ID != want[i] {
			t.Fatalf("position %d = %q, want %q", i, e.Description, want[i])
		}
	}
}

func TestVisibleFiltersDisplayedMonth(t *testing.T) {
	l := New(WithClock(fixedClock(2026, time.October, 19)))
	l.Insert(time.Date(2026, time.September, 30, 0, 0, 0, 0, time.Local), "setembro", decimal.NewFromInt(-5))

	if n := len(l.Visible()); n != 1 {
		t.Errorf("October Visible() = %d, want 1", n)
	}
	l.SelectMonth(Month{Year: 2026, Month: time.September})
	v := l.Visible()
	if len(v) != 1 || v[0].Description != "setembro" {
		t.Errorf("September Visible() = %+v", v)
	}
}

func TestMonthsGroupedByYearNewestFirst(t *testing.T) {
	l := New(WithClock(fixedClock(2026, time.October, 19)))
	l.Insert(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), "", decimal.Zero)
	l.Insert(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local), "", decimal.Zero)
	l.Insert(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.Local), "", decimal.Zero)

	groups := l.Months()
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Year != 2026 || groups[1].Year != 2025 {
		t.Errorf("years = %d, %d", groups[0].Year, groups[1].Year)
	}
	if got := groups[0].Months[0].String(); got != "10/2026" {
		t.Errorf("newest month = %s", got)
	}
	if got := groups[1].Months[1].String(); got != "03/2025" {
		t.Errorf("oldest month = %s", got)
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("02/2026")
	if err != nil {
		t.Fatal(err)
	}
	if m.Label() != "Fevereiro de 2026" {
		t.Errorf("Label() = %q", m.Label())
	}
	for _, bad := range []string{"", "13/2026", "2026-02", "02/26"} {
		if _, err := ParseMonth(bad); err == nil {
			t.Errorf("ParseMonth(%q) expected error", bad)
		}
	}
}

func TestParseStoredDate(t *testing.T) {
	for _, in := range []string{"19/10/2026", "2026-10-19"} {
		d, err := ParseStoredDate(in)
		if err != nil {
			t.Fatalf("ParseStoredDate(%q): %v", in, err)
		}
		if FormatDate(d) != "19/10/2026" {
			t.Errorf("ParseStoredDate(%q) = %s", in, FormatDate(d))
		}
	}
	if _, err := ParseStoredDate("19.10.2026"); !errors.Is(err, ErrDateFormat) {
		t.Errorf("expected ErrDateFormat, got %v", err)
	}
}
