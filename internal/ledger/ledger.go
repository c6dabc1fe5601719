// Package ledger holds the in-memory table of entries and the aggregation the
// chart and balance labels are drawn from.
//
// A Ledger is not safe for concurrent use; it is driven by one UI event loop.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"monthly-ledger/internal/money"
)

var ErrNotFound = errors.New("entry not found")

type Ledger struct {
	entries []Entry
	month   Month
	now     func() time.Time
}

type Option func(*Ledger)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New returns a ledger showing the current month, seeded with one
// placeholder row dated today.
func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}

	today := truncateDay(l.now())
	l.month = MonthOf(today)
	l.entries = append(l.entries, newEntry(today, PlaceholderDescription, decimal.Zero))
	return l
}

func newEntry(date time.Time, description string, value decimal.Decimal) Entry {
	return Entry{
		ID:          uuid.NewString(),
		Date:        truncateDay(date),
		Description: description,
		Value:       value,
	}
}

// Month returns the displayed month.
func (l *Ledger) Month() Month {
	return l.month
}

// CurrentMonth is the month of today's date.
func (l *Ledger) CurrentMonth() Month {
	return MonthOf(l.now())
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// All returns a copy of every entry in ledger order.
func (l *Ledger) All() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Visible returns the entries of the displayed month in ledger order.
func (l *Ledger) Visible() []Entry {
	var out []Entry
	for _, e := range l.entries {
		if l.month.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

func (l *Ledger) Entry(id string) (Entry, error) {
	i := l.index(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return l.entries[i], nil
}

func (l *Ledger) index(id string) int {
	for i := range l.entries {
		if l.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends a placeholder row. It is dated today when the current month is
// displayed and on the last day of the displayed month otherwise.
func (l *Ledger) Add() Entry {
	today := truncateDay(l.now())
	date := today
	if l.month != MonthOf(today) {
		date = l.month.LastDay(today.Location())
	}
	e := newEntry(date, PlaceholderDescription, decimal.Zero)
	l.entries = append(l.entries, e)
	return e
}

// Insert appends a fully specified row, used when seeding.
func (l *Ledger) Insert(date time.Time, description string, value decimal.Decimal) Entry {
	e := newEntry(date, description, value)
	l.entries = append(l.entries, e)
	return e
}

// SetDate validates text as dd/mm/yyyy. On error the entry keeps its date.
func (l *Ledger) SetDate(id, text string) (Entry, error) {
	i := l.index(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	date, err := ParseDate(text)
	if err != nil {
		return l.entries[i], err
	}
	l.entries[i].Date = date
	return l.entries[i], nil
}

func (l *Ledger) SetDescription(id, text string) (Entry, error) {
	i := l.index(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	l.entries[i].Description = strings.TrimSpace(text)
	return l.entries[i], nil
}

// SetValue parses text in pt-BR notation. On error the entry keeps its value.
func (l *Ledger) SetValue(id, text string) (Entry, error) {
	i := l.index(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	v, err := money.Parse(text)
	if err != nil {
		return l.entries[i], err
	}
	l.entries[i].Value = v
	return l.entries[i], nil
}

func (l *Ledger) Delete(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return nil
}

// SortByDate orders all entries by date; rows on the same day keep their order.
func (l *Ledger) SortByDate() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Date.Before(l.entries[j].Date)
	})
}

// SelectMonth switches the displayed month and sorts the table.
func (l *Ledger) SelectMonth(m Month) {
	l.month = m
	l.SortByDate()
}

// Months lists the months that hold entries plus the current month, grouped
// by year, newest first.
func (l *Ledger) Months() []YearMonths {
	seen := map[Month]bool{l.CurrentMonth(): true}
	months := []Month{l.CurrentMonth()}
	for _, e := range l.entries {
		m := e.Month()
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	return groupByYear(months)
}
