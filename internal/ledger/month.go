package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

var monthNames = map[time.Month]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

// Month identifies one calendar month of the ledger.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth reads "MM/YYYY".
func ParseMonth(s string) (Month, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Month{}, fmt.Errorf("invalid month %q: use MM/YYYY", s)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return Month{}, fmt.Errorf("invalid month %q: use MM/YYYY", s)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 {
		return Month{}, fmt.Errorf("invalid month %q: use MM/YYYY", s)
	}
	return Month{Year: y, Month: time.Month(m)}, nil
}

// String renders "MM/YYYY".
func (m Month) String() string {
	return fmt.Sprintf("%02d/%04d", int(m.Month), m.Year)
}

// Name is the pt-BR month name, e.g. "Outubro".
func (m Month) Name() string {
	return monthNames[m.Month]
}

// Label renders the chart title form, e.g. "Outubro de 2026".
func (m Month) Label() string {
	return fmt.Sprintf("%s de %d", m.Name(), m.Year)
}

// First returns midnight of the first day of the month.
func (m Month) First(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// LastDay returns midnight of the last day of the month.
func (m Month) LastDay(loc *time.Location) time.Time {
	return m.First(loc).AddDate(0, 1, -1)
}

func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// YearMonths groups the months of one year for the month picker.
type YearMonths struct {
	Year   int
	Months []Month
}

// groupByYear orders years and months newest first.
func groupByYear(months []Month) []YearMonths {
	byYear := make(map[int][]Month)
	for _, m := range months {
		byYear[m.Year] = append(byYear[m.Year], m)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]YearMonths, 0, len(years))
	for _, y := range years {
		ms := byYear[y]
		sort.Slice(ms, func(i, j int) bool { return ms[j].Before(ms[i]) })
		groups = append(groups, YearMonths{Year: y, Months: ms})
	}
	return groups
}
