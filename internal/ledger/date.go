package ledger

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the dd/mm/yyyy layout used in the table.
const DateLayout = "02/01/2006"

const isoLayout = "2006-01-02"

var (
	ErrDateFormat   = errors.New("Formato de data inválido. Use dd/mm/aaaa.")
	ErrDateNotExist = errors.New("Esta data não existe.")
)

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ParseDate validates a date typed in the table. The shape is checked before
// the calendar so "1/2/2026" and "31/02/2026" report different errors.
func ParseDate(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if !datePattern.MatchString(s) {
		return time.Time{}, ErrDateFormat
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrDateNotExist
	}
	return t, nil
}

// ParseStoredDate accepts the table layout or ISO dates, as found in seed files.
func ParseStoredDate(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if t, err := ParseDate(s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(isoLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, ErrDateFormat
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
