package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderDescription is written into every new row.
const PlaceholderDescription = "# Sua descrição aqui"

type EntryType string

const (
	Income  EntryType = "Entrada"
	Expense EntryType = "Saída"
	Neutral EntryType = "***"
)

// Entry is one row of the table: a single financial movement.
type Entry struct {
	ID          string
	Date        time.Time
	Description string
	Value       decimal.Decimal
}

// Type is derived from the sign of the value.
func (e Entry) Type() EntryType {
	switch e.Value.Sign() {
	case 1:
		return Income
	case -1:
		return Expense
	default:
		return Neutral
	}
}

func (e Entry) Day() int {
	return e.Date.Day()
}

func (e Entry) Month() Month {
	return MonthOf(e.Date)
}
