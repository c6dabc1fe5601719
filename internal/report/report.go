// Package report prints a month of the ledger as a plain terminal table.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"monthly-ledger/internal/ledger"
	"monthly-ledger/internal/money"
)

// PrintMonth writes the month's entries followed by its totals.
func PrintMonth(w io.Writer, s ledger.Summary, entries []ledger.Entry, f money.Formatter) {
	fmt.Fprintf(w, "%s (%d lançamentos)\n\n", s.Month.Label(), len(entries))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Data", "Descrição", "Valor", "Tipo"})

	for _, e := range entries {
		t.AppendRow(table.Row{
			ledger.FormatDate(e.Date),
			e.Description,
			f.Format(e.Value),
			typeColor(e.Type()).Sprint(string(e.Type())),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"", text.Bold.Sprint("Saldo Atual do Mês"), text.Bold.Sprint(f.Format(s.Net)), ""})
	t.AppendFooter(table.Row{"", "Saldo Bruto", f.Format(s.Gross), ""})
	t.AppendFooter(table.Row{"", "Total de Despesas do Mês", f.Format(s.Expenses), ""})
	t.AppendFooter(table.Row{"", "Saldo Total de Todos os Meses", f.Format(s.AllMonths), ""})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	t.Render()
}

func typeColor(t ledger.EntryType) text.Colors {
	switch t {
	case ledger.Income:
		return text.Colors{text.FgGreen}
	case ledger.Expense:
		return text.Colors{text.FgRed}
	default:
		return text.Colors{text.FgYellow}
	}
}
