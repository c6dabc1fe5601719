package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"monthly-ledger/internal/ledger"
	"monthly-ledger/internal/money"
)

func TestPrintMonth(t *testing.T) {
	month := ledger.Month{Year: 2026, Month: time.October}
	entries := []ledger.Entry{
		{ID: "a", Date: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local), Description: "Aluguel", Value: decimal.NewFromInt(-1500)},
		{ID: "b", Date: time.Date(2026, time.October, 5, 0, 0, 0, 0, time.Local), Description: "Salário", Value: decimal.NewFromInt(4000)},
		{ID: "c", Date: time.Date(2026, time.October, 9, 0, 0, 0, 0, time.Local), Description: "Anotação", Value: decimal.Zero},
	}
	s := ledger.Summarize(entries, month, ledger.United)

	var buf bytes.Buffer
	PrintMonth(&buf, s, entries, money.NewFormatter("pt-BR"))
	out := buf.String()

	for _, want := range []string{
		"Outubro de 2026 (3 lançamentos)",
		"01/10/2026", "Aluguel", "-1.500,00", "Saída",
		"Salário", "4.000,00", "Entrada",
		"Anotação", "***",
		"Saldo Atual do Mês", "2.500,00",
		"Total de Despesas do Mês",
		"Saldo Total de Todos os Meses",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintMonthEmpty(t *testing.T) {
	month := ledger.Month{Year: 2026, Month: time.March}
	var buf bytes.Buffer
	PrintMonth(&buf, ledger.Summarize(nil, month, ledger.United), nil, money.NewFormatter("pt-BR"))
	if !strings.Contains(buf.String(), "Março de 2026 (0 lançamentos)") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "0,00") {
		t.Errorf("totals missing:\n%s", buf.String())
	}
}
