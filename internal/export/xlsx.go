// Package export writes the displayed month to an Excel workbook.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"monthly-ledger/internal/ledger"
	"monthly-ledger/internal/money"
)

var header = []string{"Data", "Descrição", "Valor", "Tipo"}

// SheetName is the worksheet name for a month; "/" is not allowed in sheet names.
func SheetName(m ledger.Month) string {
	return strings.ReplaceAll(m.String(), "/", "-")
}

// WriteXLSX saves the entries of one month and its totals to path.
func WriteXLSX(path string, s ledger.Summary, entries []ledger.Entry, f money.Formatter) error {
	x := excelize.NewFile()
	defer x.Close()

	sheet := SheetName(s.Month)
	if err := x.SetSheetName(x.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := x.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#232323"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	incomeStyle, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#00B050"}})
	if err != nil {
		return fmt.Errorf("income style: %w", err)
	}
	expenseStyle, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#FF0000"}})
	if err != nil {
		return fmt.Errorf("expense style: %w", err)
	}
	totalStyle, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("total style: %w", err)
	}

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		x.SetCellValue(sheet, cell, h)
	}
	x.SetCellStyle(sheet, "A1", "D1", headerStyle)
	x.SetColWidth(sheet, "B", "B", 40)
	x.SetColWidth(sheet, "A", "A", 12)
	x.SetColWidth(sheet, "C", "D", 14)

	row := 2
	for _, e := range entries {
		x.SetCellValue(sheet, fmt.Sprintf("A%d", row), ledger.FormatDate(e.Date))
		x.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Description)
		x.SetCellValue(sheet, fmt.Sprintf("C%d", row), f.Format(e.Value))
		x.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(e.Type()))
		switch e.Type() {
		case ledger.Income:
			x.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), incomeStyle)
		case ledger.Expense:
			x.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), expenseStyle)
		}
		row++
	}

	row++
	totals := []struct {
		label string
		value string
	}{
		{"Saldo Atual do Mês", f.Format(s.Net)},
		{"Saldo Bruto", f.Format(s.Gross)},
		{"Total de Despesas do Mês", f.Format(s.Expenses)},
		{"Saldo Total de Todos os Meses", f.Format(s.AllMonths)},
	}
	for _, t := range totals {
		x.SetCellValue(sheet, fmt.Sprintf("B%d", row), t.label)
		x.SetCellValue(sheet, fmt.Sprintf("C%d", row), t.value)
		x.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("C%d", row), totalStyle)
		row++
	}

	if err := x.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
