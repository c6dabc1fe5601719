package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"monthly-ledger/internal/chart"
	"monthly-ledger/internal/config"
	"monthly-ledger/internal/ledger"
)

var (
	appNameStyle = lipgloss.NewStyle().Background(lipgloss.Color("99")).Padding(0, 1)

	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Faint(true)

	enumeratorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).MarginRight(1)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	dialogStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1)
	errorDialogStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1)
	activeFieldStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1).Width(30)
)

var columnWidths = []int{12, 36, 14, 9}

// styles carries the theme colours from the configuration.
type styles struct {
	income  lipgloss.Style
	expense lipgloss.Style
	neutral lipgloss.Style
	accent  lipgloss.Style
	focused lipgloss.Style
	chart   chart.Style
}

func newStyles(t config.Theme) styles {
	accent := lipgloss.Color(t.Accent)
	cs := chart.DefaultStyle()
	cs.Title = cs.Title.Foreground(accent)
	return styles{
		income:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Income)),
		expense: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Expense)),
		neutral: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Neutral)),
		accent:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		focused: lipgloss.NewStyle().Reverse(true),
		chart:   cs,
	}
}

func (s styles) forType(t ledger.EntryType) lipgloss.Style {
	switch t {
	case ledger.Income:
		return s.income
	case ledger.Expense:
		return s.expense
	default:
		return s.neutral
	}
}

func (m model) View() string {
	s := appNameStyle.Render("Controle Mensal") + " " + headerStyle.Render(m.store.Month().Label()) + "\n\n"

	switch m.state {
	case monthPickerView:
		s += m.renderMonthPicker()
		return s
	case confirmDeleteView:
		s += m.renderTable() + "\n"
		s += m.renderConfirmDelete()
		return s
	case errorView:
		s += m.renderTable() + "\n"
		s += errorDialogStyle.Render(errorStyle.Bold(true).Render("Erro")+"\n\n"+m.errMessage+"\n\n"+faintStyle.Render("enter: continuar")) + "\n"
		return s
	}

	s += m.renderTable() + "\n"
	if m.state == editView {
		s += headerStyle.Render("Editando "+m.col.title()) + "\n"
		s += activeFieldStyle.Render(m.editor.View()) + "\n"
		s += faintStyle.Render("enter: salvar | esc: cancelar") + "\n"
		return s
	}

	s += m.renderChart() + "\n\n"
	s += m.renderBalances() + "\n"
	if m.statusMessage != "" {
		s += successStyle.Render(m.statusMessage) + "\n"
	}
	s += "\n" + m.help.View(m.keys)
	return s
}

func (m model) renderTable() string {
	var b strings.Builder

	b.WriteString(enumeratorStyle.Render(" "))
	for i, title := range columnTitles {
		b.WriteString(headerStyle.Width(columnWidths[i]).Render(title))
	}
	b.WriteString("\n")

	availableHeight := m.tableHeight()

	// Calculate scroll offset
	startIndex := 0
	if len(m.entries) > availableHeight {
		startIndex = m.row - availableHeight/2
		if startIndex < 0 {
			startIndex = 0
		}
		if startIndex > len(m.entries)-availableHeight {
			startIndex = len(m.entries) - availableHeight
		}
	}
	endIndex := startIndex + availableHeight
	if endIndex > len(m.entries) {
		endIndex = len(m.entries)
	}

	f := m.store.Formatter()
	for i := startIndex; i < endIndex; i++ {
		e := m.entries[i]
		prefix := " "
		if i == m.row {
			prefix = ">"
		}
		b.WriteString(enumeratorStyle.Render(prefix))

		cells := []string{
			ledger.FormatDate(e.Date),
			e.Description,
			f.Format(e.Value),
			string(e.Type()),
		}
		for c, text := range cells {
			st := lipgloss.NewStyle()
			if column(c) == typeColumn {
				st = m.styles.forType(e.Type())
			}
			if column(c) == valueColumn {
				st = st.Align(lipgloss.Right).PaddingRight(2)
			}
			if i == m.row && column(c) == m.col {
				st = st.Inherit(m.styles.focused)
			}
			b.WriteString(st.Width(columnWidths[c]).MaxWidth(columnWidths[c]).Render(text))
		}
		b.WriteString("\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(faintStyle.Render("Nenhum lançamento neste mês. Pressione 'a' para adicionar.") + "\n")
	} else if len(m.entries) > availableHeight {
		b.WriteString(faintStyle.Render(fmt.Sprintf("(%d/%d)", m.row+1, len(m.entries))) + "\n")
	}
	return b.String()
}

func (m model) tableHeight() int {
	const chartLines, chrome = 14, 10
	h := m.height - chartLines - chrome
	if h < 5 {
		h = 10
	}
	return h
}

func (m model) renderChart() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return chart.Render(m.summary, width-2, 14, m.styles.chart, m.store.Formatter())
}

func (m model) renderBalances() string {
	f := m.store.Formatter()
	sum := m.summary
	money := func(v interface{ Sign() int }, text string) string {
		switch v.Sign() {
		case 1:
			return m.styles.income.Render(text)
		case -1:
			return m.styles.expense.Render(text)
		}
		return text
	}
	lines := []string{
		fmt.Sprintf("Saldo Atual do Mês: %s - Saldo Bruto: %s", money(sum.Net, f.Format(sum.Net)), money(sum.Gross, f.Format(sum.Gross))),
		fmt.Sprintf("Total de Despesas do Mês: %s", money(sum.Expenses, f.Format(sum.Expenses))),
		fmt.Sprintf("Saldo Total de Todos os Meses: %s", money(sum.AllMonths, f.Format(sum.AllMonths))),
	}
	return strings.Join(lines, "\n")
}

func (m model) renderConfirmDelete() string {
	e, ok := m.current()
	if !ok {
		return ""
	}
	body := fmt.Sprintf("Excluir o lançamento de %s?\n%s  %s",
		ledger.FormatDate(e.Date), e.Description, m.store.Formatter().Format(e.Value))
	return dialogStyle.Render(headerStyle.Render("Confirmar exclusão")+"\n\n"+body+"\n\n"+faintStyle.Render("y: sim | n: não")) + "\n"
}

func (m model) renderMonthPicker() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Selecionar mês") + "\n\n")

	i := 0
	for _, g := range m.monthGroups {
		b.WriteString(m.styles.accent.Render(fmt.Sprint(g.Year)) + "\n")
		for _, mo := range g.Months {
			prefix := " "
			line := mo.Name()
			if i == m.monthIndex {
				prefix = ">"
				line = m.styles.focused.Render(line)
			}
			if mo == m.store.Month() {
				line += faintStyle.Render(" (atual)")
			}
			b.WriteString("  " + enumeratorStyle.Render(prefix) + line + "\n")
			i++
		}
	}
	b.WriteString("\n" + faintStyle.Render("↑/↓: navegar | enter: selecionar | esc: voltar"))
	return b.String()
}
