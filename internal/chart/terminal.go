// Package chart draws the daily net bar chart, in the terminal and as PNG.
package chart

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"monthly-ledger/internal/ledger"
	"monthly-ledger/internal/money"
)

const (
	IncomeColor  = "#90d4c4"
	ExpenseColor = "#DC143C"

	barGlyph  = "█"
	axisGlyph = "╌"
)

type Style struct {
	Title   lipgloss.Style
	Income  lipgloss.Style
	Expense lipgloss.Style
	Axis    lipgloss.Style
	Label   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Income:  lipgloss.NewStyle().Foreground(lipgloss.Color(IncomeColor)),
		Expense: lipgloss.NewStyle().Foreground(lipgloss.Color(ExpenseColor)),
		Axis:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Faint(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	}
}

// Title is shared by the terminal and PNG renderings.
func Title(m ledger.Month) string {
	return "Receitas e Despesas - " + m.Label()
}

// Render draws the summary bars into a width x height block. Positive bars grow
// up from a dashed zero axis and negative bars grow down from it.
func Render(s ledger.Summary, width, height int, st Style, f money.Formatter) string {
	if width < 4 {
		width = 4
	}

	bars := s.Bars
	colWidth := 2
	if len(bars) > 0 {
		colWidth = width / len(bars)
	}
	if colWidth > 10 {
		colWidth = 10
	}
	title := Title(s.Month)
	if colWidth < 2 {
		colWidth = 2
		shown := width / colWidth
		title += fmt.Sprintf(" (%d de %d barras)", shown, len(bars))
		bars = bars[:shown]
	}
	lines := []string{st.Title.Render(title)}

	rows := height - 4
	if rows < 2 {
		rows = 2
	}

	var maxPos, maxNeg float64
	values := make([]float64, len(bars))
	for i, b := range bars {
		v := b.Value.InexactFloat64()
		values[i] = v
		if v > maxPos {
			maxPos = v
		}
		if -v > maxNeg {
			maxNeg = -v
		}
	}

	posRows, negRows := splitRows(rows, maxPos, maxNeg)

	var labels strings.Builder
	for i, b := range bars {
		text := ""
		if values[i] >= 0 {
			text = valueLabel(b.Value, colWidth, f)
		}
		labels.WriteString(cell(text, colWidth))
	}
	lines = append(lines, st.Label.Render(labels.String()))

	for r := 0; r < posRows; r++ {
		var line strings.Builder
		for _, v := range values {
			filled := fill(v, maxPos, posRows)
			if v > 0 && r >= posRows-filled {
				line.WriteString(st.Income.Render(block(colWidth)))
			} else {
				line.WriteString(strings.Repeat(" ", colWidth))
			}
		}
		lines = append(lines, line.String())
	}

	axisWidth := colWidth * len(bars)
	if axisWidth == 0 {
		axisWidth = width
	}
	lines = append(lines, st.Axis.Render(strings.Repeat(axisGlyph, axisWidth)))

	for r := 0; r < negRows; r++ {
		var line strings.Builder
		for _, v := range values {
			filled := fill(-v, maxNeg, negRows)
			if v < 0 && r < filled {
				line.WriteString(st.Expense.Render(block(colWidth)))
			} else {
				line.WriteString(strings.Repeat(" ", colWidth))
			}
		}
		lines = append(lines, line.String())
	}

	if negRows > 0 {
		var negLabels strings.Builder
		for i, b := range bars {
			text := ""
			if values[i] < 0 {
				text = valueLabel(b.Value, colWidth, f)
			}
			negLabels.WriteString(cell(text, colWidth))
		}
		lines = append(lines, st.Label.Render(negLabels.String()))
	}

	var days strings.Builder
	for i, b := range bars {
		days.WriteString(dayCell(i, b.Label, colWidth))
	}
	lines = append(lines, st.Axis.Render(days.String()))

	return strings.Join(lines, "\n")
}

// splitRows shares the bar area between the positive and negative sides in
// proportion to their largest magnitudes.
func splitRows(rows int, maxPos, maxNeg float64) (int, int) {
	switch {
	case maxPos > 0 && maxNeg > 0:
		pos := int(math.Round(float64(rows) * maxPos / (maxPos + maxNeg)))
		if pos < 1 {
			pos = 1
		}
		if pos > rows-1 {
			pos = rows - 1
		}
		return pos, rows - pos
	case maxNeg > 0:
		return 0, rows
	default:
		return rows, 0
	}
}

// fill is how many rows a bar of magnitude v covers; any non-zero bar gets one.
func fill(v, peak float64, rows int) int {
	if v <= 0 || peak <= 0 {
		return 0
	}
	n := int(math.Ceil(v / peak * float64(rows)))
	if n < 1 {
		n = 1
	}
	if n > rows {
		n = rows
	}
	return n
}

// valueLabel is the full value when it fits the column, a compact form such
// as "2k" otherwise, and empty when neither fits.
func valueLabel(v decimal.Decimal, w int, f money.Formatter) string {
	if text := f.Format(v); utf8.RuneCountInString(text) <= w-1 {
		return text
	}
	if text := compact(v); utf8.RuneCountInString(text) <= w-1 {
		return text
	}
	return ""
}

func compact(v decimal.Decimal) string {
	abs := v.Abs()
	sign := ""
	if v.Sign() < 0 {
		sign = "-"
	}
	units := []struct {
		size   int64
		suffix string
	}{
		{1_000_000_000, "G"},
		{1_000_000, "M"},
		{1_000, "k"},
	}
	for _, u := range units {
		if abs.GreaterThanOrEqual(decimal.NewFromInt(u.size)) {
			return sign + abs.Div(decimal.NewFromInt(u.size)).Round(0).String() + u.suffix
		}
	}
	return sign + abs.Round(0).String()
}

// dayCell never cuts a day label. Two-column bars leave no room for a gap, so
// every other bar is labelled and the label spills into its neighbour.
func dayCell(i int, label string, w int) string {
	if w > 2 {
		return cell(label, w)
	}
	if i%2 == 1 {
		return strings.Repeat(" ", w)
	}
	r := []rune(label)
	if len(r) > w {
		r = r[len(r)-w:]
	}
	return string(r) + strings.Repeat(" ", w-len(r))
}

func block(w int) string {
	return strings.Repeat(barGlyph, w-1) + " "
}

func cell(text string, w int) string {
	r := []rune(text)
	if len(r) > w-1 {
		r = r[:w-1]
	}
	return string(r) + strings.Repeat(" ", w-len(r))
}
