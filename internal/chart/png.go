package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"monthly-ledger/internal/ledger"
	"monthly-ledger/internal/money"
)

var ErrNoData = errors.New("no entries to chart")

type PNGOptions struct {
	Width     int
	Height    int
	Formatter money.Formatter
}

var (
	background = drawing.ColorFromHex("0f0f0f")
	foreground = drawing.ColorWhite
)

// WritePNG renders the summary as a bar chart image: one bar per day (or entry),
// coloured by sign, measured from a zero base line.
func WritePNG(w io.Writer, s ledger.Summary, opts PNGOptions) error {
	if s.Empty() {
		return ErrNoData
	}

	income := drawing.ColorFromHex(IncomeColor[1:])
	expense := drawing.ColorFromHex(ExpenseColor[1:])

	lo, hi := 0.0, 0.0
	bars := make([]gochart.Value, 0, len(s.Bars))
	for _, b := range s.Bars {
		v := b.Value.InexactFloat64()
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		color := income
		if v < 0 {
			color = expense
		}
		bars = append(bars, gochart.Value{
			Label: b.Label,
			Value: v,
			Style: gochart.Style{FillColor: color, StrokeColor: color, StrokeWidth: 1},
		})
	}
	if hi == lo {
		hi = 1
	}
	pad := (hi - lo) * 0.1
	if lo < 0 {
		lo -= pad
	}
	hi += pad

	const barWidth, barSpacing = 24, 10
	width := opts.Width
	if need := len(bars)*(barWidth+barSpacing) + 200; width < need {
		width = need
	}
	height := opts.Height
	if height <= 0 {
		height = 512
	}

	f := opts.Formatter
	text := gochart.Style{FontColor: foreground}
	bc := gochart.BarChart{
		Title:      Title(s.Month),
		TitleStyle: text,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: gochart.Style{
			FillColor: background,
			Padding:   gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: gochart.Style{FillColor: background},
		XAxis:  text,
		YAxis: gochart.YAxis{
			Name:  "Valor",
			Style: text,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: func(v interface{}) string {
				if fv, ok := v.(float64); ok {
					return f.Format(decimal.NewFromFloat(fv))
				}
				return fmt.Sprint(v)
			},
		},
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}

	if err := bc.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
