// Package money parses and formats entry values in the table's pt-BR notation.
package money

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is the locale the ledger is written in.
const DefaultLocale = "pt-BR"

var ErrInvalidValue = errors.New("Formato inválido. Use, por exemplo: 1500,50.")

// Parse reads a value typed in the table. Dots group thousands and the comma
// separates decimals, so "1.500,50" is 1500.5.
func Parse(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, ErrInvalidValue
	}

	s = strings.TrimPrefix(s, "+")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	digits := s
	if strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if digits == "" || digits == "." || strings.Count(digits, ".") > 1 {
		return decimal.Zero, ErrInvalidValue
	}
	for _, r := range digits {
		if r != '.' && !unicode.IsDigit(r) {
			return decimal.Zero, ErrInvalidValue
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidValue
	}
	return d, nil
}

// Formatter renders values with two decimals and locale grouping.
type Formatter struct {
	tag        language.Tag
	printer    *message.Printer
	decimalSep string
	groupSep   string
}

// NewFormatter returns a formatter for a BCP 47 locale such as "pt-BR".
// Unknown locales fall back to pt-BR.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	p := message.NewPrinter(tag)
	return Formatter{
		tag:        tag,
		printer:    p,
		decimalSep: separator(p.Sprint(number.Decimal(1.5, number.MinFractionDigits(1))), "1", "5", "."),
		groupSep:   separator(p.Sprint(number.Decimal(1000000)), "1", "000", ","),
	}
}

// separator extracts what the locale prints between the leading and trailing
// digits of a sample number.
func separator(sample, lead, tail, fallback string) string {
	if !strings.HasPrefix(sample, lead) {
		return fallback
	}
	rest := strings.TrimPrefix(sample, lead)
	i := strings.Index(rest, tail)
	if i <= 0 {
		return fallback
	}
	return rest[:i]
}

// Locale returns the tag the formatter was built for.
func (f Formatter) Locale() string {
	return f.tag.String()
}

// Format works on the decimal text, never a float, so every digit shown is
// the stored one.
func (f Formatter) Format(d decimal.Decimal) string {
	if f.printer == nil {
		f = defaultFormatter
	}
	fixed := d.Round(2).StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	whole, frac, _ := strings.Cut(strings.TrimPrefix(fixed, "-"), ".")

	out := f.group(whole) + f.decimalSep + frac
	if neg {
		out = "-" + out
	}
	return out
}

// group lets x/text group the integer part when it fits an int64, so locale
// rules such as minimum grouping apply; longer numbers are grouped by three.
func (f Formatter) group(whole string) string {
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		return f.printer.Sprint(number.Decimal(n))
	}
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(f.groupSep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

var defaultFormatter = NewFormatter(DefaultLocale)

// Format renders d the way the table shows it, for example "1.500,50".
func Format(d decimal.Decimal) string {
	return defaultFormatter.Format(d)
}

// Sum adds values exactly.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
