// Package format renders monetary amounts, dates and percentages for
// user-facing output (PDF documents, exports). All display formatting goes
// through one configured Formatter so documents stay consistent.
package format

import (
	"strings"
	"time"

	"taller/internal/core/types"
)

// Config holds the locale settings of a Formatter.
type Config struct {
	// Locale is an informational BCP 47 tag, e.g. "es-GT"
	Locale string

	// Currency is the ISO 4217 code, e.g. "GTQ"
	Currency string

	// Symbol is the display currency symbol, e.g. "Q"
	Symbol string

	// DateLayout is the Go reference layout for dates
	DateLayout string

	// ThousandsSep separates digit groups in amounts
	ThousandsSep string

	// DecimalSep separates the fractional part
	DecimalSep string
}

// DefaultConfig returns the Guatemalan Spanish configuration.
func DefaultConfig() Config {
	return Config{
		Locale:       "es-GT",
		Currency:     "GTQ",
		Symbol:       "Q",
		DateLayout:   "02/01/2006",
		ThousandsSep: ",",
		DecimalSep:   ".",
	}
}

// Formatter renders values according to its Config.
type Formatter struct {
	cfg Config
}

// New creates a Formatter with the given configuration.
func New(cfg Config) *Formatter {
	if cfg.DateLayout == "" {
		cfg.DateLayout = "02/01/2006"
	}
	if cfg.ThousandsSep == "" {
		cfg.ThousandsSep = ","
	}
	if cfg.DecimalSep == "" {
		cfg.DecimalSep = "."
	}
	return &Formatter{cfg: cfg}
}

// Config returns the formatter's configuration.
func (f *Formatter) Config() Config {
	return f.cfg
}

// Money renders an amount with the currency symbol, e.g. "Q 1,234.50".
func (f *Formatter) Money(v types.Money) string {
	if f.cfg.Symbol == "" {
		return f.Amount(v)
	}
	return f.cfg.Symbol + " " + f.Amount(v)
}

// Amount renders an amount with grouping and two decimals, no symbol.
func (f *Formatter) Amount(v types.Money) string {
	s := v.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	grouped := groupDigits(intPart, f.cfg.ThousandsSep)

	out := grouped + f.cfg.DecimalSep + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// Percent renders a rate as "12.00%".
func (f *Formatter) Percent(rate types.Money) string {
	return rate.StringFixed(2) + "%"
}

// Date renders a date with the configured layout.
func (f *Formatter) Date(t time.Time) string {
	return t.Format(f.cfg.DateLayout)
}

func groupDigits(s, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(s[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
