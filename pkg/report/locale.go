package report

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fixed locale conventions for every rendered report.
const (
	timeLayout     = "2006/1/2 15:04:05"
	currencySymbol = "¥"
	costDecimals   = 4
)

// timestampLayouts are tried in order when parsing created_at. Layouts
// without a zone are read as UTC, matching how the analysis store writes
// CURRENT_TIMESTAMP.
//
//nolint:gochecknoglobals // Read-only lookup table.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Locale formats dates, counts and money for the zh-CN report locale.
type Locale struct {
	location *time.Location
	printer  *message.Printer
}

// NewLocale returns a zh-CN Locale that shows times in loc.
// A nil loc means time.Local.
func NewLocale(loc *time.Location) *Locale {
	if loc == nil {
		loc = time.Local
	}
	return &Locale{
		location: loc,
		printer:  message.NewPrinter(language.SimplifiedChinese),
	}
}

// Location returns the zone times are displayed in.
func (l *Locale) Location() *time.Location {
	return l.location
}

// FormatTime renders t in the locale's zone.
func (l *Locale) FormatTime(t time.Time) string {
	return t.In(l.location).Format(timeLayout)
}

// FormatTimestamp parses an ISO 8601 timestamp and renders it with
// FormatTime. Unparseable input is returned unchanged.
func (l *Locale) FormatTimestamp(raw string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return l.FormatTime(t)
		}
	}
	return raw
}

// FormatInt renders n with grouping separators.
func (l *Locale) FormatInt(n int64) string {
	return l.printer.Sprintf("%d", n)
}

// FormatCost renders a currency amount with four decimal places.
func (l *Locale) FormatCost(amount float64) string {
	return currencySymbol + strconv.FormatFloat(amount, 'f', costDecimals, 64)
}

// formatOneDecimal renders v with exactly one decimal digit.
func formatOneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// formatPercent renders a 0..1 fraction as a one-decimal percentage.
func formatPercent(rate float64) string {
	return formatOneDecimal(rate*100) + "%"
}
