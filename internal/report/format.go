// Package report renders proposal artifacts: the campaign report CSV and the
// proposal/invoice CSV handed to partners.
package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders currency and numeric values with locale-aware grouping.
// Amounts are always Malaysian Ringgit; the locale only changes digit
// grouping and decimal separators.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a formatter for the given locale ("en" or "ms").
func NewFormatter(locale string) *Formatter {
	tag := language.English
	if strings.HasPrefix(strings.ToLower(locale), "ms") {
		tag = language.Malay
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// RM formats an amount as currency with two fraction digits, e.g. "RM 40,320.00".
func (f *Formatter) RM(v float64) string {
	return f.printer.Sprintf("RM %v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// RMUnit formats a per-user unit cost with four fraction digits, e.g. "RM 0.0270".
func (f *Formatter) RMUnit(v float64) string {
	return f.printer.Sprintf("RM %v", number.Decimal(v,
		number.MinFractionDigits(4), number.MaxFractionDigits(4)))
}

// Count formats a whole quantity with grouping, truncating fractions the way
// the planning tool displayed approvals.
func (f *Formatter) Count(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(int64(v)))
}

// Percent formats a fraction as a percentage with the given number of
// fraction digits, e.g. Percent(0.0549, 2) == "5.49%".
func (f *Formatter) Percent(v float64, digits int) string {
	return f.printer.Sprintf("%v%%", number.Decimal(v*100,
		number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}
