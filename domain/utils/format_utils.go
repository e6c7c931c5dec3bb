package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyFormatter renders amounts and ratios with locale aware digit grouping
type MoneyFormatter struct {
	printer *message.Printer
}

// NewMoneyFormatter parses a BCP 47 tag such as "ko-KR" or "en-US"
func NewMoneyFormatter(locale string) (*MoneyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &MoneyFormatter{printer: message.NewPrinter(tag)}, nil
}

// FormatAmount formats an integer amount with grouping separators (1,500,000)
func (f *MoneyFormatter) FormatAmount(value int64) string {
	return f.printer.Sprintf("%d", value)
}

// FormatPercent formats a ratio as a percentage with one decimal place (0.625 -> 62.5%)
func (f *MoneyFormatter) FormatPercent(ratio float64) string {
	return f.printer.Sprintf("%.1f%%", ratio*100)
}

// FormatShortNotation formats a number using short notation (e.g., 50k instead of 50000)
func FormatShortNotation(value int64) string {
	absValue := value
	sign := ""
	if value < 0 {
		absValue = -value
		sign = "-"
	}

	switch {
	case absValue >= 1_000_000_000_000:
		return fmt.Sprintf("%s%.2fT", sign, float64(absValue)/1_000_000_000_000)
	case absValue >= 1_000_000_000:
		return fmt.Sprintf("%s%.2fB", sign, float64(absValue)/1_000_000_000)
	case absValue >= 1_000_000:
		return fmt.Sprintf("%s%.2fM", sign, float64(absValue)/1_000_000)
	case absValue >= 10_000:
		return fmt.Sprintf("%s%dk", sign, absValue/1_000)
	case absValue >= 1_000:
		return fmt.Sprintf("%s%.1fk", sign, float64(absValue)/1_000)
	default:
		return fmt.Sprintf("%s%d", sign, absValue)
	}
}
