package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// CentsToAmount converts minor units to a decimal amount.
// Example: 6900 returns 69.00
func CentsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCents renders minor units as US dollars with grouping.
// Example: 123456 returns "$1,234.56"
func FormatCents(cents int64) string {
	return usdPrinter.Sprintf("$%.2f", CentsToAmount(cents).InexactFloat64())
}
